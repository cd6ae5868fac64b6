package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPatientMatchFilter(t *testing.T) {
	filter := patientMatchFilter("Ana", "P. Rojas")

	expected := bson.M{"$and": bson.A{
		bson.M{"firstName": primitive.Regex{Pattern: "Ana", Options: "i"}},
		bson.M{"lastName": primitive.Regex{Pattern: `P\. Rojas`, Options: "i"}},
	}}
	assert.Equal(t, expected, filter)
}

func TestPatientMatchFilter_OnlyLastName(t *testing.T) {
	filter := patientMatchFilter("", "Soto")

	expected := bson.M{"$and": bson.A{
		bson.M{"lastName": primitive.Regex{Pattern: "Soto", Options: "i"}},
	}}
	assert.Equal(t, expected, filter)
}

func TestPatientMatchFilter_Empty(t *testing.T) {
	assert.Equal(t, bson.M{}, patientMatchFilter("", ""))
}

func TestPatientDocumentToModel(t *testing.T) {
	oid := primitive.NewObjectID()
	age := 71
	doc := patientDocument{ID: oid, FirstName: "Ana", LastName: "Rojas", Age: &age, Allergies: []string{"penicilina"}}

	patient := doc.toModel()

	assert.Equal(t, oid.Hex(), patient.ID)
	assert.Equal(t, "Rojas", patient.LastName)
	assert.Equal(t, &age, patient.Age)
	assert.Equal(t, []string{"penicilina"}, patient.Allergies)
}
