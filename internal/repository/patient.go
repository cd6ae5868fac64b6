package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/tiqn/dispatch_engine/internal/models"
	"github.com/tiqn/dispatch_engine/internal/service"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const patientsCollection = "patients"

// patientDocument - представление пациента в MongoDB
type patientDocument struct {
	ID             primitive.ObjectID `bson:"_id"`
	FirstName      string             `bson:"firstName"`
	LastName       string             `bson:"lastName"`
	Age            *int               `bson:"age,omitempty"`
	Sex            string             `bson:"sex,omitempty"`
	Address        string             `bson:"address,omitempty"`
	District       string             `bson:"district,omitempty"`
	MedicalHistory []string           `bson:"medicalHistory,omitempty"`
	Medications    []string           `bson:"medications,omitempty"`
	Allergies      []string           `bson:"allergies,omitempty"`
	Notes          string             `bson:"notes,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt"`
}

func (d *patientDocument) toModel() *models.Patient {
	return &models.Patient{
		ID:             d.ID.Hex(),
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		Age:            d.Age,
		Sex:            d.Sex,
		Address:        d.Address,
		District:       d.District,
		MedicalHistory: d.MedicalHistory,
		Medications:    d.Medications,
		Allergies:      d.Allergies,
		Notes:          d.Notes,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

type PatientRepository struct {
	collection *mongo.Collection
}

// NewPatientRepository создает репозиторий пациентов и индекс по фамилии и имени
func NewPatientRepository(ctx context.Context, db *mongo.Database) (service.PatientRepository, error) {
	collection := db.Collection(patientsCollection)

	nameIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "lastName", Value: 1},
			{Key: "firstName", Value: 1},
		},
	}
	if _, err := collection.Indexes().CreateOne(ctx, nameIndex); err != nil {
		return nil, fmt.Errorf("failed to create patient name index: %w", err)
	}

	return &PatientRepository{collection: collection}, nil
}

func (r *PatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	doc := patientDocument{
		ID:             primitive.NewObjectID(),
		FirstName:      patient.FirstName,
		LastName:       patient.LastName,
		Age:            patient.Age,
		Sex:            patient.Sex,
		Address:        patient.Address,
		District:       patient.District,
		MedicalHistory: patient.MedicalHistory,
		Medications:    patient.Medications,
		Allergies:      patient.Allergies,
		Notes:          patient.Notes,
		CreatedAt:      patient.CreatedAt,
		UpdatedAt:      patient.UpdatedAt,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert patient: %w", err)
	}
	patient.ID = doc.ID.Hex()
	return nil
}

func (r *PatientRepository) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("patient with id %s not found: %w", id, service.ErrNotFound)
	}

	var doc patientDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("patient with id %s not found: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return doc.toModel(), nil
}

// FindBestMatch возвращает самого раннего пациента, чьи имя и фамилия содержат
// переданные части без учета регистра, или (nil, nil)
func (r *PatientRepository) FindBestMatch(ctx context.Context, firstName, lastName string) (*models.Patient, error) {
	opts := options.FindOne().SetSort(bson.D{
		{Key: "createdAt", Value: 1},
		{Key: "_id", Value: 1},
	})

	var doc patientDocument
	err := r.collection.FindOne(ctx, patientMatchFilter(firstName, lastName), opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find patient: %w", err)
	}
	return doc.toModel(), nil
}

// patientMatchFilter строит фильтр по подстрокам имени; пустая часть не ограничивает выборку
func patientMatchFilter(firstName, lastName string) bson.M {
	conds := bson.A{}
	if firstName != "" {
		conds = append(conds, bson.M{"firstName": containsRegex(firstName)})
	}
	if lastName != "" {
		conds = append(conds, bson.M{"lastName": containsRegex(lastName)})
	}
	if len(conds) == 0 {
		return bson.M{}
	}
	return bson.M{"$and": conds}
}

func containsRegex(part string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(part), Options: "i"}
}
