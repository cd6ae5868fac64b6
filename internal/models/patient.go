package models

import "time"

// Patient - запись известного пациента
type Patient struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	FirstName      string    `json:"first_name" bson:"firstName"`
	LastName       string    `json:"last_name" bson:"lastName"`
	Age            *int      `json:"age,omitempty" bson:"age,omitempty"`
	Sex            string    `json:"sex,omitempty" bson:"sex,omitempty"`
	Address        string    `json:"address,omitempty" bson:"address,omitempty"`
	District       string    `json:"district,omitempty" bson:"district,omitempty"`
	MedicalHistory []string  `json:"medical_history,omitempty" bson:"medicalHistory,omitempty"`
	Medications    []string  `json:"medications,omitempty" bson:"medications,omitempty"`
	Allergies      []string  `json:"allergies,omitempty" bson:"allergies,omitempty"`
	Notes          string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at" bson:"createdAt"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updatedAt"`
}
