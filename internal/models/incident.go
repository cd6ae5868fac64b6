package models

import (
	"time"

	"github.com/google/uuid"
)

// IncidentStatus - статус жизненного цикла инцидента. Пустая строка означает "не задан".
type IncidentStatus string

const (
	IncidentStatusUnset           IncidentStatus = ""
	IncidentStatusIncomingCall    IncidentStatus = "incoming_call"
	IncidentStatusConfirmed       IncidentStatus = "confirmed"
	IncidentStatusRescuerAssigned IncidentStatus = "rescuer_assigned"
	IncidentStatusInProgress      IncidentStatus = "in_progress"
	IncidentStatusCompleted       IncidentStatus = "completed"
	IncidentStatusCancelled       IncidentStatus = "cancelled"
)

// Valid проверяет, что статус входит в известный набор (включая "не задан")
func (s IncidentStatus) Valid() bool {
	switch s {
	case IncidentStatusUnset, IncidentStatusIncomingCall, IncidentStatusConfirmed,
		IncidentStatusRescuerAssigned, IncidentStatusInProgress,
		IncidentStatusCompleted, IncidentStatusCancelled:
		return true
	}
	return false
}

// Terminal - completed и cancelled являются конечными состояниями
func (s IncidentStatus) Terminal() bool {
	return s == IncidentStatusCompleted || s == IncidentStatusCancelled
}

// Priority - приоритет инцидента. Пустая строка означает "не задан".
type Priority string

const (
	PriorityUnset    Priority = ""
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityUnset, PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// PriorityFromTriageCode переводит цветовой код триажа (Verde/Amarillo/Rojo) в приоритет.
// Неизвестный непустой код трактуется как medium.
func PriorityFromTriageCode(code string) Priority {
	switch code {
	case "":
		return PriorityUnset
	case "Verde":
		return PriorityLow
	case "Amarillo":
		return PriorityMedium
	case "Rojo":
		return PriorityCritical
	}
	return PriorityMedium
}

// Coordinates - пара широта/долгота
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Incident struct {
	ID        uuid.UUID      `json:"id"`
	SessionID string         `json:"session_id"`
	Status    IncidentStatus `json:"status,omitempty"`
	Priority  Priority       `json:"priority,omitempty"`

	IncidentType string `json:"incident_type,omitempty"`
	Description  string `json:"description,omitempty"`

	Address     string       `json:"address,omitempty"`
	District    string       `json:"district,omitempty"`
	Reference   string       `json:"reference,omitempty"`
	Apartment   string       `json:"apartment,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`

	FirstName          string `json:"first_name,omitempty"`
	LastName           string `json:"last_name,omitempty"`
	PatientAge         *int   `json:"patient_age,omitempty"`
	PatientSex         string `json:"patient_sex,omitempty"`
	Consciousness      string `json:"consciousness,omitempty"`
	Breathing          string `json:"breathing,omitempty"`
	AVDI               string `json:"avdi,omitempty"`
	RespiratoryStatus  string `json:"respiratory_status,omitempty"`
	SymptomOnset       string `json:"symptom_onset,omitempty"`
	MedicalHistory     string `json:"medical_history,omitempty"`
	CurrentMedications string `json:"current_medications,omitempty"`
	Allergies          string `json:"allergies,omitempty"`
	VitalSigns         string `json:"vital_signs,omitempty"`

	LiveTranscript string `json:"live_transcript,omitempty"`
	FullTranscript string `json:"full_transcript,omitempty"`
	DispatcherID   string `json:"dispatcher_id,omitempty"`
	PatientID      string `json:"patient_id,omitempty"`

	CreatedAt   time.Time `json:"created_at"`
	LastUpdated time.Time `json:"last_updated"`
}

// HasPatientName - есть ли извлеченное имя или фамилия пациента
func (i *Incident) HasPatientName() bool {
	return i.FirstName != "" || i.LastName != ""
}
