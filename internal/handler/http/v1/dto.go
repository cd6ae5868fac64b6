package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/tiqn/dispatch_engine/internal/models"
)

// CoordinatesRequest DTO с парой координат
// @Description DTO с парой координат
type CoordinatesRequest struct {
	Lat *float64 `json:"lat" validate:"required,latitude"`
	Lng *float64 `json:"lng" validate:"required,longitude"`
}

// SessionIncidentRequest DTO для создания или слияния инцидента сессии.
// Непереданные поля не меняют сохраненные значения.
// @Description DTO для создания или слияния инцидента сессии
type SessionIncidentRequest struct {
	Status   *string `json:"status,omitempty" validate:"omitempty,oneof=incoming_call confirmed rescuer_assigned in_progress completed cancelled"`
	Priority *string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high critical"`
	// TriageCode - цветовой код триажа (Verde, Amarillo, Rojo), используется если priority не передан
	TriageCode *string `json:"triage_code,omitempty"`

	IncidentType *string `json:"incident_type,omitempty"`
	Description  *string `json:"description,omitempty"`

	Address     *string             `json:"address,omitempty"`
	District    *string             `json:"district,omitempty"`
	Reference   *string             `json:"reference,omitempty"`
	Apartment   *string             `json:"apartment,omitempty"`
	Coordinates *CoordinatesRequest `json:"coordinates,omitempty"`

	FirstName          *string `json:"first_name,omitempty"`
	LastName           *string `json:"last_name,omitempty"`
	PatientAge         *int    `json:"patient_age,omitempty" validate:"omitempty,gte=0,lte=150"`
	PatientSex         *string `json:"patient_sex,omitempty"`
	Consciousness      *string `json:"consciousness,omitempty"`
	Breathing          *string `json:"breathing,omitempty"`
	AVDI               *string `json:"avdi,omitempty"`
	RespiratoryStatus  *string `json:"respiratory_status,omitempty"`
	SymptomOnset       *string `json:"symptom_onset,omitempty"`
	MedicalHistory     *string `json:"medical_history,omitempty"`
	CurrentMedications *string `json:"current_medications,omitempty"`
	Allergies          *string `json:"allergies,omitempty"`
	VitalSigns         *string `json:"vital_signs,omitempty"`

	LiveTranscript *string `json:"live_transcript,omitempty"`
	FullTranscript *string `json:"full_transcript,omitempty"`
	DispatcherID   *string `json:"dispatcher_id,omitempty"`
	PatientID      *string `json:"patient_id,omitempty"`
}

// UpsertIncidentResponse DTO с идентификатором инцидента сессии
// @Description DTO с идентификатором инцидента сессии
type UpsertIncidentResponse struct {
	IncidentID uuid.UUID `json:"incident_id"`
}

// SessionIncidentResponse DTO ответа на проверку инцидента сессии
// @Description DTO ответа на проверку инцидента сессии
type SessionIncidentResponse struct {
	Found    bool             `json:"found"`
	Incident *models.Incident `json:"incident,omitempty"`
}

// CreateAssignmentResponse DTO с идентификатором предложения
// @Description DTO с идентификатором предложения
type CreateAssignmentResponse struct {
	AssignmentID uuid.UUID `json:"assignment_id"`
}

// AcceptAssignmentRequest DTO для принятия предложения
// @Description DTO для принятия предложения
type AcceptAssignmentRequest struct {
	RescuerID string `json:"rescuer_id" validate:"required,uuid"`
}

// AssignmentResponse DTO для ответа с информацией о назначении
// @Description DTO для ответа с информацией о назначении
type AssignmentResponse struct {
	ID          uuid.UUID  `json:"id"`
	IncidentID  uuid.UUID  `json:"incident_id"`
	RescuerID   *uuid.UUID `json:"rescuer_id,omitempty"`
	Status      string     `json:"status"`
	OfferedAt   time.Time  `json:"offered_at"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
	AcceptedAt  *time.Time `json:"accepted_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// RegisterRescuerRequest DTO для регистрации спасателя
// @Description DTO для регистрации спасателя
type RegisterRescuerRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=255"`
	Phone string `json:"phone,omitempty" validate:"omitempty,max=32"`
}

// SetDispatcherRequest DTO для смены активного диспетчера
// @Description DTO для смены активного диспетчера
type SetDispatcherRequest struct {
	DispatcherID string `json:"dispatcher_id" validate:"required"`
}

// SetActiveIncidentRequest DTO для смены активного инцидента, null очищает значение
// @Description DTO для смены активного инцидента
type SetActiveIncidentRequest struct {
	IncidentID *string `json:"incident_id" validate:"omitempty,uuid"`
}

// CreatePatientRequest DTO для создания карточки пациента
// @Description DTO для создания карточки пациента
type CreatePatientRequest struct {
	FirstName      string   `json:"first_name" validate:"required,max=255"`
	LastName       string   `json:"last_name" validate:"required,max=255"`
	Age            *int     `json:"age,omitempty" validate:"omitempty,gte=0,lte=150"`
	Sex            string   `json:"sex,omitempty"`
	Address        string   `json:"address,omitempty"`
	District       string   `json:"district,omitempty"`
	MedicalHistory []string `json:"medical_history,omitempty"`
	Medications    []string `json:"medications,omitempty"`
	Allergies      []string `json:"allergies,omitempty"`
	Notes          string   `json:"notes,omitempty"`
}
