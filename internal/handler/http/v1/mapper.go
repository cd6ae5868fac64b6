package v1

import (
	"github.com/tiqn/dispatch_engine/internal/models"
)

// toPatch преобразует DTO сессии в патч инцидента.
// Код триажа учитывается, только если приоритет не передан явно.
func (r SessionIncidentRequest) toPatch() models.IncidentPatch {
	patch := models.IncidentPatch{
		IncidentType:       r.IncidentType,
		Description:        r.Description,
		Address:            r.Address,
		District:           r.District,
		Reference:          r.Reference,
		Apartment:          r.Apartment,
		FirstName:          r.FirstName,
		LastName:           r.LastName,
		PatientAge:         r.PatientAge,
		PatientSex:         r.PatientSex,
		Consciousness:      r.Consciousness,
		Breathing:          r.Breathing,
		AVDI:               r.AVDI,
		RespiratoryStatus:  r.RespiratoryStatus,
		SymptomOnset:       r.SymptomOnset,
		MedicalHistory:     r.MedicalHistory,
		CurrentMedications: r.CurrentMedications,
		Allergies:          r.Allergies,
		VitalSigns:         r.VitalSigns,
		LiveTranscript:     r.LiveTranscript,
		FullTranscript:     r.FullTranscript,
		DispatcherID:       r.DispatcherID,
		PatientID:          r.PatientID,
	}

	if r.Status != nil {
		status := models.IncidentStatus(*r.Status)
		patch.Status = &status
	}

	switch {
	case r.Priority != nil:
		priority := models.Priority(*r.Priority)
		patch.Priority = &priority
	case r.TriageCode != nil:
		if priority := models.PriorityFromTriageCode(*r.TriageCode); priority != models.PriorityUnset {
			patch.Priority = &priority
		}
	}

	if r.Coordinates != nil {
		coords := r.Coordinates.toModel()
		patch.Coordinates = &coords
	}
	return patch
}

func (r CoordinatesRequest) toModel() models.Coordinates {
	var c models.Coordinates
	if r.Lat != nil {
		c.Lat = *r.Lat
	}
	if r.Lng != nil {
		c.Lng = *r.Lng
	}
	return c
}

// ModelToAssignmentResponse преобразует назначение в DTO для ответа
func ModelToAssignmentResponse(a *models.Assignment) *AssignmentResponse {
	return &AssignmentResponse{
		ID:          a.ID,
		IncidentID:  a.IncidentID,
		RescuerID:   a.RescuerID,
		Status:      string(a.Status),
		OfferedAt:   a.Times.Offered,
		RespondedAt: a.Times.Responded,
		AcceptedAt:  a.Times.Accepted,
		CompletedAt: a.Times.Completed,
	}
}

func (r RegisterRescuerRequest) toModel() *models.Rescuer {
	return &models.Rescuer{
		Name:  r.Name,
		Phone: r.Phone,
	}
}

func (r CreatePatientRequest) toModel() *models.Patient {
	return &models.Patient{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Age:            r.Age,
		Sex:            r.Sex,
		Address:        r.Address,
		District:       r.District,
		MedicalHistory: r.MedicalHistory,
		Medications:    r.Medications,
		Allergies:      r.Allergies,
		Notes:          r.Notes,
	}
}
