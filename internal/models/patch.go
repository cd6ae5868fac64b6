package models

// IncidentPatch - частичное обновление инцидента. nil-поле означает "не передано",
// такое поле сохраняет прежнее значение.
type IncidentPatch struct {
	Status   *IncidentStatus `json:"status,omitempty"`
	Priority *Priority       `json:"priority,omitempty"`

	IncidentType *string `json:"incident_type,omitempty"`
	Description  *string `json:"description,omitempty"`

	Address     *string      `json:"address,omitempty"`
	District    *string      `json:"district,omitempty"`
	Reference   *string      `json:"reference,omitempty"`
	Apartment   *string      `json:"apartment,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`

	FirstName          *string `json:"first_name,omitempty"`
	LastName           *string `json:"last_name,omitempty"`
	PatientAge         *int    `json:"patient_age,omitempty"`
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

// Apply накладывает патч на инцидент: переписываются только переданные поля
func (p IncidentPatch) Apply(inc *Incident) {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	if p.Status != nil {
		inc.Status = *p.Status
	}
	if p.Priority != nil {
		inc.Priority = *p.Priority
	}
	if p.Coordinates != nil {
		c := *p.Coordinates
		inc.Coordinates = &c
	}
	if p.PatientAge != nil {
		age := *p.PatientAge
		inc.PatientAge = &age
	}

	setString(&inc.IncidentType, p.IncidentType)
	setString(&inc.Description, p.Description)
	setString(&inc.Address, p.Address)
	setString(&inc.District, p.District)
	setString(&inc.Reference, p.Reference)
	setString(&inc.Apartment, p.Apartment)
	setString(&inc.FirstName, p.FirstName)
	setString(&inc.LastName, p.LastName)
	setString(&inc.PatientSex, p.PatientSex)
	setString(&inc.Consciousness, p.Consciousness)
	setString(&inc.Breathing, p.Breathing)
	setString(&inc.AVDI, p.AVDI)
	setString(&inc.RespiratoryStatus, p.RespiratoryStatus)
	setString(&inc.SymptomOnset, p.SymptomOnset)
	setString(&inc.MedicalHistory, p.MedicalHistory)
	setString(&inc.CurrentMedications, p.CurrentMedications)
	setString(&inc.Allergies, p.Allergies)
	setString(&inc.VitalSigns, p.VitalSigns)
	setString(&inc.LiveTranscript, p.LiveTranscript)
	setString(&inc.FullTranscript, p.FullTranscript)
	setString(&inc.DispatcherID, p.DispatcherID)
	setString(&inc.PatientID, p.PatientID)
}

// IsEmpty - в патче нет ни одного поля
func (p IncidentPatch) IsEmpty() bool {
	return p == IncidentPatch{}
}
