package models

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentStatus - статус предложения инцидента спасателю
type AssignmentStatus string

const (
	AssignmentStatusPending   AssignmentStatus = "pending"
	AssignmentStatusAccepted  AssignmentStatus = "accepted"
	AssignmentStatusRejected  AssignmentStatus = "rejected"
	AssignmentStatusCancelled AssignmentStatus = "cancelled"
	AssignmentStatusCompleted AssignmentStatus = "completed"
)

// Terminal - rejected, cancelled и completed не допускают дальнейших переходов
func (s AssignmentStatus) Terminal() bool {
	return s == AssignmentStatusRejected || s == AssignmentStatusCancelled || s == AssignmentStatusCompleted
}

// AssignmentTimes - временные метки переходов, монотонно возрастают
type AssignmentTimes struct {
	Offered   time.Time  `json:"offered"`
	Responded *time.Time `json:"responded,omitempty"`
	Accepted  *time.Time `json:"accepted,omitempty"`
	Completed *time.Time `json:"completed,omitempty"`
}

type Assignment struct {
	ID         uuid.UUID        `json:"id"`
	IncidentID uuid.UUID        `json:"incident_id"`
	RescuerID  *uuid.UUID       `json:"rescuer_id,omitempty"`
	Status     AssignmentStatus `json:"status"`
	Times      AssignmentTimes  `json:"times"`
}

// Valid проверяет инвариант: спасатель задан тогда и только тогда, когда статус accepted или completed
func (a *Assignment) Valid() bool {
	hasRescuer := a.RescuerID != nil
	needsRescuer := a.Status == AssignmentStatusAccepted || a.Status == AssignmentStatusCompleted
	return hasRescuer == needsRescuer
}

// OfferView - назначение вместе с инцидентом и (если найден) карточкой пациента
type OfferView struct {
	Assignment *Assignment `json:"assignment"`
	Incident   *Incident   `json:"incident"`
	Patient    *Patient    `json:"patient,omitempty"`
}

// RankedOffer - предложение с рассчитанным расстоянием и временем прибытия
type RankedOffer struct {
	OfferView
	DistanceKm    float64 `json:"distance_km"`
	ETAMinutes    int     `json:"eta_minutes"`
	RoutePolyline string  `json:"route_polyline,omitempty"`
	Geocoded      bool    `json:"geocoded"`
}
