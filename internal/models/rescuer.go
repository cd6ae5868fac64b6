package models

import (
	"time"

	"github.com/google/uuid"
)

// Location - последнее известное местоположение спасателя
type Location struct {
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	LastUpdated time.Time `json:"last_updated"`
}

// RescuerStats - накопленная статистика спасателя
type RescuerStats struct {
	TotalRescues           int      `json:"total_rescues"`
	AvgResponseTimeMinutes *float64 `json:"avg_response_time_minutes,omitempty"`
}

type Rescuer struct {
	ID              uuid.UUID    `json:"id"`
	Name            string       `json:"name"`
	Phone           string       `json:"phone,omitempty"`
	CurrentLocation *Location    `json:"current_location,omitempty"`
	Stats           RescuerStats `json:"stats"`
	CreatedAt       time.Time    `json:"created_at"`
}
