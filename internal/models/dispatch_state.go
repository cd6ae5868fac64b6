package models

import (
	"time"

	"github.com/google/uuid"
)

// DispatchStateKey - фиксированный ключ единственной записи состояния диспетчерской
const DispatchStateKey = "global"

// DispatchState хранит активного диспетчера и активный инцидент
type DispatchState struct {
	ActiveDispatcherID *string    `json:"active_dispatcher_id,omitempty"`
	ActiveIncidentID   *uuid.UUID `json:"active_incident_id,omitempty"`
	UpdatedAt          time.Time  `json:"updated_at"`
}
