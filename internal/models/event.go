package models

import "time"

// Сущности, о которых публикуются события изменений
const (
	EntityIncident      = "incident"
	EntityAssignment    = "assignment"
	EntityRescuer       = "rescuer"
	EntityDispatchState = "dispatch_state"
)

const (
	OpCreated = "created"
	OpUpdated = "updated"
)

// ChangeEvent - событие об изменении сущности, рассылается подписчикам
type ChangeEvent struct {
	Entity string    `json:"entity"`
	ID     string    `json:"id"`
	Op     string    `json:"op"`
	At     time.Time `json:"at"`
}
