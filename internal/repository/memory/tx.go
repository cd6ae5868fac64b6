package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tiqn/dispatch_engine/internal/models"
	"github.com/tiqn/dispatch_engine/internal/service"
)

// transaction работает с копией состояния. Блокировки строк не нужны:
// вся транзакция выполняется под блокировкой хранилища.
type transaction struct {
	state state
}

func (tx *transaction) LockIncident(_ context.Context, id uuid.UUID) (*models.Incident, error) {
	incident, ok := tx.state.incidents[id]
	if !ok {
		return nil, fmt.Errorf("incident with id %s not found: %w", id, service.ErrNotFound)
	}
	out := cloneIncident(incident)
	return &out, nil
}

func (tx *transaction) SetIncidentStatus(_ context.Context, id uuid.UUID, status models.IncidentStatus, now time.Time) error {
	incident, ok := tx.state.incidents[id]
	if !ok {
		return fmt.Errorf("incident with id %s not found: %w", id, service.ErrNotFound)
	}
	incident.Status = status
	incident.LastUpdated = now
	tx.state.incidents[id] = incident
	return nil
}

func (tx *transaction) FindPendingAssignment(_ context.Context, incidentID uuid.UUID) (*models.Assignment, error) {
	return tx.findLatest(func(a models.Assignment) bool {
		return a.IncidentID == incidentID && a.Status == models.AssignmentStatusPending
	}), nil
}

func (tx *transaction) FindEngagedAssignment(_ context.Context, incidentID uuid.UUID) (*models.Assignment, error) {
	return tx.findLatest(func(a models.Assignment) bool {
		return a.IncidentID == incidentID &&
			(a.Status == models.AssignmentStatusAccepted || a.Status == models.AssignmentStatusCompleted)
	}), nil
}

func (tx *transaction) FindAcceptedByRescuer(_ context.Context, rescuerID uuid.UUID) (*models.Assignment, error) {
	return tx.findLatest(func(a models.Assignment) bool {
		return a.Status == models.AssignmentStatusAccepted && a.RescuerID != nil && *a.RescuerID == rescuerID
	}), nil
}

func (tx *transaction) findLatest(match func(models.Assignment) bool) *models.Assignment {
	var found []models.Assignment
	for _, a := range tx.state.assignments {
		if match(a) {
			found = append(found, a)
		}
	}
	if len(found) == 0 {
		return nil
	}
	newestFirst(&tx.state, found, assignmentKey, assignmentOffered)
	out := cloneAssignment(found[0])
	return &out
}

func (tx *transaction) InsertAssignment(_ context.Context, assignment *models.Assignment) error {
	if _, ok := tx.state.incidents[assignment.IncidentID]; !ok {
		return fmt.Errorf("incident with id %s not found: %w", assignment.IncidentID, service.ErrNotFound)
	}
	if _, exists := tx.state.assignments[assignment.ID]; exists {
		return fmt.Errorf("assignment with id %s already exists", assignment.ID)
	}
	tx.state.assignments[assignment.ID] = cloneAssignment(*assignment)
	tx.state.track(assignmentKey(*assignment))
	return nil
}

func (tx *transaction) LockAssignment(_ context.Context, id uuid.UUID) (*models.Assignment, error) {
	assignment, ok := tx.state.assignments[id]
	if !ok {
		return nil, fmt.Errorf("assignment with id %s not found: %w", id, service.ErrNotFound)
	}
	out := cloneAssignment(assignment)
	return &out, nil
}

func (tx *transaction) SaveAssignment(_ context.Context, assignment *models.Assignment) error {
	if _, ok := tx.state.assignments[assignment.ID]; !ok {
		return fmt.Errorf("assignment with id %s not found for update: %w", assignment.ID, service.ErrNotFound)
	}
	if !assignment.Valid() {
		return fmt.Errorf("assignment %s violates rescuer invariant for status %s", assignment.ID, assignment.Status)
	}
	tx.state.assignments[assignment.ID] = cloneAssignment(*assignment)
	return nil
}

func (tx *transaction) LockRescuer(_ context.Context, id uuid.UUID) (*models.Rescuer, error) {
	rescuer, ok := tx.state.rescuers[id]
	if !ok {
		return nil, fmt.Errorf("rescuer with id %s not found: %w", id, service.ErrNotFound)
	}
	out := cloneRescuer(rescuer)
	return &out, nil
}

func (tx *transaction) SaveRescuerStats(_ context.Context, id uuid.UUID, stats models.RescuerStats) error {
	rescuer, ok := tx.state.rescuers[id]
	if !ok {
		return fmt.Errorf("rescuer with id %s not found for update: %w", id, service.ErrNotFound)
	}
	rescuer.Stats = stats
	tx.state.rescuers[id] = cloneRescuer(rescuer)
	return nil
}

func assignmentKey(a models.Assignment) string { return "assignment:" + a.ID.String() }

func assignmentOffered(a models.Assignment) int64 { return a.Times.Offered.UnixNano() }
