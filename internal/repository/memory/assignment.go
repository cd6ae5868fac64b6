package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tiqn/dispatch_engine/internal/models"
	"github.com/tiqn/dispatch_engine/internal/service"
)

type assignmentRepo struct {
	store *Store
}

func (r *assignmentRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Assignment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	assignment, ok := r.store.state.assignments[id]
	if !ok {
		return nil, fmt.Errorf("assignment with id %s not found: %w", id, service.ErrNotFound)
	}
	out := cloneAssignment(assignment)
	return &out, nil
}

func (r *assignmentRepo) GetLatestByIncident(_ context.Context, incidentID uuid.UUID) (*models.Assignment, error) {
	found := r.filter(func(a models.Assignment) bool { return a.IncidentID == incidentID }, assignmentOffered)
	if len(found) == 0 {
		return nil, nil
	}
	return found[0], nil
}

func (r *assignmentRepo) ListByStatus(_ context.Context, status models.AssignmentStatus) ([]*models.Assignment, error) {
	return r.filter(func(a models.Assignment) bool { return a.Status == status }, assignmentOffered), nil
}

func (r *assignmentRepo) GetActiveByRescuer(_ context.Context, rescuerID uuid.UUID) (*models.Assignment, error) {
	found := r.filter(func(a models.Assignment) bool {
		return a.Status == models.AssignmentStatusAccepted && a.RescuerID != nil && *a.RescuerID == rescuerID
	}, func(a models.Assignment) int64 {
		if a.Times.Accepted == nil {
			return 0
		}
		return a.Times.Accepted.UnixNano()
	})
	if len(found) == 0 {
		return nil, nil
	}
	return found[0], nil
}

// filter возвращает копии подходящих назначений, новые первыми
func (r *assignmentRepo) filter(match func(models.Assignment) bool, at func(models.Assignment) int64) []*models.Assignment {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	st := &r.store.state

	var found []models.Assignment
	for _, a := range st.assignments {
		if match(a) {
			found = append(found, a)
		}
	}
	newestFirst(st, found, assignmentKey, at)

	out := make([]*models.Assignment, 0, len(found))
	for _, a := range found {
		c := cloneAssignment(a)
		out = append(out, &c)
	}
	return out
}
