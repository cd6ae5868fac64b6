package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tiqn/dispatch_engine/internal/models"
)

type dispatchStateRepo struct {
	store *Store
}

func (r *dispatchStateRepo) Get(_ context.Context) (*models.DispatchState, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if r.store.state.dispatch == nil {
		return nil, nil
	}
	out := cloneDispatchState(*r.store.state.dispatch)
	return &out, nil
}

func (r *dispatchStateRepo) SetActiveDispatcher(_ context.Context, dispatcherID string, now time.Time) error {
	r.update(func(s *models.DispatchState) {
		s.ActiveDispatcherID = &dispatcherID
		s.UpdatedAt = now
	})
	return nil
}

func (r *dispatchStateRepo) SetActiveIncident(_ context.Context, incidentID *uuid.UUID, now time.Time) error {
	r.update(func(s *models.DispatchState) {
		s.ActiveIncidentID = nil
		if incidentID != nil {
			id := *incidentID
			s.ActiveIncidentID = &id
		}
		s.UpdatedAt = now
	})
	return nil
}

// update создает запись при первом обращении и меняет ее на месте
func (r *dispatchStateRepo) update(fn func(*models.DispatchState)) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.state.dispatch == nil {
		r.store.state.dispatch = &models.DispatchState{}
	}
	fn(r.store.state.dispatch)
}
