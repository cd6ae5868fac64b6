package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/tiqn/dispatch_engine/internal/models"
	"github.com/tiqn/dispatch_engine/internal/service"
)

type rescuerRepo struct {
	store *Store
}

func (r *rescuerRepo) Create(_ context.Context, rescuer *models.Rescuer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	st := &r.store.state

	if _, exists := st.rescuers[rescuer.ID]; exists {
		return fmt.Errorf("rescuer with id %s already exists", rescuer.ID)
	}
	st.rescuers[rescuer.ID] = cloneRescuer(*rescuer)
	st.track(rescuerKey(*rescuer))
	return nil
}

func (r *rescuerRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Rescuer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rescuer, ok := r.store.state.rescuers[id]
	if !ok {
		return nil, fmt.Errorf("rescuer with id %s not found: %w", id, service.ErrNotFound)
	}
	out := cloneRescuer(rescuer)
	return &out, nil
}

// List возвращает спасателей в порядке регистрации
func (r *rescuerRepo) List(_ context.Context) ([]*models.Rescuer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	st := &r.store.state

	all := make([]models.Rescuer, 0, len(st.rescuers))
	for _, rescuer := range st.rescuers {
		all = append(all, rescuer)
	}
	sort.Slice(all, func(i, j int) bool {
		return st.order[rescuerKey(all[i])] < st.order[rescuerKey(all[j])]
	})

	rescuers := make([]*models.Rescuer, 0, len(all))
	for _, rescuer := range all {
		out := cloneRescuer(rescuer)
		rescuers = append(rescuers, &out)
	}
	return rescuers, nil
}

func (r *rescuerRepo) UpdateLocation(_ context.Context, id uuid.UUID, loc models.Location) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rescuer, ok := r.store.state.rescuers[id]
	if !ok {
		return fmt.Errorf("rescuer with id %s not found for update: %w", id, service.ErrNotFound)
	}
	rescuer.CurrentLocation = &loc
	r.store.state.rescuers[id] = cloneRescuer(rescuer)
	return nil
}

func rescuerKey(r models.Rescuer) string { return "rescuer:" + r.ID.String() }
