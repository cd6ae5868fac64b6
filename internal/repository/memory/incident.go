package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tiqn/dispatch_engine/internal/models"
	"github.com/tiqn/dispatch_engine/internal/service"
)

type incidentRepo struct {
	store *Store
}

func (r *incidentRepo) UpsertBySession(_ context.Context, sessionID string, patch models.IncidentPatch, now time.Time) (uuid.UUID, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	st := &r.store.state

	if id, ok := st.sessions[sessionID]; ok {
		incident := st.incidents[id]
		patch.Apply(&incident)
		incident.LastUpdated = now
		st.incidents[id] = cloneIncident(incident)
		return id, false, nil
	}

	incident := models.Incident{
		ID:          uuid.New(),
		SessionID:   sessionID,
		CreatedAt:   now,
		LastUpdated: now,
	}
	patch.Apply(&incident)
	st.incidents[incident.ID] = cloneIncident(incident)
	st.sessions[sessionID] = incident.ID
	st.track(incidentKey(incident))
	return incident.ID, true, nil
}

func (r *incidentRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Incident, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	incident, ok := r.store.state.incidents[id]
	if !ok {
		return nil, fmt.Errorf("incident with id %s not found: %w", id, service.ErrNotFound)
	}
	out := cloneIncident(incident)
	return &out, nil
}

func (r *incidentRepo) GetBySession(_ context.Context, sessionID string) (*models.Incident, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.store.state.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	out := cloneIncident(r.store.state.incidents[id])
	return &out, nil
}

func (r *incidentRepo) ListRecent(_ context.Context, limit int) ([]*models.Incident, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	st := &r.store.state

	all := make([]models.Incident, 0, len(st.incidents))
	for _, incident := range st.incidents {
		all = append(all, incident)
	}
	newestFirst(st, all, incidentKey, func(i models.Incident) int64 { return i.CreatedAt.UnixNano() })

	if limit < len(all) {
		all = all[:limit]
	}
	incidents := make([]*models.Incident, 0, len(all))
	for _, incident := range all {
		out := cloneIncident(incident)
		incidents = append(incidents, &out)
	}
	return incidents, nil
}

func (r *incidentRepo) SetCoordinates(_ context.Context, sessionID string, coords models.Coordinates, now time.Time) (uuid.UUID, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	st := &r.store.state

	id, ok := st.sessions[sessionID]
	if !ok {
		return uuid.Nil, fmt.Errorf("incident for session %s not found: %w", sessionID, service.ErrNotFound)
	}
	incident := st.incidents[id]
	incident.Coordinates = &coords
	incident.LastUpdated = now
	st.incidents[id] = cloneIncident(incident)
	return id, nil
}

// Кеш не нужен: чтения и так идут из памяти

func (r *incidentRepo) GetIncidentFromCache(context.Context, uuid.UUID) (*models.Incident, error) {
	return nil, nil
}

func (r *incidentRepo) SetIncidentCache(context.Context, *models.Incident) error { return nil }

func (r *incidentRepo) InvalidateIncidentCache(context.Context, uuid.UUID) error { return nil }

func incidentKey(i models.Incident) string { return "incident:" + i.ID.String() }
