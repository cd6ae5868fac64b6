package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tiqn/dispatch_engine/internal/models"
	"github.com/tiqn/dispatch_engine/internal/service"
)

// DispatchStateRepository хранит единственную строку состояния с ключом models.DispatchStateKey
type DispatchStateRepository struct {
	db *pgxpool.Pool
}

func NewDispatchStateRepository(db *pgxpool.Pool) service.DispatchStateRepository {
	return &DispatchStateRepository{db: db}
}

func (r *DispatchStateRepository) Get(ctx context.Context) (*models.DispatchState, error) {
	query := `
		SELECT active_dispatcher_id, active_incident_id, updated_at
		FROM dispatch_state
		WHERE key = $1;
	`
	state := &models.DispatchState{}
	err := r.db.QueryRow(ctx, query, models.DispatchStateKey).Scan(
		&state.ActiveDispatcherID,
		&state.ActiveIncidentID,
		&state.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get dispatch state: %w", err)
	}
	return state, nil
}

// SetActiveDispatcher создает строку при первом обращении, иначе меняет ее на месте
func (r *DispatchStateRepository) SetActiveDispatcher(ctx context.Context, dispatcherID string, now time.Time) error {
	query := `
		INSERT INTO dispatch_state (key, active_dispatcher_id, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET
			active_dispatcher_id = EXCLUDED.active_dispatcher_id,
			updated_at = EXCLUDED.updated_at;
	`
	if _, err := r.db.Exec(ctx, query, models.DispatchStateKey, dispatcherID, now); err != nil {
		return fmt.Errorf("failed to set active dispatcher: %w", err)
	}
	return nil
}

// SetActiveIncident меняет активный инцидент, nil очищает значение
func (r *DispatchStateRepository) SetActiveIncident(ctx context.Context, incidentID *uuid.UUID, now time.Time) error {
	query := `
		INSERT INTO dispatch_state (key, active_incident_id, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET
			active_incident_id = EXCLUDED.active_incident_id,
			updated_at = EXCLUDED.updated_at;
	`
	if _, err := r.db.Exec(ctx, query, models.DispatchStateKey, incidentID, now); err != nil {
		return fmt.Errorf("failed to set active incident: %w", err)
	}
	return nil
}
