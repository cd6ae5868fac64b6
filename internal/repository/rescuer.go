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

const rescuerColumns = `id, name, phone, lat, lng, location_updated_at, total_rescues, avg_response_time_minutes, created_at`

type RescuerRepository struct {
	db *pgxpool.Pool
}

func NewRescuerRepository(db *pgxpool.Pool) service.RescuerRepository {
	return &RescuerRepository{db: db}
}

// Create создает запись о спасателе в бд
func (r *RescuerRepository) Create(ctx context.Context, rescuer *models.Rescuer) error {
	query := `
		INSERT INTO rescuers (id, name, phone, lat, lng, location_updated_at, total_rescues, avg_response_time_minutes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	var (
		lat, lng  *float64
		locatedAt *time.Time
	)
	if loc := rescuer.CurrentLocation; loc != nil {
		lat, lng, locatedAt = &loc.Lat, &loc.Lng, &loc.LastUpdated
	}

	_, err := r.db.Exec(ctx, query,
		rescuer.ID,
		rescuer.Name,
		rescuer.Phone,
		lat,
		lng,
		locatedAt,
		rescuer.Stats.TotalRescues,
		rescuer.Stats.AvgResponseTimeMinutes,
		rescuer.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create rescuer: %w", err)
	}
	return nil
}

func (r *RescuerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Rescuer, error) {
	return getRescuer(ctx, r.db, id, false)
}

// List возвращает спасателей в порядке регистрации
func (r *RescuerRepository) List(ctx context.Context) ([]*models.Rescuer, error) {
	query := `SELECT ` + rescuerColumns + ` FROM rescuers ORDER BY created_at ASC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list rescuers: %w", err)
	}
	defer rows.Close()

	rescuers := make([]*models.Rescuer, 0)
	for rows.Next() {
		rescuer, err := scanRescuer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rescuer row: %w", err)
		}
		rescuers = append(rescuers, rescuer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return rescuers, nil
}

func (r *RescuerRepository) UpdateLocation(ctx context.Context, id uuid.UUID, loc models.Location) error {
	query := `
		UPDATE rescuers SET
			lat = $1,
			lng = $2,
			location_updated_at = $3
		WHERE id = $4;
	`
	cmdTag, err := r.db.Exec(ctx, query, loc.Lat, loc.Lng, loc.LastUpdated, id)
	if err != nil {
		return fmt.Errorf("failed to update rescuer location: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("rescuer with id %s not found for update: %w", id, service.ErrNotFound)
	}
	return nil
}

func getRescuer(ctx context.Context, q querier, id uuid.UUID, forUpdate bool) (*models.Rescuer, error) {
	query := `SELECT ` + rescuerColumns + ` FROM rescuers WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	rescuer, err := scanRescuer(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("rescuer with id %s not found: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get rescuer: %w", err)
	}
	return rescuer, nil
}

func scanRescuer(row pgx.Row) (*models.Rescuer, error) {
	rescuer := &models.Rescuer{}
	var (
		lat, lng  *float64
		locatedAt *time.Time
	)
	err := row.Scan(
		&rescuer.ID,
		&rescuer.Name,
		&rescuer.Phone,
		&lat,
		&lng,
		&locatedAt,
		&rescuer.Stats.TotalRescues,
		&rescuer.Stats.AvgResponseTimeMinutes,
		&rescuer.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if lat != nil && lng != nil {
		loc := &models.Location{Lat: *lat, Lng: *lng}
		if locatedAt != nil {
			loc.LastUpdated = *locatedAt
		}
		rescuer.CurrentLocation = loc
	}
	return rescuer, nil
}
