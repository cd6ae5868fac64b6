package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tiqn/dispatch_engine/internal/models"
	"github.com/tiqn/dispatch_engine/internal/service"
)

const assignmentColumns = `id, incident_id, rescuer_id, status, offered_at, responded_at, accepted_at, completed_at`

type AssignmentRepository struct {
	db *pgxpool.Pool
}

func NewAssignmentRepository(db *pgxpool.Pool) service.AssignmentRepository {
	return &AssignmentRepository{db: db}
}

func (r *AssignmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE id = $1;`
	assignment, err := scanAssignment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("assignment with id %s not found: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get assignment by id: %w", err)
	}
	return assignment, nil
}

// GetLatestByIncident возвращает последнее предложение по инциденту или (nil, nil)
func (r *AssignmentRepository) GetLatestByIncident(ctx context.Context, incidentID uuid.UUID) (*models.Assignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM assignments
		WHERE incident_id = $1
		ORDER BY offered_at DESC
		LIMIT 1;
	`
	assignment, err := scanAssignment(r.db.QueryRow(ctx, query, incidentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest assignment: %w", err)
	}
	return assignment, nil
}

// ListByStatus возвращает назначения в статусе, новые предложения первыми
func (r *AssignmentRepository) ListByStatus(ctx context.Context, status models.AssignmentStatus) ([]*models.Assignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM assignments
		WHERE status = $1
		ORDER BY offered_at DESC;
	`
	rows, err := r.db.Query(ctx, query, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	defer rows.Close()

	assignments := make([]*models.Assignment, 0)
	for rows.Next() {
		assignment, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment row: %w", err)
		}
		assignments = append(assignments, assignment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return assignments, nil
}

// GetActiveByRescuer возвращает последнее принятое спасателем назначение или (nil, nil)
func (r *AssignmentRepository) GetActiveByRescuer(ctx context.Context, rescuerID uuid.UUID) (*models.Assignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM assignments
		WHERE rescuer_id = $1 AND status = 'accepted'
		ORDER BY accepted_at DESC
		LIMIT 1;
	`
	assignment, err := scanAssignment(r.db.QueryRow(ctx, query, rescuerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active assignment: %w", err)
	}
	return assignment, nil
}

func scanAssignment(row pgx.Row) (*models.Assignment, error) {
	a := &models.Assignment{}
	err := row.Scan(
		&a.ID,
		&a.IncidentID,
		&a.RescuerID,
		&a.Status,
		&a.Times.Offered,
		&a.Times.Responded,
		&a.Times.Accepted,
		&a.Times.Completed,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}
