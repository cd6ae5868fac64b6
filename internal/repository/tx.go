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

// TxRunner выполняет операции оркестратора в одной транзакции Postgres.
// Блокировки строк берутся через SELECT ... FOR UPDATE и держатся до COMMIT.
type TxRunner struct {
	db *pgxpool.Pool
}

func NewTxRunner(db *pgxpool.Pool) service.TxRunner {
	return &TxRunner{db: db}
}

func (r *TxRunner) RunInTx(ctx context.Context, fn func(ctx context.Context, tx service.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(ctx, &pgTx{q: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

type pgTx struct {
	q querier
}

func (t *pgTx) LockIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1 FOR UPDATE;`
	incident, err := scanIncident(t.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s not found: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock incident: %w", err)
	}
	return incident, nil
}

func (t *pgTx) SetIncidentStatus(ctx context.Context, id uuid.UUID, status models.IncidentStatus, now time.Time) error {
	query := `
		UPDATE incidents SET
			status = $1,
			last_updated = $2
		WHERE id = $3;
	`
	cmdTag, err := t.q.Exec(ctx, query, string(status), now, id)
	if err != nil {
		return fmt.Errorf("failed to update incident status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %s not found for update: %w", id, service.ErrNotFound)
	}
	return nil
}

// FindPendingAssignment возвращает последнее ожидающее предложение по инциденту или (nil, nil)
func (t *pgTx) FindPendingAssignment(ctx context.Context, incidentID uuid.UUID) (*models.Assignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM assignments
		WHERE incident_id = $1 AND status = 'pending'
		ORDER BY offered_at DESC
		LIMIT 1;
	`
	assignment, err := scanAssignment(t.q.QueryRow(ctx, query, incidentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find pending assignment: %w", err)
	}
	return assignment, nil
}

func (t *pgTx) FindEngagedAssignment(ctx context.Context, incidentID uuid.UUID) (*models.Assignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM assignments
		WHERE incident_id = $1 AND status IN ('accepted', 'completed')
		ORDER BY accepted_at DESC
		LIMIT 1;
	`
	return t.findAssignment(ctx, query, incidentID)
}

func (t *pgTx) FindAcceptedByRescuer(ctx context.Context, rescuerID uuid.UUID) (*models.Assignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM assignments
		WHERE rescuer_id = $1 AND status = 'accepted'
		ORDER BY accepted_at DESC
		LIMIT 1;
	`
	return t.findAssignment(ctx, query, rescuerID)
}

func (t *pgTx) findAssignment(ctx context.Context, query string, arg uuid.UUID) (*models.Assignment, error) {
	assignment, err := scanAssignment(t.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find assignment: %w", err)
	}
	return assignment, nil
}

func (t *pgTx) InsertAssignment(ctx context.Context, a *models.Assignment) error {
	query := `
		INSERT INTO assignments (id, incident_id, rescuer_id, status, offered_at, responded_at, accepted_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := t.q.Exec(ctx, query,
		a.ID,
		a.IncidentID,
		a.RescuerID,
		string(a.Status),
		a.Times.Offered,
		a.Times.Responded,
		a.Times.Accepted,
		a.Times.Completed,
	)
	if err != nil {
		return fmt.Errorf("failed to insert assignment: %w", err)
	}
	return nil
}

func (t *pgTx) LockAssignment(ctx context.Context, id uuid.UUID) (*models.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE id = $1 FOR UPDATE;`
	assignment, err := scanAssignment(t.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("assignment with id %s not found: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock assignment: %w", err)
	}
	return assignment, nil
}

func (t *pgTx) SaveAssignment(ctx context.Context, a *models.Assignment) error {
	query := `
		UPDATE assignments SET
			rescuer_id = $1,
			status = $2,
			responded_at = $3,
			accepted_at = $4,
			completed_at = $5
		WHERE id = $6;
	`
	cmdTag, err := t.q.Exec(ctx, query,
		a.RescuerID,
		string(a.Status),
		a.Times.Responded,
		a.Times.Accepted,
		a.Times.Completed,
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update assignment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("assignment with id %s not found for update: %w", a.ID, service.ErrNotFound)
	}
	return nil
}

func (t *pgTx) LockRescuer(ctx context.Context, id uuid.UUID) (*models.Rescuer, error) {
	return getRescuer(ctx, t.q, id, true)
}

func (t *pgTx) SaveRescuerStats(ctx context.Context, id uuid.UUID, stats models.RescuerStats) error {
	query := `
		UPDATE rescuers SET
			total_rescues = $1,
			avg_response_time_minutes = $2
		WHERE id = $3;
	`
	cmdTag, err := t.q.Exec(ctx, query, stats.TotalRescues, stats.AvgResponseTimeMinutes, id)
	if err != nil {
		return fmt.Errorf("failed to update rescuer stats: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("rescuer with id %s not found for update: %w", id, service.ErrNotFound)
	}
	return nil
}
