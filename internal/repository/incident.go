package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/tiqn/dispatch_engine/internal/models"
	"github.com/tiqn/dispatch_engine/internal/service"
)

const incidentCacheTTL = 5 * time.Minute

// querier - общее подмножество pgxpool.Pool и pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const incidentColumns = `
	id, session_id, status, priority, incident_type, description,
	address, district, reference, apartment, lat, lng,
	first_name, last_name, patient_age, patient_sex, consciousness, breathing, avdi,
	respiratory_status, symptom_onset, medical_history, current_medications, allergies, vital_signs,
	live_transcript, full_transcript, dispatcher_id, patient_id, created_at, last_updated`

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

// NewIncidentRepository создает репозиторий инцидентов. redisClient может быть nil, тогда кеш не используется.
func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// patchColumn - колонка инцидента и значение из патча (nil - не передано)
type patchColumn struct {
	name  string
	cast  string
	value any
	// zero - значение при создании, если поле не передано
	zero string
}

func patchColumns(p models.IncidentPatch) []patchColumn {
	text := func(name string, v *string) patchColumn {
		return patchColumn{name: name, cast: "text", value: v, zero: "''"}
	}

	var lat, lng *float64
	if p.Coordinates != nil {
		lat, lng = &p.Coordinates.Lat, &p.Coordinates.Lng
	}
	var status, priority *string
	if p.Status != nil {
		s := string(*p.Status)
		status = &s
	}
	if p.Priority != nil {
		s := string(*p.Priority)
		priority = &s
	}

	return []patchColumn{
		text("status", status),
		text("priority", priority),
		text("incident_type", p.IncidentType),
		text("description", p.Description),
		text("address", p.Address),
		text("district", p.District),
		text("reference", p.Reference),
		text("apartment", p.Apartment),
		{name: "lat", cast: "double precision", value: lat, zero: "NULL"},
		{name: "lng", cast: "double precision", value: lng, zero: "NULL"},
		text("first_name", p.FirstName),
		text("last_name", p.LastName),
		{name: "patient_age", cast: "integer", value: p.PatientAge, zero: "NULL"},
		text("patient_sex", p.PatientSex),
		text("consciousness", p.Consciousness),
		text("breathing", p.Breathing),
		text("avdi", p.AVDI),
		text("respiratory_status", p.RespiratoryStatus),
		text("symptom_onset", p.SymptomOnset),
		text("medical_history", p.MedicalHistory),
		text("current_medications", p.CurrentMedications),
		text("allergies", p.Allergies),
		text("vital_signs", p.VitalSigns),
		text("live_transcript", p.LiveTranscript),
		text("full_transcript", p.FullTranscript),
		text("dispatcher_id", p.DispatcherID),
		text("patient_id", p.PatientID),
	}
}

// buildUpsertQuery собирает INSERT ... ON CONFLICT (session_id): при конфликте
// переписываются только переданные поля, остальные сохраняют значение из строки
func buildUpsertQuery(p models.IncidentPatch, sessionID string, now time.Time) (string, []any) {
	cols := patchColumns(p)
	args := []any{sessionID, now}

	names := []string{"session_id", "created_at", "last_updated"}
	values := []string{"$1", "$2", "$2"}
	updates := []string{"last_updated = $2"}

	for _, c := range cols {
		args = append(args, c.value)
		param := fmt.Sprintf("$%d::%s", len(args), c.cast)
		names = append(names, c.name)
		values = append(values, fmt.Sprintf("COALESCE(%s, %s)", param, c.zero))
		updates = append(updates, fmt.Sprintf("%s = COALESCE(%s, incidents.%s)", c.name, param, c.name))
	}

	query := fmt.Sprintf(`
		INSERT INTO incidents (%s)
		VALUES (%s)
		ON CONFLICT (session_id) DO UPDATE SET
			%s
		RETURNING id, (xmax = 0) AS inserted;`,
		strings.Join(names, ", "),
		strings.Join(values, ", "),
		strings.Join(updates, ",\n\t\t\t"),
	)
	return query, args
}

// UpsertBySession создает или сливает инцидент сессии одной командой.
// Возвращает true во втором значении, если строка была создана.
func (r *IncidentRepository) UpsertBySession(ctx context.Context, sessionID string, patch models.IncidentPatch, now time.Time) (uuid.UUID, bool, error) {
	query, args := buildUpsertQuery(patch, sessionID, now)

	var (
		id       uuid.UUID
		inserted bool
	)
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id, &inserted); err != nil {
		return uuid.Nil, false, fmt.Errorf("failed to upsert incident: %w", err)
	}
	return id, inserted, nil
}

// GetByID возвращает инцидент по его UUID
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1;`
	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s not found: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// GetBySession возвращает инцидент сессии или (nil, nil)
func (r *IncidentRepository) GetBySession(ctx context.Context, sessionID string) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE session_id = $1;`
	incident, err := scanIncident(r.db.QueryRow(ctx, query, sessionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident by session: %w", err)
	}
	return incident, nil
}

// listRecentQuery - при равном created_at порядок задает seq, то есть порядок вставки
const listRecentQuery = `SELECT ` + incidentColumns + ` FROM incidents ORDER BY created_at DESC, seq DESC LIMIT $1;`

// ListRecent возвращает последние созданные инциденты
func (r *IncidentRepository) ListRecent(ctx context.Context, limit int) ([]*models.Incident, error) {
	rows, err := r.db.Query(ctx, listRecentQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// SetCoordinates записывает координаты инцидента сессии
func (r *IncidentRepository) SetCoordinates(ctx context.Context, sessionID string, coords models.Coordinates, now time.Time) (uuid.UUID, error) {
	query := `
		UPDATE incidents SET
			lat = $1,
			lng = $2,
			last_updated = $3
		WHERE session_id = $4
		RETURNING id;
	`
	var id uuid.UUID
	err := r.db.QueryRow(ctx, query, coords.Lat, coords.Lng, now, sessionID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, fmt.Errorf("incident for session %s not found for update: %w", sessionID, service.ErrNotFound)
		}
		return uuid.Nil, fmt.Errorf("failed to set incident coordinates: %w", err)
	}
	return id, nil
}

func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	var lat, lng *float64
	err := row.Scan(
		&incident.ID,
		&incident.SessionID,
		&incident.Status,
		&incident.Priority,
		&incident.IncidentType,
		&incident.Description,
		&incident.Address,
		&incident.District,
		&incident.Reference,
		&incident.Apartment,
		&lat,
		&lng,
		&incident.FirstName,
		&incident.LastName,
		&incident.PatientAge,
		&incident.PatientSex,
		&incident.Consciousness,
		&incident.Breathing,
		&incident.AVDI,
		&incident.RespiratoryStatus,
		&incident.SymptomOnset,
		&incident.MedicalHistory,
		&incident.CurrentMedications,
		&incident.Allergies,
		&incident.VitalSigns,
		&incident.LiveTranscript,
		&incident.FullTranscript,
		&incident.DispatcherID,
		&incident.PatientID,
		&incident.CreatedAt,
		&incident.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	if lat != nil && lng != nil {
		incident.Coordinates = &models.Coordinates{Lat: *lat, Lng: *lng}
	}
	return incident, nil
}

func incidentCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("incident:%s", id.String())
}

// GetIncidentFromCache пытается получить инцидент из Redis
func (r *IncidentRepository) GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	if r.redisClient == nil {
		return nil, nil
	}
	val, err := r.redisClient.Get(ctx, incidentCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// SetIncidentCache сохраняет инцидент в Redis
func (r *IncidentRepository) SetIncidentCache(ctx context.Context, incident *models.Incident) error {
	if r.redisClient == nil {
		return nil
	}
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, incidentCacheKey(incident.ID), val, incidentCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// InvalidateIncidentCache удаляет инцидент из Redis кэша
func (r *IncidentRepository) InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error {
	if r.redisClient == nil {
		return nil
	}
	if err := r.redisClient.Del(ctx, incidentCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}
