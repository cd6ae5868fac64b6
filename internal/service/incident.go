package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tiqn/dispatch_engine/internal/events"
	"github.com/tiqn/dispatch_engine/internal/models"
	"github.com/tiqn/dispatch_engine/pkg/metrics"
)

//go:generate mockgen -source=incident.go -destination=mocks/incident.go -package=mocks

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

// IncidentService определяет контракт бизнес-логики жизненного цикла инцидентов
type IncidentService interface {
	UpsertBySession(ctx context.Context, sessionID string, patch models.IncidentPatch) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	GetBySession(ctx context.Context, sessionID string) (*models.Incident, error)
	ListRecent(ctx context.Context, limit int) ([]*models.Incident, error)
	SetCoordinates(ctx context.Context, sessionID string, coords models.Coordinates) (uuid.UUID, error)
}

type incidentService struct {
	repo   IncidentRepository
	events notifier
	logger *logrus.Logger
}

func NewIncidentService(repo IncidentRepository, publisher events.Publisher, m *metrics.Metrics, logger *logrus.Logger) IncidentService {
	return &incidentService{
		repo:   repo,
		events: notifier{publisher: publisher, metrics: m},
		logger: logger,
	}
}

// UpsertBySession создает инцидент для сессии звонка или сливает патч с существующим.
// Непереданные поля сохраняют прежние значения.
func (s *incidentService) UpsertBySession(ctx context.Context, sessionID string, patch models.IncidentPatch) (uuid.UUID, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "incident",
		"method":     "UpsertBySession",
		"session_id": sessionID,
	})

	if sessionID == "" {
		return uuid.Nil, fmt.Errorf("service: session id is required: %w", ErrInvalidArgument)
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return uuid.Nil, fmt.Errorf("service: unknown incident status %q: %w", *patch.Status, ErrInvalidArgument)
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		return uuid.Nil, fmt.Errorf("service: unknown priority %q: %w", *patch.Priority, ErrInvalidArgument)
	}
	if patch.Coordinates != nil && !validCoordinates(*patch.Coordinates) {
		return uuid.Nil, fmt.Errorf("service: coordinates out of range: %w", ErrInvalidArgument)
	}

	id, created, err := s.repo.UpsertBySession(ctx, sessionID, patch, time.Now().UTC())
	if err != nil {
		log.WithError(err).Error("Failed to upsert incident in repository")
		return uuid.Nil, fmt.Errorf("service: could not upsert incident: %w", err)
	}
	log = log.WithField("incident_id", id)

	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	op := models.OpUpdated
	if created {
		op = models.OpCreated
	}
	if s.events.metrics != nil {
		s.events.metrics.IncidentUpserts.WithLabelValues(op).Inc()
	}
	s.events.notify(ctx, log, models.EntityIncident, id.String(), op)

	log.WithField("op", op).Info("Incident upserted successfully")
	return id, nil
}

// GetByID получает инцидент по ID: сначала из кеша, затем из хранилища
func (s *incidentService) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetByID",
		"incident_id": id,
	})

	cached, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident cache")
	}
	if cached != nil {
		log.Debug("Incident fetched from cache")
		return cached, nil
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident in repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache incident")
	}
	return incident, nil
}

// GetBySession - проверка существования: отсутствие инцидента не ошибка, возвращается (nil, nil)
func (s *incidentService) GetBySession(ctx context.Context, sessionID string) (*models.Incident, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("service: session id is required: %w", ErrInvalidArgument)
	}

	incident, err := s.repo.GetBySession(ctx, sessionID)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":    "incident",
			"method":     "GetBySession",
			"session_id": sessionID,
		}).WithError(err).Error("Failed to get incident by session")
		return nil, fmt.Errorf("service: could not get incident by session: %w", err)
	}
	return incident, nil
}

// ListRecent возвращает последние инциденты, новые первыми
func (s *incidentService) ListRecent(ctx context.Context, limit int) ([]*models.Incident, error) {
	if limit < 1 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListRecent",
		"limit":   limit,
	})

	incidents, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Debug("Incidents listed successfully")
	return incidents, nil
}

// SetCoordinates записывает координаты инцидента сессии, остальные поля не меняются
func (s *incidentService) SetCoordinates(ctx context.Context, sessionID string, coords models.Coordinates) (uuid.UUID, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "incident",
		"method":     "SetCoordinates",
		"session_id": sessionID,
	})

	if sessionID == "" {
		return uuid.Nil, fmt.Errorf("service: session id is required: %w", ErrInvalidArgument)
	}
	if !validCoordinates(coords) {
		return uuid.Nil, fmt.Errorf("service: coordinates out of range: %w", ErrInvalidArgument)
	}

	id, err := s.repo.SetCoordinates(ctx, sessionID, coords, time.Now().UTC())
	if err != nil {
		log.WithError(err).Warn("Failed to set incident coordinates")
		return uuid.Nil, fmt.Errorf("service: could not set coordinates: %w", err)
	}

	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}
	s.events.notify(ctx, log, models.EntityIncident, id.String(), models.OpUpdated)

	log.WithField("incident_id", id).Info("Incident coordinates updated")
	return id, nil
}

func validCoordinates(c models.Coordinates) bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}
