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

//go:generate mockgen -source=dispatch.go -destination=mocks/dispatch.go -package=mocks

// DispatchService - состояние диспетчерской: активный диспетчер и инцидент, открытый на экране
type DispatchService interface {
	Get(ctx context.Context) (*models.DispatchState, error)
	SetActiveDispatcher(ctx context.Context, dispatcherID string) error
	SetActiveIncident(ctx context.Context, incidentID *uuid.UUID) error
}

type dispatchService struct {
	repo   DispatchStateRepository
	events notifier
	logger *logrus.Logger
}

func NewDispatchService(repo DispatchStateRepository, publisher events.Publisher, m *metrics.Metrics, logger *logrus.Logger) DispatchService {
	return &dispatchService{
		repo:   repo,
		events: notifier{publisher: publisher, metrics: m},
		logger: logger,
	}
}

// Get возвращает текущее состояние; если запись еще не создавалась - пустое состояние
func (s *dispatchService) Get(ctx context.Context) (*models.DispatchState, error) {
	state, err := s.repo.Get(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "dispatch",
			"method":  "Get",
		}).WithError(err).Error("Failed to get dispatch state")
		return nil, fmt.Errorf("service: could not get dispatch state: %w", err)
	}
	if state == nil {
		return &models.DispatchState{}, nil
	}
	return state, nil
}

func (s *dispatchService) SetActiveDispatcher(ctx context.Context, dispatcherID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "dispatch",
		"method":        "SetActiveDispatcher",
		"dispatcher_id": dispatcherID,
	})

	if dispatcherID == "" {
		return fmt.Errorf("service: dispatcher id is required: %w", ErrInvalidArgument)
	}

	if err := s.repo.SetActiveDispatcher(ctx, dispatcherID, time.Now().UTC()); err != nil {
		log.WithError(err).Error("Failed to set active dispatcher")
		return fmt.Errorf("service: could not set active dispatcher: %w", err)
	}

	s.events.notify(ctx, log, models.EntityDispatchState, models.DispatchStateKey, models.OpUpdated)
	log.Info("Active dispatcher set")
	return nil
}

// SetActiveIncident меняет активный инцидент, nil очищает значение
func (s *dispatchService) SetActiveIncident(ctx context.Context, incidentID *uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "SetActiveIncident",
		"incident_id": incidentID,
	})

	if err := s.repo.SetActiveIncident(ctx, incidentID, time.Now().UTC()); err != nil {
		log.WithError(err).Error("Failed to set active incident")
		return fmt.Errorf("service: could not set active incident: %w", err)
	}

	s.events.notify(ctx, log, models.EntityDispatchState, models.DispatchStateKey, models.OpUpdated)
	log.Debug("Active incident set")
	return nil
}
