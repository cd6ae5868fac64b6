package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tiqn/dispatch_engine/internal/events"
	"github.com/tiqn/dispatch_engine/internal/models"
	"github.com/tiqn/dispatch_engine/pkg/metrics"
)

//go:generate mockgen -source=rescuer.go -destination=mocks/rescuer.go -package=mocks

// RescuerService - реестр спасателей и представления их назначений
type RescuerService interface {
	GetAllRescuers(ctx context.Context) ([]*models.Rescuer, error)
	GetRescuerDetails(ctx context.Context, id uuid.UUID) (*models.Rescuer, error)
	RegisterRescuer(ctx context.Context, rescuer *models.Rescuer) error
	UpdateLocation(ctx context.Context, id uuid.UUID, lat, lng float64) error
	GetActiveAssignmentForRescuer(ctx context.Context, id uuid.UUID) (*models.OfferView, error)
	GetAvailableIncidents(ctx context.Context) ([]*models.OfferView, error)
	RankAvailableIncidents(ctx context.Context, rescuerID uuid.UUID) ([]*models.RankedOffer, error)
}

type rescuerService struct {
	rescuers    RescuerRepository
	assignments AssignmentRepository
	incidents   IncidentService
	patients    PatientService
	ranking     *RankingService
	events      notifier
	logger      *logrus.Logger
}

func NewRescuerService(
	rescuers RescuerRepository,
	assignments AssignmentRepository,
	incidents IncidentService,
	patients PatientService,
	ranking *RankingService,
	publisher events.Publisher,
	m *metrics.Metrics,
	logger *logrus.Logger,
) RescuerService {
	return &rescuerService{
		rescuers:    rescuers,
		assignments: assignments,
		incidents:   incidents,
		patients:    patients,
		ranking:     ranking,
		events:      notifier{publisher: publisher, metrics: m},
		logger:      logger,
	}
}

func (s *rescuerService) GetAllRescuers(ctx context.Context) ([]*models.Rescuer, error) {
	rescuers, err := s.rescuers.List(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "rescuer",
			"method":  "GetAllRescuers",
		}).WithError(err).Error("Failed to list rescuers")
		return nil, fmt.Errorf("service: could not list rescuers: %w", err)
	}
	return rescuers, nil
}

func (s *rescuerService) GetRescuerDetails(ctx context.Context, id uuid.UUID) (*models.Rescuer, error) {
	rescuer, err := s.rescuers.GetByID(ctx, id)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":    "rescuer",
			"method":     "GetRescuerDetails",
			"rescuer_id": id,
		}).WithError(err).Warn("Failed to get rescuer")
		return nil, fmt.Errorf("service: could not get rescuer: %w", err)
	}
	return rescuer, nil
}

// RegisterRescuer добавляет спасателя в реестр с нулевой статистикой
func (s *rescuerService) RegisterRescuer(ctx context.Context, rescuer *models.Rescuer) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "rescuer",
		"method":  "RegisterRescuer",
	})

	rescuer.Name = strings.TrimSpace(rescuer.Name)
	if rescuer.Name == "" {
		return fmt.Errorf("service: rescuer name is required: %w", ErrInvalidArgument)
	}

	rescuer.ID = uuid.New()
	rescuer.Stats = models.RescuerStats{}
	rescuer.CreatedAt = time.Now().UTC()
	if rescuer.CurrentLocation != nil {
		if !validCoordinates(models.Coordinates{Lat: rescuer.CurrentLocation.Lat, Lng: rescuer.CurrentLocation.Lng}) {
			return fmt.Errorf("service: location out of range: %w", ErrInvalidArgument)
		}
		rescuer.CurrentLocation.LastUpdated = rescuer.CreatedAt
	}

	if err := s.rescuers.Create(ctx, rescuer); err != nil {
		log.WithError(err).Error("Failed to create rescuer in repository")
		return fmt.Errorf("service: could not register rescuer: %w", err)
	}

	s.events.notify(ctx, log, models.EntityRescuer, rescuer.ID.String(), models.OpCreated)
	log.WithField("rescuer_id", rescuer.ID).Info("Rescuer registered")
	return nil
}

// UpdateLocation сохраняет последнее известное местоположение спасателя
func (s *rescuerService) UpdateLocation(ctx context.Context, id uuid.UUID, lat, lng float64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "rescuer",
		"method":     "UpdateLocation",
		"rescuer_id": id,
	})

	if !validCoordinates(models.Coordinates{Lat: lat, Lng: lng}) {
		return fmt.Errorf("service: location out of range: %w", ErrInvalidArgument)
	}

	loc := models.Location{Lat: lat, Lng: lng, LastUpdated: time.Now().UTC()}
	if err := s.rescuers.UpdateLocation(ctx, id, loc); err != nil {
		log.WithError(err).Warn("Failed to update rescuer location")
		return fmt.Errorf("service: could not update location: %w", err)
	}

	s.events.notify(ctx, log, models.EntityRescuer, id.String(), models.OpUpdated)
	return nil
}

// GetActiveAssignmentForRescuer возвращает принятое спасателем назначение вместе с инцидентом.
// Нет активного назначения - (nil, nil).
func (s *rescuerService) GetActiveAssignmentForRescuer(ctx context.Context, id uuid.UUID) (*models.OfferView, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "rescuer",
		"method":     "GetActiveAssignmentForRescuer",
		"rescuer_id": id,
	})

	assignment, err := s.assignments.GetActiveByRescuer(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get active assignment")
		return nil, fmt.Errorf("service: could not get active assignment: %w", err)
	}
	if assignment == nil {
		return nil, nil
	}

	view, err := s.buildView(ctx, log, assignment)
	if err != nil {
		return nil, fmt.Errorf("service: could not get active assignment: %w", err)
	}
	return view, nil
}

// GetAvailableIncidents - все ожидающие предложения с инцидентами, новые первыми
func (s *rescuerService) GetAvailableIncidents(ctx context.Context) ([]*models.OfferView, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "rescuer",
		"method":  "GetAvailableIncidents",
	})

	pending, err := s.assignments.ListByStatus(ctx, models.AssignmentStatusPending)
	if err != nil {
		log.WithError(err).Error("Failed to list pending assignments")
		return nil, fmt.Errorf("service: could not list pending assignments: %w", err)
	}

	views := make([]*models.OfferView, 0, len(pending))
	for _, assignment := range pending {
		view, err := s.buildView(ctx, log, assignment)
		if err != nil {
			// Предложение без инцидента не показывается, остальные продолжают собираться
			log.WithError(err).WithField("assignment_id", assignment.ID).Warn("Skipping offer")
			continue
		}
		views = append(views, view)
	}
	return views, nil
}

// RankAvailableIncidents ранжирует доступные инциденты от текущего местоположения спасателя
func (s *rescuerService) RankAvailableIncidents(ctx context.Context, rescuerID uuid.UUID) ([]*models.RankedOffer, error) {
	rescuer, err := s.GetRescuerDetails(ctx, rescuerID)
	if err != nil {
		return nil, err
	}

	views, err := s.GetAvailableIncidents(ctx)
	if err != nil {
		return nil, err
	}

	return s.ranking.Rank(ctx, rescuer.CurrentLocation, views), nil
}

func (s *rescuerService) buildView(ctx context.Context, log *logrus.Entry, assignment *models.Assignment) (*models.OfferView, error) {
	incident, err := s.incidents.GetByID(ctx, assignment.IncidentID)
	if err != nil {
		return nil, err
	}

	view := &models.OfferView{Assignment: assignment, Incident: incident}
	if incident.PatientID != "" && s.patients != nil {
		patient, err := s.patients.GetPatient(ctx, incident.PatientID)
		if err != nil {
			log.WithError(err).WithField("patient_id", incident.PatientID).Debug("Linked patient not found")
		} else {
			view.Patient = patient
		}
	}
	return view, nil
}
