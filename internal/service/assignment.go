package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tiqn/dispatch_engine/internal/config"
	"github.com/tiqn/dispatch_engine/internal/events"
	"github.com/tiqn/dispatch_engine/internal/models"
	"github.com/tiqn/dispatch_engine/pkg/metrics"
)

//go:generate mockgen -source=assignment.go -destination=mocks/assignment.go -package=mocks

// AssignmentService управляет предложениями инцидентов спасателям.
// Переходы: pending -> accepted -> completed, pending -> rejected, pending -> cancelled.
type AssignmentService interface {
	CreatePendingAssignment(ctx context.Context, incidentID uuid.UUID) (uuid.UUID, error)
	AcceptIncident(ctx context.Context, assignmentID, rescuerID uuid.UUID) (*models.Assignment, error)
	RejectIncident(ctx context.Context, assignmentID uuid.UUID) (*models.Assignment, error)
	CancelAssignment(ctx context.Context, assignmentID uuid.UUID) (*models.Assignment, error)
	CompleteIncident(ctx context.Context, assignmentID uuid.UUID) (*models.Assignment, error)
	GetByIncident(ctx context.Context, incidentID uuid.UUID) (*models.Assignment, error)
}

type assignmentService struct {
	tx          TxRunner
	assignments AssignmentRepository
	incidents   IncidentRepository
	events      notifier
	metrics     *metrics.Metrics
	logger      *logrus.Logger
	cfg         *config.Config
}

func NewAssignmentService(
	tx TxRunner,
	assignments AssignmentRepository,
	incidents IncidentRepository,
	publisher events.Publisher,
	m *metrics.Metrics,
	logger *logrus.Logger,
	cfg *config.Config,
) AssignmentService {
	return &assignmentService{
		tx:          tx,
		assignments: assignments,
		incidents:   incidents,
		events:      notifier{publisher: publisher, metrics: m},
		metrics:     m,
		logger:      logger,
		cfg:         cfg,
	}
}

// CreatePendingAssignment создает предложение для инцидента.
// Если несколько ожидающих предложений запрещены конфигурацией, возвращается уже существующее.
func (s *assignmentService) CreatePendingAssignment(ctx context.Context, incidentID uuid.UUID) (uuid.UUID, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "assignment",
		"method":      "CreatePendingAssignment",
		"incident_id": incidentID,
	})

	var (
		assignmentID uuid.UUID
		reused       bool
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		if _, err := tx.LockIncident(ctx, incidentID); err != nil {
			return err
		}

		if !s.cfg.AllowMultiplePendingAssignments {
			existing, err := tx.FindPendingAssignment(ctx, incidentID)
			if err != nil {
				return err
			}
			if existing != nil {
				assignmentID = existing.ID
				reused = true
				return nil
			}
		}

		assignment := &models.Assignment{
			ID:         uuid.New(),
			IncidentID: incidentID,
			Status:     models.AssignmentStatusPending,
			Times:      models.AssignmentTimes{Offered: time.Now().UTC()},
		}
		if err := tx.InsertAssignment(ctx, assignment); err != nil {
			return err
		}
		assignmentID = assignment.ID
		return nil
	})
	s.observe("create", err)
	if err != nil {
		log.WithError(err).Warn("Failed to create pending assignment")
		return uuid.Nil, fmt.Errorf("service: could not create assignment: %w", err)
	}

	log = log.WithField("assignment_id", assignmentID)
	if reused {
		log.Info("Pending assignment already exists for incident")
		return assignmentID, nil
	}

	s.events.notify(ctx, log, models.EntityAssignment, assignmentID.String(), models.OpCreated)
	log.Info("Pending assignment created")
	return assignmentID, nil
}

// AcceptIncident закрепляет предложение за спасателем. Из двух одновременных
// принятий успешно только одно, второе получает ErrInvalidState. У инцидента не
// бывает двух принятых назначений, у спасателя - больше одного активного.
func (s *assignmentService) AcceptIncident(ctx context.Context, assignmentID, rescuerID uuid.UUID) (*models.Assignment, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "assignment",
		"method":        "AcceptIncident",
		"assignment_id": assignmentID,
		"rescuer_id":    rescuerID,
	})

	var accepted *models.Assignment
	err := s.tx.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		assignment, err := tx.LockAssignment(ctx, assignmentID)
		if err != nil {
			return err
		}
		if assignment.Status != models.AssignmentStatusPending {
			return fmt.Errorf("offer already taken, assignment is %s: %w", assignment.Status, ErrInvalidState)
		}

		// порядок блокировок: назначение, инцидент, спасатель
		incident, err := tx.LockIncident(ctx, assignment.IncidentID)
		if err != nil {
			return err
		}
		if incident.Status.Terminal() {
			return fmt.Errorf("incident is %s: %w", incident.Status, ErrInvalidState)
		}
		engaged, err := tx.FindEngagedAssignment(ctx, assignment.IncidentID)
		if err != nil {
			return err
		}
		if engaged != nil {
			return fmt.Errorf("incident already served by assignment %s: %w", engaged.ID, ErrInvalidState)
		}

		if _, err := tx.LockRescuer(ctx, rescuerID); err != nil {
			return err
		}
		busy, err := tx.FindAcceptedByRescuer(ctx, rescuerID)
		if err != nil {
			return err
		}
		if busy != nil {
			return fmt.Errorf("rescuer already holds assignment %s: %w", busy.ID, ErrInvalidState)
		}

		now := time.Now().UTC()
		assignment.RescuerID = &rescuerID
		assignment.Status = models.AssignmentStatusAccepted
		assignment.Times.Responded = &now
		assignment.Times.Accepted = &now
		if err := tx.SaveAssignment(ctx, assignment); err != nil {
			return err
		}

		if err := tx.SetIncidentStatus(ctx, assignment.IncidentID, models.IncidentStatusRescuerAssigned, now); err != nil {
			return err
		}
		accepted = assignment
		return nil
	})
	s.observe("accept", err)
	if err != nil {
		log.WithError(err).Warn("Failed to accept incident")
		return nil, fmt.Errorf("service: could not accept incident: %w", err)
	}

	s.afterCommit(ctx, log, accepted)
	log.Info("Incident accepted by rescuer")
	return accepted, nil
}

// RejectIncident отклоняет ожидающее предложение. Повторное предложение не создается.
func (s *assignmentService) RejectIncident(ctx context.Context, assignmentID uuid.UUID) (*models.Assignment, error) {
	return s.closePending(ctx, "reject", "RejectIncident", assignmentID, models.AssignmentStatusRejected)
}

// CancelAssignment отзывает ожидающее предложение
func (s *assignmentService) CancelAssignment(ctx context.Context, assignmentID uuid.UUID) (*models.Assignment, error) {
	return s.closePending(ctx, "cancel", "CancelAssignment", assignmentID, models.AssignmentStatusCancelled)
}

func (s *assignmentService) closePending(ctx context.Context, op, method string, assignmentID uuid.UUID, status models.AssignmentStatus) (*models.Assignment, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "assignment",
		"method":        method,
		"assignment_id": assignmentID,
	})

	var closed *models.Assignment
	err := s.tx.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		assignment, err := tx.LockAssignment(ctx, assignmentID)
		if err != nil {
			return err
		}
		if assignment.Status != models.AssignmentStatusPending {
			return fmt.Errorf("assignment is %s: %w", assignment.Status, ErrInvalidState)
		}

		now := time.Now().UTC()
		assignment.Status = status
		assignment.Times.Responded = &now
		if err := tx.SaveAssignment(ctx, assignment); err != nil {
			return err
		}
		closed = assignment
		return nil
	})
	s.observe(op, err)
	if err != nil {
		log.WithError(err).Warn("Failed to close pending assignment")
		return nil, fmt.Errorf("service: could not %s assignment: %w", op, err)
	}

	s.events.notify(ctx, log, models.EntityAssignment, closed.ID.String(), models.OpUpdated)
	log.WithField("status", status).Info("Pending assignment closed")
	return closed, nil
}

// CompleteIncident завершает принятое назначение, закрывает инцидент и в той же
// транзакции обновляет статистику спасателя.
func (s *assignmentService) CompleteIncident(ctx context.Context, assignmentID uuid.UUID) (*models.Assignment, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "assignment",
		"method":        "CompleteIncident",
		"assignment_id": assignmentID,
	})

	var completed *models.Assignment
	err := s.tx.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		assignment, err := tx.LockAssignment(ctx, assignmentID)
		if err != nil {
			return err
		}
		if assignment.Status != models.AssignmentStatusAccepted {
			return fmt.Errorf("assignment is %s: %w", assignment.Status, ErrInvalidState)
		}
		if assignment.RescuerID == nil || assignment.Times.Accepted == nil {
			return fmt.Errorf("accepted assignment has no rescuer: %w", ErrInvalidState)
		}

		now := time.Now().UTC()
		assignment.Status = models.AssignmentStatusCompleted
		assignment.Times.Completed = &now
		if err := tx.SaveAssignment(ctx, assignment); err != nil {
			return err
		}
		if err := tx.SetIncidentStatus(ctx, assignment.IncidentID, models.IncidentStatusCompleted, now); err != nil {
			return err
		}

		rescuer, err := tx.LockRescuer(ctx, *assignment.RescuerID)
		if err != nil {
			return err
		}
		rt := ResponseTimeMinutes(assignment.Times.Offered, *assignment.Times.Accepted)
		if err := tx.SaveRescuerStats(ctx, rescuer.ID, AggregateStats(rescuer.Stats, rt)); err != nil {
			return err
		}
		completed = assignment
		return nil
	})
	s.observe("complete", err)
	if err != nil {
		log.WithError(err).Warn("Failed to complete incident")
		return nil, fmt.Errorf("service: could not complete incident: %w", err)
	}

	s.afterCommit(ctx, log, completed)
	s.events.notify(ctx, log, models.EntityRescuer, completed.RescuerID.String(), models.OpUpdated)
	log.Info("Incident completed")
	return completed, nil
}

// GetByIncident возвращает последнее предложение по инциденту или (nil, nil)
func (s *assignmentService) GetByIncident(ctx context.Context, incidentID uuid.UUID) (*models.Assignment, error) {
	assignment, err := s.assignments.GetLatestByIncident(ctx, incidentID)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":     "assignment",
			"method":      "GetByIncident",
			"incident_id": incidentID,
		}).WithError(err).Error("Failed to get assignment by incident")
		return nil, fmt.Errorf("service: could not get assignment: %w", err)
	}
	return assignment, nil
}

// afterCommit сбрасывает кеш инцидента, статус которого изменился, и рассылает события
func (s *assignmentService) afterCommit(ctx context.Context, log *logrus.Entry, assignment *models.Assignment) {
	if err := s.incidents.InvalidateIncidentCache(ctx, assignment.IncidentID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}
	s.events.notify(ctx, log, models.EntityAssignment, assignment.ID.String(), models.OpUpdated)
	s.events.notify(ctx, log, models.EntityIncident, assignment.IncidentID.String(), models.OpUpdated)
}

func (s *assignmentService) observe(op string, err error) {
	if s.metrics != nil {
		s.metrics.ObserveTransition(op, err)
	}
}
