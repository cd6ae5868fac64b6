package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tiqn/dispatch_engine/internal/models"
)

//go:generate mockgen -source=patient.go -destination=mocks/patient.go -package=mocks

// PatientService - справочник известных пациентов
type PatientService interface {
	CreatePatient(ctx context.Context, patient *models.Patient) error
	GetPatient(ctx context.Context, id string) (*models.Patient, error)
	FindBestMatch(ctx context.Context, firstName, lastName string) (*models.Patient, error)
}

type patientService struct {
	repo   PatientRepository
	logger *logrus.Logger
}

func NewPatientService(repo PatientRepository, logger *logrus.Logger) PatientService {
	return &patientService{
		repo:   repo,
		logger: logger,
	}
}

func (s *patientService) CreatePatient(ctx context.Context, patient *models.Patient) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "patient",
		"method":  "CreatePatient",
	})

	patient.FirstName = strings.TrimSpace(patient.FirstName)
	patient.LastName = strings.TrimSpace(patient.LastName)
	if patient.FirstName == "" || patient.LastName == "" {
		return fmt.Errorf("service: first and last name are required: %w", ErrInvalidArgument)
	}

	now := time.Now().UTC()
	patient.CreatedAt = now
	patient.UpdatedAt = now

	if err := s.repo.Create(ctx, patient); err != nil {
		log.WithError(err).Error("Failed to create patient in repository")
		return fmt.Errorf("service: could not create patient: %w", err)
	}

	log.WithField("patient_id", patient.ID).Info("Patient created successfully")
	return nil
}

func (s *patientService) GetPatient(ctx context.Context, id string) (*models.Patient, error) {
	patient, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":    "patient",
			"method":     "GetPatient",
			"patient_id": id,
		}).WithError(err).Warn("Failed to get patient")
		return nil, fmt.Errorf("service: could not get patient: %w", err)
	}
	return patient, nil
}

// FindBestMatch ищет пациента по части имени и фамилии без учета регистра.
// Нет совпадений - (nil, nil).
func (s *patientService) FindBestMatch(ctx context.Context, firstName, lastName string) (*models.Patient, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" && lastName == "" {
		return nil, nil
	}

	patient, err := s.repo.FindBestMatch(ctx, firstName, lastName)
	if err != nil {
		return nil, fmt.Errorf("service: could not match patient: %w", err)
	}
	return patient, nil
}
