package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tiqn/dispatch_engine/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mocks/repository.go -package=mocks

// IncidentRepository определяет контракт для работы с хранилищем инцидентов
type IncidentRepository interface {
	UpsertBySession(ctx context.Context, sessionID string, patch models.IncidentPatch, now time.Time) (uuid.UUID, bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	GetBySession(ctx context.Context, sessionID string) (*models.Incident, error)
	ListRecent(ctx context.Context, limit int) ([]*models.Incident, error)
	SetCoordinates(ctx context.Context, sessionID string, coords models.Coordinates, now time.Time) (uuid.UUID, error)

	GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error
}

// AssignmentRepository - чтения назначений вне транзакций
type AssignmentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Assignment, error)
	GetLatestByIncident(ctx context.Context, incidentID uuid.UUID) (*models.Assignment, error)
	ListByStatus(ctx context.Context, status models.AssignmentStatus) ([]*models.Assignment, error)
	GetActiveByRescuer(ctx context.Context, rescuerID uuid.UUID) (*models.Assignment, error)
}

// RescuerRepository определяет контракт для реестра спасателей
type RescuerRepository interface {
	Create(ctx context.Context, rescuer *models.Rescuer) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Rescuer, error)
	List(ctx context.Context) ([]*models.Rescuer, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, loc models.Location) error
}

// DispatchStateRepository - единственная запись состояния диспетчерской.
// Get возвращает (nil, nil), если запись еще не создавалась.
type DispatchStateRepository interface {
	Get(ctx context.Context) (*models.DispatchState, error)
	SetActiveDispatcher(ctx context.Context, dispatcherID string, now time.Time) error
	SetActiveIncident(ctx context.Context, incidentID *uuid.UUID, now time.Time) error
}

// PatientRepository - справочник известных пациентов.
// FindBestMatch возвращает (nil, nil), если совпадений нет.
type PatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) error
	GetByID(ctx context.Context, id string) (*models.Patient, error)
	FindBestMatch(ctx context.Context, firstName, lastName string) (*models.Patient, error)
}

// TxRunner выполняет fn как одну атомарную единицу работы.
// Если fn возвращает ошибку, ни одна запись не сохраняется.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx - операции, доступные внутри транзакции. Lock* блокируют запись до конца транзакции.
type Tx interface {
	LockIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	SetIncidentStatus(ctx context.Context, id uuid.UUID, status models.IncidentStatus, now time.Time) error

	FindPendingAssignment(ctx context.Context, incidentID uuid.UUID) (*models.Assignment, error)
	// FindEngagedAssignment - принятое или завершенное назначение по инциденту либо (nil, nil)
	FindEngagedAssignment(ctx context.Context, incidentID uuid.UUID) (*models.Assignment, error)
	// FindAcceptedByRescuer - принятое назначение спасателя либо (nil, nil)
	FindAcceptedByRescuer(ctx context.Context, rescuerID uuid.UUID) (*models.Assignment, error)
	InsertAssignment(ctx context.Context, assignment *models.Assignment) error
	LockAssignment(ctx context.Context, id uuid.UUID) (*models.Assignment, error)
	SaveAssignment(ctx context.Context, assignment *models.Assignment) error

	LockRescuer(ctx context.Context, id uuid.UUID) (*models.Rescuer, error)
	SaveRescuerStats(ctx context.Context, id uuid.UUID, stats models.RescuerStats) error
}
