package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	eventmocks "github.com/tiqn/dispatch_engine/internal/events/mocks"
	"github.com/tiqn/dispatch_engine/internal/models"
	"github.com/tiqn/dispatch_engine/internal/service"
	"github.com/tiqn/dispatch_engine/internal/service/mocks"
	"github.com/tiqn/dispatch_engine/pkg/metrics"
	"go.uber.org/mock/gomock"
)

// newTestIncidentService - сервис инцидентов с мокированными репозиторием и издателем
func newTestIncidentService(t *testing.T) (service.IncidentService, *mocks.MockIncidentRepository, *eventmocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)
	publisherMock := eventmocks.NewMockPublisher(ctrl)

	svc := service.NewIncidentService(repoMock, publisherMock, metrics.NewMetrics("test", prometheus.NewRegistry()), newTestLogger())
	return svc, repoMock, publisherMock
}

func TestGetByID_Success_FromCache(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expected := &models.Incident{ID: incidentID, SessionID: "s-cache"}

	// Ожидания
	repoMock.EXPECT().
		GetIncidentFromCache(ctx, incidentID).
		Return(expected, nil).
		Times(1)

	// Действие
	incident, err := svc.GetByID(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, incident)
}

func TestGetByID_Success_FromDB(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expected := &models.Incident{ID: incidentID, SessionID: "s-db"}

	// Ожидания
	// 1. Промах кеша
	repoMock.EXPECT().GetIncidentFromCache(ctx, incidentID).Return(nil, nil).Times(1)
	// 2. Попадание в БД
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(expected, nil).Times(1)
	// 3. Запись в кеш
	repoMock.EXPECT().SetIncidentCache(ctx, expected).Return(nil).Times(1)

	// Действие
	incident, err := svc.GetByID(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, incident)
}

func TestGetByID_CacheErrorFallsBackToDB(t *testing.T) {
	svc, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expected := &models.Incident{ID: incidentID}

	repoMock.EXPECT().GetIncidentFromCache(ctx, incidentID).Return(nil, fmt.Errorf("redis down"))
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(expected, nil)
	repoMock.EXPECT().SetIncidentCache(ctx, expected).Return(fmt.Errorf("redis down"))

	incident, err := svc.GetByID(ctx, incidentID)

	require.NoError(t, err)
	assert.Equal(t, expected, incident)
}

func TestGetByID_NotFound(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	// Ожидания
	repoMock.EXPECT().GetIncidentFromCache(ctx, incidentID).Return(nil, nil)
	repoMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(nil, fmt.Errorf("incident with id %s not found: %w", incidentID, service.ErrNotFound))

	// Действие
	incident, err := svc.GetByID(ctx, incidentID)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, incident)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestUpsertBySession_PublishesCreated(t *testing.T) {
	// Подготовка
	svc, repoMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	patch := models.IncidentPatch{Address: strPtr("Los Leones 100")}

	// Ожидания
	repoMock.EXPECT().
		UpsertBySession(ctx, "s-1", patch, gomock.Any()).
		Return(incidentID, true, nil)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.ChangeEvent) error {
			assert.Equal(t, models.EntityIncident, event.Entity)
			assert.Equal(t, incidentID.String(), event.ID)
			assert.Equal(t, models.OpCreated, event.Op)
			return nil
		})

	// Действие
	id, err := svc.UpsertBySession(ctx, "s-1", patch)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, incidentID, id)
}

func TestUpsertBySession_PublishFailureIsNotFatal(t *testing.T) {
	svc, repoMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	repoMock.EXPECT().UpsertBySession(ctx, "s-1", gomock.Any(), gomock.Any()).Return(incidentID, false, nil)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(fmt.Errorf("broker down"))

	id, err := svc.UpsertBySession(ctx, "s-1", models.IncidentPatch{})

	require.NoError(t, err)
	assert.Equal(t, incidentID, id)
}

func TestUpsertBySession_InvalidArguments(t *testing.T) {
	svc, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	badStatus := models.IncidentStatus("archived")

	tests := []struct {
		name      string
		sessionID string
		patch     models.IncidentPatch
	}{
		{name: "empty session", sessionID: "", patch: models.IncidentPatch{}},
		{name: "unknown status", sessionID: "s-1", patch: models.IncidentPatch{Status: &badStatus}},
		{name: "latitude out of range", sessionID: "s-1", patch: models.IncidentPatch{Coordinates: &models.Coordinates{Lat: 91}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpsertBySession(ctx, tt.sessionID, tt.patch)
			assert.ErrorIs(t, err, service.ErrInvalidArgument)
		})
	}
}

func TestUpsertBySession_MergePreservesAbsentFields(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	id, err := env.incidents.UpsertBySession(ctx, "call-1", models.IncidentPatch{
		Address:       strPtr("Av. Matta 500"),
		Consciousness: strPtr("consciente"),
	})
	require.NoError(t, err)

	before, err := env.incidents.GetByID(ctx, id)
	require.NoError(t, err)

	sameID, err := env.incidents.UpsertBySession(ctx, "call-1", models.IncidentPatch{
		FirstName: strPtr("Juan"),
	})
	require.NoError(t, err)
	assert.Equal(t, id, sameID)

	after, err := env.incidents.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Av. Matta 500", after.Address)
	assert.Equal(t, "consciente", after.Consciousness)
	assert.Equal(t, "Juan", after.FirstName)
	assert.False(t, after.LastUpdated.Before(before.LastUpdated))
}

func TestGetBySession_AbsentIsNotAnError(t *testing.T) {
	env := newTestEnv(t, nil)

	incident, err := env.incidents.GetBySession(context.Background(), "never-seen")

	require.NoError(t, err)
	assert.Nil(t, incident)
}

func TestListRecent_NewestFirst(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	for _, session := range []string{"A", "B", "C", "D", "E"} {
		_, err := env.incidents.UpsertBySession(ctx, session, models.IncidentPatch{})
		require.NoError(t, err)
	}

	incidents, err := env.incidents.ListRecent(ctx, 3)

	require.NoError(t, err)
	require.Len(t, incidents, 3)
	assert.Equal(t, "E", incidents[0].SessionID)
	assert.Equal(t, "D", incidents[1].SessionID)
	assert.Equal(t, "C", incidents[2].SessionID)
}

func TestListRecent_DefaultLimit(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		_, err := env.incidents.UpsertBySession(ctx, fmt.Sprintf("s-%d", i), models.IncidentPatch{})
		require.NoError(t, err)
	}

	incidents, err := env.incidents.ListRecent(ctx, 0)

	require.NoError(t, err)
	assert.Len(t, incidents, 10)
}

func TestSetCoordinates(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	_, err := env.incidents.SetCoordinates(ctx, "unknown", models.Coordinates{Lat: -33.4, Lng: -70.6})
	assert.ErrorIs(t, err, service.ErrNotFound)

	id, err := env.incidents.UpsertBySession(ctx, "s-1", models.IncidentPatch{Address: strPtr("Irarrázaval 2000")})
	require.NoError(t, err)

	sameID, err := env.incidents.SetCoordinates(ctx, "s-1", models.Coordinates{Lat: -33.45, Lng: -70.6})
	require.NoError(t, err)
	assert.Equal(t, id, sameID)

	incident, err := env.incidents.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, incident.Coordinates)
	assert.Equal(t, -33.45, incident.Coordinates.Lat)
	assert.Equal(t, "Irarrázaval 2000", incident.Address)
	assert.WithinDuration(t, time.Now(), incident.LastUpdated, time.Minute)
}
