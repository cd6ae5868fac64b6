package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tiqn/dispatch_engine/internal/config"
	"github.com/tiqn/dispatch_engine/internal/models"
	"github.com/tiqn/dispatch_engine/internal/service"
	"github.com/tiqn/dispatch_engine/internal/service/mocks"
	"github.com/tiqn/dispatch_engine/pkg/metrics"
	"go.uber.org/mock/gomock"
)

type rankingMocks struct {
	geocoder   *mocks.MockGeocoder
	directions *mocks.MockDirectionsProvider
	incidents  *mocks.MockIncidentService
	patients   *mocks.MockPatientService
	metrics    *metrics.Metrics
}

func newTestRankingService(t *testing.T) (*service.RankingService, rankingMocks) {
	ctrl := gomock.NewController(t)
	m := rankingMocks{
		geocoder:   mocks.NewMockGeocoder(ctrl),
		directions: mocks.NewMockDirectionsProvider(ctrl),
		incidents:  mocks.NewMockIncidentService(ctrl),
		patients:   mocks.NewMockPatientService(ctrl),
		metrics:    metrics.NewMetrics("test", prometheus.NewRegistry()),
	}
	cfg := &config.Config{RankingConcurrency: 3}
	svc := service.NewRankingService(m.geocoder, m.directions, m.incidents, m.patients, m.metrics, newTestLogger(), cfg)
	return svc, m
}

func offer(incident *models.Incident) *models.OfferView {
	return &models.OfferView{
		Assignment: &models.Assignment{ID: uuid.New(), IncidentID: incident.ID, Status: models.AssignmentStatusPending},
		Incident:   incident,
	}
}

func TestRank_SortsByETAWithFallbacks(t *testing.T) {
	// Подготовка
	svc, m := newTestRankingService(t)
	ctx := context.Background()
	origin := &models.Location{Lat: 0, Lng: 0}

	// ~20 км к северу: сервис маршрутов недоступен, оценка по прямой
	far := &models.Incident{ID: uuid.New(), Coordinates: &models.Coordinates{Lat: 0.1798, Lng: 0}}
	// адрес не геокодируется
	unknown := &models.Incident{ID: uuid.New(), SessionID: "s-unknown", Address: "Calle Falsa 123", Reference: "frente al parque"}
	// маршрут найден
	near := &models.Incident{ID: uuid.New(), Coordinates: &models.Coordinates{Lat: 0.05, Lng: 0.05}}

	offers := []*models.OfferView{offer(far), offer(unknown), offer(near)}

	// Ожидания
	m.directions.EXPECT().
		Directions(gomock.Any(), models.Coordinates{}, *far.Coordinates).
		Return(service.Route{}, errors.New("quota exceeded"))
	m.directions.EXPECT().
		Directions(gomock.Any(), models.Coordinates{}, *near.Coordinates).
		Return(service.Route{Duration: 12*time.Minute + 30*time.Second, Polyline: "abc"}, nil)
	m.geocoder.EXPECT().
		Geocode(gomock.Any(), "Calle Falsa 123", "frente al parque").
		Return(models.Coordinates{}, errors.New("ZERO_RESULTS"))

	// Действие
	ranked := svc.Rank(ctx, origin, offers)

	// Проверки
	require.Len(t, ranked, 3)

	assert.Equal(t, near.ID, ranked[0].Incident.ID)
	assert.Equal(t, 13, ranked[0].ETAMinutes)
	assert.Equal(t, "abc", ranked[0].RoutePolyline)

	assert.Equal(t, far.ID, ranked[1].Incident.ID)
	assert.Equal(t, 30, ranked[1].ETAMinutes)
	assert.InDelta(t, 20.0, ranked[1].DistanceKm, 0.05)
	assert.Empty(t, ranked[1].RoutePolyline)

	assert.Equal(t, unknown.ID, ranked[2].Incident.ID)
	assert.Equal(t, service.UnreachableSentinel, ranked[2].ETAMinutes)
	assert.Equal(t, float64(service.UnreachableSentinel), ranked[2].DistanceKm)
	assert.False(t, ranked[2].Geocoded)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.metrics.UpstreamFailures.WithLabelValues("geocoder")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.metrics.UpstreamFailures.WithLabelValues("directions")))
}

func TestRank_GeocodesAndStoresCoordinates(t *testing.T) {
	svc, m := newTestRankingService(t)
	ctx := context.Background()
	origin := &models.Location{Lat: -33.45, Lng: -70.66}
	incident := &models.Incident{ID: uuid.New(), SessionID: "s-geo", Address: "Av. Vicuña Mackenna 3000"}
	resolved := models.Coordinates{Lat: -33.48, Lng: -70.61}

	m.geocoder.EXPECT().Geocode(gomock.Any(), incident.Address, "").Return(resolved, nil)
	m.incidents.EXPECT().SetCoordinates(gomock.Any(), "s-geo", resolved).Return(incident.ID, nil)
	m.directions.EXPECT().
		Directions(gomock.Any(), models.Coordinates{Lat: -33.45, Lng: -70.66}, resolved).
		Return(service.Route{Duration: 9 * time.Minute}, nil)

	ranked := svc.Rank(ctx, origin, []*models.OfferView{offer(incident)})

	require.Len(t, ranked, 1)
	assert.True(t, ranked[0].Geocoded)
	assert.Equal(t, 9, ranked[0].ETAMinutes)
	require.NotNil(t, ranked[0].Incident.Coordinates)
	assert.Equal(t, resolved, *ranked[0].Incident.Coordinates)
	// Входное предложение не меняется
	assert.Nil(t, incident.Coordinates)
}

func TestRank_CoordinateWriteFailureDoesNotStopRanking(t *testing.T) {
	svc, m := newTestRankingService(t)
	incident := &models.Incident{ID: uuid.New(), SessionID: "s-geo", Address: "Pajaritos 1500"}
	resolved := models.Coordinates{Lat: -33.5, Lng: -70.75}

	m.geocoder.EXPECT().Geocode(gomock.Any(), gomock.Any(), gomock.Any()).Return(resolved, nil)
	m.incidents.EXPECT().SetCoordinates(gomock.Any(), "s-geo", resolved).Return(uuid.Nil, errors.New("db down"))
	m.directions.EXPECT().Directions(gomock.Any(), gomock.Any(), resolved).Return(service.Route{Duration: time.Minute}, nil)

	ranked := svc.Rank(context.Background(), &models.Location{Lat: -33.49, Lng: -70.74}, []*models.OfferView{offer(incident)})

	require.Len(t, ranked, 1)
	assert.Equal(t, 1, ranked[0].ETAMinutes)
	assert.True(t, ranked[0].Geocoded)
}

func TestRank_NoAddressAndNoCoordinates(t *testing.T) {
	svc, _ := newTestRankingService(t)
	incident := &models.Incident{ID: uuid.New()}

	ranked := svc.Rank(context.Background(), &models.Location{}, []*models.OfferView{offer(incident)})

	require.Len(t, ranked, 1)
	assert.Equal(t, service.UnreachableSentinel, ranked[0].ETAMinutes)
}

func TestRank_RescuerWithoutLocation(t *testing.T) {
	svc, _ := newTestRankingService(t)
	a := &models.Incident{ID: uuid.New(), Coordinates: &models.Coordinates{Lat: -33.4, Lng: -70.6}}
	b := &models.Incident{ID: uuid.New(), Coordinates: &models.Coordinates{Lat: -33.5, Lng: -70.7}}

	ranked := svc.Rank(context.Background(), nil, []*models.OfferView{offer(a), offer(b)})

	require.Len(t, ranked, 2)
	for _, r := range ranked {
		assert.Equal(t, service.UnreachableSentinel, r.ETAMinutes)
		assert.Equal(t, float64(service.UnreachableSentinel), r.DistanceKm)
	}
	// Равные ETA сохраняют исходный порядок
	assert.Equal(t, a.ID, ranked[0].Incident.ID)
	assert.Equal(t, b.ID, ranked[1].Incident.ID)
}

func TestRank_PatientEnrichment(t *testing.T) {
	svc, m := newTestRankingService(t)
	named := &models.Incident{ID: uuid.New(), FirstName: "Rosa", LastName: "Pérez"}
	failing := &models.Incident{ID: uuid.New(), FirstName: "Luis"}
	patient := &models.Patient{ID: "65f000000000000000000001", FirstName: "Rosa", LastName: "Pérez Lagos"}

	m.patients.EXPECT().FindBestMatch(gomock.Any(), "Rosa", "Pérez").Return(patient, nil)
	m.patients.EXPECT().FindBestMatch(gomock.Any(), "Luis", "").Return(nil, errors.New("mongo timeout"))

	ranked := svc.Rank(context.Background(), nil, []*models.OfferView{offer(named), offer(failing)})

	require.Len(t, ranked, 2)
	assert.Equal(t, patient, ranked[0].Patient)
	assert.Nil(t, ranked[1].Patient)
}

func TestRank_LinkedPatientSkipsLookup(t *testing.T) {
	svc, _ := newTestRankingService(t)
	incident := &models.Incident{ID: uuid.New(), FirstName: "Rosa"}
	view := offer(incident)
	view.Patient = &models.Patient{ID: "p-1"}

	ranked := svc.Rank(context.Background(), nil, []*models.OfferView{view})

	require.Len(t, ranked, 1)
	assert.Equal(t, "p-1", ranked[0].Patient.ID)
}

func TestRank_UnresolvedLinkedPatientSkipsNameMatch(t *testing.T) {
	// Подготовка: пациент привязан, но карточка не загрузилась
	svc, m := newTestRankingService(t)
	incident := &models.Incident{ID: uuid.New(), FirstName: "Rosa", LastName: "Pérez", PatientID: "65f000000000000000000009"}
	m.patients.EXPECT().FindBestMatch(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	ranked := svc.Rank(context.Background(), nil, []*models.OfferView{offer(incident)})

	// Проверки
	require.Len(t, ranked, 1)
	assert.Nil(t, ranked[0].Patient)
}
