package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tiqn/dispatch_engine/internal/config"
	"github.com/tiqn/dispatch_engine/internal/models"
	"github.com/tiqn/dispatch_engine/pkg/geo"
	"github.com/tiqn/dispatch_engine/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

const (
	// UnreachableSentinel - расстояние и ETA кандидата, для которого маршрут не вычислить
	UnreachableSentinel = 999
	// fallbackSpeedKmh - средняя скорость для оценки ETA без сервиса маршрутов
	fallbackSpeedKmh = 40.0
)

// RankingService упорядочивает доступные инциденты по времени прибытия спасателя.
// Отказы геокодера и сервиса маршрутов не прерывают ранжирование.
type RankingService struct {
	geocoder    Geocoder
	directions  DirectionsProvider
	incidents   IncidentService
	patients    PatientService
	metrics     *metrics.Metrics
	logger      *logrus.Logger
	concurrency int
}

// NewRankingService создает ранжировщик. geocoder и directions могут быть nil,
// тогда используются только запасные оценки.
func NewRankingService(
	geocoder Geocoder,
	directions DirectionsProvider,
	incidents IncidentService,
	patients PatientService,
	m *metrics.Metrics,
	logger *logrus.Logger,
	cfg *config.Config,
) *RankingService {
	concurrency := cfg.RankingConcurrency
	if concurrency < 1 {
		concurrency = 1
	}
	return &RankingService{
		geocoder:    geocoder,
		directions:  directions,
		incidents:   incidents,
		patients:    patients,
		metrics:     m,
		logger:      logger,
		concurrency: concurrency,
	}
}

// Rank рассчитывает расстояние и ETA для каждого предложения и сортирует по возрастанию ETA.
// При равных ETA сохраняется исходный порядок.
func (s *RankingService) Rank(ctx context.Context, origin *models.Location, offers []*models.OfferView) []*models.RankedOffer {
	start := time.Now()
	log := s.logger.WithFields(logrus.Fields{
		"service": "ranking",
		"method":  "Rank",
		"count":   len(offers),
	})

	ranked := make([]*models.RankedOffer, len(offers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, offer := range offers {
		g.Go(func() error {
			ranked[i] = s.rankOne(gctx, log, origin, offer)
			return nil
		})
	}
	_ = g.Wait()

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ETAMinutes < ranked[j].ETAMinutes
	})

	if s.metrics != nil {
		s.metrics.RankingDuration.Observe(time.Since(start).Seconds())
	}
	log.Debug("Offers ranked")
	return ranked
}

func (s *RankingService) rankOne(ctx context.Context, log *logrus.Entry, origin *models.Location, offer *models.OfferView) *models.RankedOffer {
	result := &models.RankedOffer{
		OfferView:  *offer,
		DistanceKm: UnreachableSentinel,
		ETAMinutes: UnreachableSentinel,
	}
	if offer.Incident == nil {
		return result
	}

	// Копия, чтобы не менять инцидент, разделяемый с вызывающим кодом
	incident := *offer.Incident
	result.Incident = &incident
	log = log.WithField("incident_id", incident.ID)

	result.Patient = s.matchPatient(ctx, log, &incident, offer.Patient)

	if incident.Coordinates == nil {
		if incident.Address == "" {
			return result
		}
		coords, ok := s.geocode(ctx, log, &incident)
		if !ok {
			return result
		}
		incident.Coordinates = &coords
		result.Geocoded = true
	}

	if origin == nil {
		return result
	}

	from := models.Coordinates{Lat: origin.Lat, Lng: origin.Lng}
	to := *incident.Coordinates
	result.DistanceKm = geo.HaversineKm(from.Lat, from.Lng, to.Lat, to.Lng)

	if s.directions != nil {
		route, err := s.directions.Directions(ctx, from, to)
		if err == nil {
			result.ETAMinutes = int(math.Ceil(route.Duration.Minutes()))
			result.RoutePolyline = route.Polyline
			return result
		}
		s.upstreamFailure("directions")
		log.WithError(err).Warn("Directions request failed, using straight-line estimate")
	}

	result.ETAMinutes = int(math.Ceil(result.DistanceKm / fallbackSpeedKmh * 60))
	return result
}

// geocode разрешает адрес инцидента и сохраняет найденные координаты в инцидент сессии
func (s *RankingService) geocode(ctx context.Context, log *logrus.Entry, incident *models.Incident) (models.Coordinates, bool) {
	if s.geocoder == nil {
		return models.Coordinates{}, false
	}

	coords, err := s.geocoder.Geocode(ctx, incident.Address, incident.Reference)
	if err != nil {
		s.upstreamFailure("geocoder")
		log.WithError(err).Warn("Failed to geocode incident address")
		return models.Coordinates{}, false
	}

	if incident.SessionID != "" {
		if _, err := s.incidents.SetCoordinates(ctx, incident.SessionID, coords); err != nil {
			log.WithError(err).Warn("Failed to store geocoded coordinates")
		}
	}
	return coords, true
}

// matchPatient подбирает карточку пациента по имени, если она еще не привязана
func (s *RankingService) matchPatient(ctx context.Context, log *logrus.Entry, incident *models.Incident, linked *models.Patient) *models.Patient {
	if linked != nil || incident.PatientID != "" || s.patients == nil || !incident.HasPatientName() {
		return linked
	}

	patient, err := s.patients.FindBestMatch(ctx, incident.FirstName, incident.LastName)
	if err != nil {
		log.WithError(err).Debug("Patient lookup failed")
		return nil
	}
	return patient
}

func (s *RankingService) upstreamFailure(service string) {
	if s.metrics != nil {
		s.metrics.UpstreamFailures.WithLabelValues(service).Inc()
	}
}
