package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	AssignmentTransitions *prometheus.CounterVec
	IncidentUpserts       *prometheus.CounterVec
	UpstreamFailures      *prometheus.CounterVec
	RankingDuration       prometheus.Histogram
	EventsPublished       *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics registered on reg
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		AssignmentTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assignment_transitions_total",
			Help:      "The total number of assignment transitions by operation and result",
		}, []string{"op", "result"}),
		IncidentUpserts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "incident_upserts_total",
			Help:      "The total number of incident upserts by session",
		}, []string{"op"}),
		UpstreamFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_failures_total",
			Help:      "The total number of geocoder and directions failures",
		}, []string{"service"}),
		RankingDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ranking_duration_seconds",
			Help:      "Time taken to rank incidents for a rescuer",
			Buckets:   prometheus.DefBuckets,
		}),
		EventsPublished: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "change_events_published_total",
			Help:      "The total number of change events by entity and result",
		}, []string{"entity", "result"}),
	}
}

// ObserveTransition увеличивает счетчик переходов назначения
func (m *Metrics) ObserveTransition(op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.AssignmentTransitions.WithLabelValues(op, result).Inc()
}
