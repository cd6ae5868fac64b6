package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveTransition(t *testing.T) {
	m := NewMetrics("test", prometheus.NewRegistry())

	m.ObserveTransition("accept", nil)
	m.ObserveTransition("accept", errors.New("boom"))
	m.ObserveTransition("accept", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.AssignmentTransitions.WithLabelValues("accept", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AssignmentTransitions.WithLabelValues("accept", "error")))
}

func TestNewMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewMetrics("test", prometheus.NewRegistry())
		NewMetrics("test", prometheus.NewRegistry())
	})
}
