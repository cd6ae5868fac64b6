package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tiqn/dispatch_engine/internal/models"
	"github.com/tiqn/dispatch_engine/internal/service"
)

func TestAggregateStats_RunningAverage(t *testing.T) {
	avg := 4.0
	stats := models.RescuerStats{TotalRescues: 2, AvgResponseTimeMinutes: &avg}

	got := service.AggregateStats(stats, 7)

	assert.Equal(t, 3, got.TotalRescues)
	require.NotNil(t, got.AvgResponseTimeMinutes)
	assert.InDelta(t, 5.0, *got.AvgResponseTimeMinutes, 1e-9)
	// Исходная статистика не меняется
	assert.Equal(t, 4.0, avg)
}

func TestAggregateStats_FirstRescue(t *testing.T) {
	got := service.AggregateStats(models.RescuerStats{}, 2.5)

	assert.Equal(t, 1, got.TotalRescues)
	require.NotNil(t, got.AvgResponseTimeMinutes)
	assert.Equal(t, 2.5, *got.AvgResponseTimeMinutes)
}

func TestResponseTimeMinutes(t *testing.T) {
	offered := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 1.5, service.ResponseTimeMinutes(offered, offered.Add(90*time.Second)))
	assert.Equal(t, 0.0, service.ResponseTimeMinutes(offered, offered))
}
