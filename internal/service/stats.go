package service

import (
	"time"

	"github.com/tiqn/dispatch_engine/internal/models"
)

// ResponseTimeMinutes - время от предложения до принятия в минутах
func ResponseTimeMinutes(offered, accepted time.Time) float64 {
	return float64(accepted.Sub(offered).Milliseconds()) / 60000
}

// AggregateStats добавляет одно завершенное спасение в накопленную статистику.
// Среднее пересчитывается как скользящее: (avg*n + rt) / (n+1).
func AggregateStats(stats models.RescuerStats, responseTimeMinutes float64) models.RescuerStats {
	newTotal := stats.TotalRescues + 1

	avg := responseTimeMinutes
	if stats.AvgResponseTimeMinutes != nil {
		avg = (*stats.AvgResponseTimeMinutes*float64(stats.TotalRescues) + responseTimeMinutes) / float64(newTotal)
	}

	return models.RescuerStats{
		TotalRescues:           newTotal,
		AvgResponseTimeMinutes: &avg,
	}
}
