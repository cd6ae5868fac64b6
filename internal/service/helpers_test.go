package service_test

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/tiqn/dispatch_engine/internal/config"
	"github.com/tiqn/dispatch_engine/internal/events"
	"github.com/tiqn/dispatch_engine/internal/repository/memory"
	"github.com/tiqn/dispatch_engine/internal/service"
	"github.com/tiqn/dispatch_engine/pkg/metrics"
)

// testEnv - сервисы поверх хранилища в памяти
type testEnv struct {
	store       *memory.Store
	broker      *events.Broker
	metrics     *metrics.Metrics
	incidents   service.IncidentService
	assignments service.AssignmentService
	rescuers    service.RescuerService
	dispatch    service.DispatchService
	patients    service.PatientService
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func newTestEnv(t *testing.T, cfg *config.Config) *testEnv {
	t.Helper()
	if cfg == nil {
		cfg = &config.Config{AllowMultiplePendingAssignments: true, RankingConcurrency: 2}
	}

	logger := newTestLogger()
	store := memory.NewStore()
	broker := events.NewBroker()
	m := metrics.NewMetrics("test", prometheus.NewRegistry())

	incidents := service.NewIncidentService(store.Incidents(), broker, m, logger)
	patients := service.NewPatientService(store.Patients(), logger)
	ranking := service.NewRankingService(nil, nil, incidents, patients, m, logger, cfg)

	return &testEnv{
		store:       store,
		broker:      broker,
		metrics:     m,
		incidents:   incidents,
		assignments: service.NewAssignmentService(store.TxRunner(), store.Assignments(), store.Incidents(), broker, m, logger, cfg),
		rescuers:    service.NewRescuerService(store.Rescuers(), store.Assignments(), incidents, patients, ranking, broker, m, logger),
		dispatch:    service.NewDispatchService(store.DispatchState(), broker, m, logger),
		patients:    patients,
	}
}

func strPtr(s string) *string { return &s }
