package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "github.com/tiqn/dispatch_engine/docs"
	"github.com/tiqn/dispatch_engine/internal/config"
	"github.com/tiqn/dispatch_engine/internal/events"
	"github.com/tiqn/dispatch_engine/internal/geo"
	v1 "github.com/tiqn/dispatch_engine/internal/handler/http/v1"
	"github.com/tiqn/dispatch_engine/internal/repository"
	"github.com/tiqn/dispatch_engine/internal/repository/memory"
	"github.com/tiqn/dispatch_engine/internal/service"
	"github.com/tiqn/dispatch_engine/pkg/logger"
	"github.com/tiqn/dispatch_engine/pkg/metrics"
	mongoclient "github.com/tiqn/dispatch_engine/pkg/mongo"
	"github.com/tiqn/dispatch_engine/pkg/postgres"
	redisclient "github.com/tiqn/dispatch_engine/pkg/redis"
)

// stores - репозитории выбранного драйвера хранения
type stores struct {
	tx          service.TxRunner
	incidents   service.IncidentRepository
	assignments service.AssignmentRepository
	rescuers    service.RescuerRepository
	dispatch    service.DispatchStateRepository
	patients    service.PatientRepository
}

// @title Dispatch Engine API
// @version 1.0
// @description Incident and assignment orchestration for emergency dispatch.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Метрики регистрируются в собственном реестре
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	appMetrics := metrics.NewMetrics(cfg.MetricsNamespace, registry)

	var (
		st          stores
		redisClient *redis.Client
		bus         interface {
			events.Publisher
			events.Subscriber
		}
	)

	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		if err := runMigrations(cfg, log); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}

		dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL, postgres.Options{})
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer dbpool.Close()
		log.Info("Successfully connected to PostgreSQL")

		redisClient, err = redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		st = stores{
			tx:          repository.NewTxRunner(dbpool),
			incidents:   repository.NewIncidentRepository(dbpool, redisClient),
			assignments: repository.NewAssignmentRepository(dbpool),
			rescuers:    repository.NewRescuerRepository(dbpool),
			dispatch:    repository.NewDispatchStateRepository(dbpool),
		}
		bus = events.NewRedisBus(redisClient, log, cfg.WebhookURL != "")

	case config.StoreDriverMemory:
		store := memory.NewStore()
		st = stores{
			tx:          store.TxRunner(),
			incidents:   store.Incidents(),
			assignments: store.Assignments(),
			rescuers:    store.Rescuers(),
			dispatch:    store.DispatchState(),
			patients:    store.Patients(),
		}
		bus = events.NewBroker()
		log.Warn("Using in-memory store, data is lost on restart")
	}

	// Справочник пациентов
	if cfg.MongoURI != "" {
		mongoClient, err := mongoclient.NewMongoClient(ctx, cfg.MongoURI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer func() { _ = mongoClient.Disconnect(context.Background()) }()

		st.patients, err = repository.NewPatientRepository(ctx, mongoClient.Database(cfg.MongoDB))
		if err != nil {
			log.Fatalf("Failed to init patient repository: %v", err)
		}
		log.Info("Successfully connected to MongoDB")
	} else if st.patients == nil {
		st.patients = memory.NewStore().Patients()
		log.Warn("MONGO_URI is not set, patient records are kept in memory")
	}

	publishers := events.MultiPublisher{bus}
	if cfg.MQTTBrokerURL != "" {
		mqttPublisher, err := events.NewMQTTPublisher(cfg.MQTTBrokerURL, cfg.MQTTClientID)
		if err != nil {
			log.Fatalf("Failed to connect to MQTT broker: %v", err)
		}
		defer mqttPublisher.Close()
		publishers = append(publishers, mqttPublisher)
		log.Info("Successfully connected to MQTT broker")
	}

	// Инициализация и запуск воркера вебхуков
	if cfg.WebhookURL != "" {
		if redisClient == nil {
			log.Warn("WEBHOOK_URL is set but Redis is not used by the memory driver, webhooks are disabled")
		} else {
			events.NewWebhookWorker(redisClient, log, cfg).Start(ctx)
		}
	}

	// Геокодер и маршруты, без ключа ранжирование использует запасные оценки
	var (
		geocoder   service.Geocoder
		directions service.DirectionsProvider
	)
	if cfg.GoogleMapsAPIKey != "" {
		mapsClient, err := geo.NewClient(geo.Options{
			APIKey:  cfg.GoogleMapsAPIKey,
			Region:  cfg.GeocodeRegion,
			Country: cfg.GeocodeCountry,
			Timeout: cfg.UpstreamTimeout,
		})
		if err != nil {
			log.Fatalf("Failed to init Google Maps client: %v", err)
		}
		geocoder, directions = mapsClient, mapsClient
	} else {
		log.Warn("GOOGLE_MAPS_API_KEY is not set, ranking uses straight-line estimates")
	}

	// Инициализация сервисов
	incidentService := service.NewIncidentService(st.incidents, publishers, appMetrics, log)
	patientService := service.NewPatientService(st.patients, log)
	dispatchService := service.NewDispatchService(st.dispatch, publishers, appMetrics, log)
	assignmentService := service.NewAssignmentService(st.tx, st.assignments, st.incidents, publishers, appMetrics, log, cfg)
	rankingService := service.NewRankingService(geocoder, directions, incidentService, patientService, appMetrics, log, cfg)
	rescuerService := service.NewRescuerService(st.rescuers, st.assignments, incidentService, patientService, rankingService, publishers, appMetrics, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(v1.Services{
		Incidents:   incidentService,
		Assignments: assignmentService,
		Rescuers:    rescuerService,
		Dispatch:    dispatchService,
		Patients:    patientService,
	}, bus, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: router,
	}
	// Контекст запросов наследуется от ctx
	srv.BaseContext = func(net.Listener) context.Context { return ctx }

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	// Останавливаем воркер вебхуков и потоки событий
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
