package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	StoreDriver string `env:"STORE_DRIVER" envDefault:"postgres"`
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Mongo Config (справочник пациентов)
	MongoURI string `env:"MONGO_URI"`
	MongoDB  string `env:"MONGO_DB" envDefault:"tiqn"`

	// MQTT Config (push-события для мобильных клиентов)
	MQTTBrokerURL string `env:"MQTT_BROKER_URL"`
	MQTTClientID  string `env:"MQTT_CLIENT_ID" envDefault:"dispatch-engine"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`
	WebhookEntities   []string      `env:"WEBHOOK_ENTITIES"`

	// Geo Config
	GoogleMapsAPIKey   string        `env:"GOOGLE_MAPS_API_KEY"`
	GeocodeRegion      string        `env:"GEOCODE_REGION" envDefault:"Santiago, Chile"`
	GeocodeCountry     string        `env:"GEOCODE_COUNTRY" envDefault:"CL"`
	UpstreamTimeout    time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"5s"`
	RankingConcurrency int           `env:"RANKING_CONCURRENCY" envDefault:"4"`

	// Assignment Config
	AllowMultiplePendingAssignments bool `env:"ALLOW_MULTIPLE_PENDING_ASSIGNMENTS" envDefault:"true"`

	// Metrics Config
	MetricsNamespace string `env:"METRICS_NAMESPACE" envDefault:"dispatch_engine"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		StoreDriver:                     getEnv("STORE_DRIVER", StoreDriverPostgres),
		DatabaseURL:                     os.Getenv("DATABASE_URL"),
		HTTPPort:                        getEnv("HTTP_PORT", "8080"),
		LogLevel:                        getEnv("LOG_LEVEL", "info"),
		RedisAddr:                       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:                       os.Getenv("REDIS_PASSWORD"),
		RedisDB:                         getEnvAsInt("REDIS_DB", 0),
		MongoURI:                        os.Getenv("MONGO_URI"),
		MongoDB:                         getEnv("MONGO_DB", "tiqn"),
		MQTTBrokerURL:                   os.Getenv("MQTT_BROKER_URL"),
		MQTTClientID:                    getEnv("MQTT_CLIENT_ID", "dispatch-engine"),
		WebhookURL:                      os.Getenv("WEBHOOK_URL"),
		WebhookSecret:                   os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:                  getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:               getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:                getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		GoogleMapsAPIKey:                os.Getenv("GOOGLE_MAPS_API_KEY"),
		GeocodeRegion:                   getEnv("GEOCODE_REGION", "Santiago, Chile"),
		GeocodeCountry:                  getEnv("GEOCODE_COUNTRY", "CL"),
		UpstreamTimeout:                 getEnvAsDuration("UPSTREAM_TIMEOUT", 5*time.Second),
		RankingConcurrency:              getEnvAsInt("RANKING_CONCURRENCY", 4),
		AllowMultiplePendingAssignments: getEnvAsBool("ALLOW_MULTIPLE_PENDING_ASSIGNMENTS", true),
		MetricsNamespace:                getEnv("METRICS_NAMESPACE", "dispatch_engine"),
	}

	// Загрузка API ключей
	cfg.APIKeys = splitList(os.Getenv("API_KEYS"))

	cfg.WebhookEntities = splitList(os.Getenv("WEBHOOK_ENTITIES"))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreDriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required")
		}
	case StoreDriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}

	if c.RankingConcurrency < 1 {
		return fmt.Errorf("RANKING_CONCURRENCY must be positive, got %d", c.RankingConcurrency)
	}
	return nil
}

// splitList разбирает список через запятую, пустые элементы отбрасываются
func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool возвращает значение переменной окружения как bool или значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
