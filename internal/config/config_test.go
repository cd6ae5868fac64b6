package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MemoryDriverDefaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", StoreDriverMemory)
	t.Setenv("DATABASE_URL", "")
	t.Setenv("API_KEYS", " key-a, key-b ")
	t.Setenv("WEBHOOK_ENTITIES", "")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, StoreDriverMemory, cfg.StoreDriver)
	assert.Equal(t, "Santiago, Chile", cfg.GeocodeRegion)
	assert.Equal(t, 5*time.Second, cfg.UpstreamTimeout)
	assert.True(t, cfg.AllowMultiplePendingAssignments)
	assert.Equal(t, []string{"key-a", "key-b"}, cfg.APIKeys)
	assert.Empty(t, cfg.WebhookEntities)
}

func TestLoadConfig_PostgresRequiresDatabaseURL(t *testing.T) {
	t.Setenv("STORE_DRIVER", StoreDriverPostgres)
	t.Setenv("DATABASE_URL", "")

	_, err := LoadConfig()

	require.Error(t, err)
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", StoreDriverPostgres)
	t.Setenv("DATABASE_URL", "postgres://localhost/tiqn")
	t.Setenv("ALLOW_MULTIPLE_PENDING_ASSIGNMENTS", "false")
	t.Setenv("RANKING_CONCURRENCY", "8")
	t.Setenv("UPSTREAM_TIMEOUT", "750ms")
	t.Setenv("WEBHOOK_ENTITIES", "assignment, ,incident")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.False(t, cfg.AllowMultiplePendingAssignments)
	assert.Equal(t, 8, cfg.RankingConcurrency)
	assert.Equal(t, 750*time.Millisecond, cfg.UpstreamTimeout)
	assert.Equal(t, []string{"assignment", "incident"}, cfg.WebhookEntities)
}

func TestValidate_UnknownDriver(t *testing.T) {
	cfg := &Config{StoreDriver: "sqlite", RankingConcurrency: 1}

	err := cfg.Validate()

	assert.ErrorContains(t, err, "unknown STORE_DRIVER")
}
