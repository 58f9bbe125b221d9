package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.AI.Provider)
	assert.Equal(t, 10*time.Second, cfg.AI.Timeout)
	assert.Equal(t, 3, cfg.AI.FailureThreshold)
	assert.Equal(t, time.Minute, cfg.AI.Cooldown)
	assert.Equal(t, 2.0, cfg.AI.RatePerSecond)
	assert.Equal(t, 5, cfg.Business.LowStockThreshold)
	assert.Equal(t, 100, cfg.Business.WhatsAppLogLimit)
	assert.Equal(t, "file", cfg.Snapshot.Backend)
	assert.False(t, cfg.Snapshot.RestoreOnStart)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Setenv("AI_PROVIDER", "Anthropic")
	t.Setenv("AI_TIMEOUT_SECONDS", "4")
	t.Setenv("AI_RATE_PER_SECOND", "0.5")
	t.Setenv("LOW_STOCK_THRESHOLD", "3")
	t.Setenv("SNAPSHOT_RESTORE_ON_START", "true")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "anthropic", cfg.AI.Provider)
	assert.Equal(t, 4*time.Second, cfg.AI.Timeout)
	assert.Equal(t, 0.5, cfg.AI.RatePerSecond)
	assert.Equal(t, 3, cfg.Business.LowStockThreshold)
	assert.True(t, cfg.Snapshot.RestoreOnStart)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestLoad_ProveedorDesconocido(t *testing.T) {
	t.Setenv("AI_PROVIDER", "ollama")
	_, err := Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "pos", Password: "p@ss:w/rd", DBName: "wc", SSLMode: "disable"}
	assert.Equal(t, "postgres://pos:p%40ss%3Aw%2Frd@db:5432/wc?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
