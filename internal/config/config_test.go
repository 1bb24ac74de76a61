package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzametrics/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Metrics.ExportInterval)
	assert.Equal(t, 10*time.Second, cfg.Metrics.PruneInterval)
	assert.Equal(t, 1000, cfg.Metrics.SeriesCapacity)
	assert.Equal(t, 100, cfg.Metrics.EndpointSeriesCapacity)
	assert.Equal(t, "jwt-pizza-service", cfg.Metrics.Source)
	assert.False(t, cfg.Metrics.ExportEnabled())
	assert.False(t, cfg.Logging.ShippingEnabled())
}

func TestLoad_MetricsFromEnv(t *testing.T) {
	t.Setenv("METRICS_URL", "https://otlp.example.com/otlp/v1/metrics")
	t.Setenv("METRICS_API_KEY", "secret")
	t.Setenv("METRICS_USER_ID", "12345")
	t.Setenv("METRICS_EXPORT_INTERVAL", "5s")
	t.Setenv("METRICS_ENDPOINT_SERIES_CAPACITY", "10")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.Metrics.ExportEnabled())
	assert.Equal(t, "12345", cfg.Metrics.UserID)
	assert.Equal(t, 5*time.Second, cfg.Metrics.ExportInterval)
	assert.Equal(t, 10, cfg.Metrics.EndpointSeriesCapacity)
}

func TestExportEnabled_RequiresCredential(t *testing.T) {
	cfg := config.MetricsConfig{URL: "https://otlp.example.com"}
	assert.False(t, cfg.ExportEnabled())

	cfg.APIKey = "key"
	assert.True(t, cfg.ExportEnabled())
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("METRICS_PRUNE_INTERVAL", "soon")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_AdminAndCORS(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "a@jwt.com")
	t.Setenv("ADMIN_PASSWORD", "admin-secret")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://pizza.example.com,https://admin.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.Admin.Enabled())
	assert.Equal(t, "pizza admin", cfg.Admin.Name)
	assert.Equal(t, []string{"https://pizza.example.com", "https://admin.example.com"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, 10, cfg.Orders.PageSize)
}

func TestAdminEnabled_RequiresPassword(t *testing.T) {
	cfg := config.AdminConfig{Email: "a@jwt.com"}
	assert.False(t, cfg.Enabled())
}
