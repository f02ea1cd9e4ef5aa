package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "http://localhost:8080", cfg.UpstreamURL)
	assert.Equal(t, 5*time.Minute, cfg.CategoriesTTL)
	assert.Equal(t, 30*time.Second, cfg.ProductsTTL)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("AUREA_ADDR", ":8090")
	t.Setenv("UPSTREAM_API_URL", "https://api.example.com")
	t.Setenv("PRODUCTS_CACHE_TTL", "10s")
	t.Setenv("RATE_LIMIT", "50")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8090", cfg.Addr)
	assert.Equal(t, "https://api.example.com", cfg.UpstreamURL)
	assert.Equal(t, 10*time.Second, cfg.ProductsTTL)
	assert.Equal(t, 50, cfg.RateLimit)
}

func TestLoad_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("PRODUCTS_CACHE_TTL", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.ProductsTTL)
}

func TestLoad_ProductionRequiresRevalidationSecret(t *testing.T) {
	t.Setenv("AUREA_ENV", "production")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REVALIDATION_SECRET")

	t.Setenv("REVALIDATION_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}
