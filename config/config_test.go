package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment.Name)
	assert.Equal(t, 8000, cfg.HTTPServer.Port)
	assert.Equal(t, "/api", cfg.HTTPServer.BasePath)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, "test-secret", cfg.JWT.Secret)
	assert.Equal(t, 5*time.Minute, cfg.JWT.AccessTTL)
	assert.Equal(t, 24*time.Hour, cfg.JWT.RefreshTTL)
	assert.Equal(t, 8, cfg.Password.MinLength)
	assert.InDelta(t, 0.7, cfg.Password.MaxSimilarity, 1e-9)
	assert.False(t, cfg.Features.CORSEnabled)
	assert.Equal(t, "UTC", cfg.App.Timezone)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SECRET_KEY", "from-secret-key")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_DSN", "${INVENTORY_TEST_DSN}")
	t.Setenv("INVENTORY_TEST_DSN", "host=db user=app dbname=inventory")
	t.Setenv("FEATURES_CORS_ENABLED", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("APP_TIMEZONE", "Asia/Ho_Chi_Minh")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "from-secret-key", cfg.JWT.Secret)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "host=db user=app dbname=inventory", cfg.Database.DSN)
	assert.True(t, cfg.Features.CORSEnabled)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "Asia/Ho_Chi_Minh", cfg.App.Timezone)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing secret", map[string]string{}},
		{"unknown driver", map[string]string{"JWT_SECRET": "s", "DATABASE_DRIVER": "mysql"}},
		{"bad timezone", map[string]string{"JWT_SECRET": "s", "APP_TIMEZONE": "Mars/Olympus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
