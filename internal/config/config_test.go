package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "DATABASE_URL", "MONGODB_DATABASE", "ALLOWED_ORIGINS", "WEB_PORT", "CONTENT_API_URL", "CONTENT_API_TIMEOUT", "LOG_LEVEL"} {
		unsetEnv(t, key)
	}

	cfg := Load()

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.DatabaseURL)
	assert.Equal(t, "portfolio", cfg.MongoDatabase)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, "http://localhost:5000", cfg.ContentAPIURL)
	assert.Equal(t, 5*time.Second, cfg.ContentAPITimeout)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/portfolio?sslmode=disable")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("CONTENT_API_TIMEOUT", "not-a-duration")

	cfg := Load()

	assert.Equal(t, "8081", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "postgres://u:p@db:5432/portfolio?sslmode=disable", cfg.DatabaseURL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.ContentAPITimeout)
}

func TestParseStringSliceEmpty(t *testing.T) {
	assert.Equal(t, []string{}, parseStringSlice(""))
	assert.Equal(t, []string{}, parseStringSlice(" , "))
}

// unsetEnv clears key for the duration of the test and restores it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unset %s: %v", key, err)
	}
}
