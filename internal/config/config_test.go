package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("DATABASE_URL", "postgres://localhost/test")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoadEnvironmentVariables_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("BASE_URL", "")

	cfg, err := LoadEnvironmentVariables()

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "admin123", cfg.AdminPassword)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, "test-key", cfg.GeminiKey)
}

func TestLoadEnvironmentVariables_MissingGeminiKey(t *testing.T) {
	setRequired(t)
	t.Setenv("GEMINI_API_KEY", "")

	_, err := LoadEnvironmentVariables()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestLoadEnvironmentVariables_MissingDatabaseURL(t *testing.T) {
	setRequired(t)
	t.Setenv("DATABASE_URL", "")

	_, err := LoadEnvironmentVariables()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoadEnvironmentVariables_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("ADMIN_PASSWORD", "outra-senha")
	t.Setenv("GOOGLE_CLIENT_ID", "client-id")

	cfg, err := LoadEnvironmentVariables()

	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "outra-senha", cfg.AdminPassword)
	assert.Equal(t, "client-id", cfg.GoogleClientID)
}
