package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fct/internal/config"
)

func TestNewEnvConfig_FromEnvironment(t *testing.T) {
	// Arrange
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_PRODUCTION_TYPE", "prod")
	t.Setenv("APP_LOG_PATH", "/var/log/fct/app.log")
	t.Setenv("APP_CORS_ORIGINS", "https://ops.example,https://fleet.example")
	t.Setenv("VALIDATION_MESSAGES_PATH", "/etc/fct/messages.yaml")
	t.Setenv("VALIDATION_FALLBACK_MESSAGE", "Error de validación")

	// Act
	cfg, err := config.NewEnvConfig()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "prod", cfg.ProductionType)
	assert.Equal(t, "/var/log/fct/app.log", cfg.LogPath)
	assert.Equal(t, []string{"https://ops.example", "https://fleet.example"}, cfg.CORSOrigins)
	assert.Equal(t, "/etc/fct/messages.yaml", cfg.Validation.MessagesPath)
	assert.Equal(t, "Error de validación", cfg.Validation.FallbackMessage)
}

func TestNewEnvConfig_Defaults(t *testing.T) {
	cfg, err := config.NewEnvConfig()

	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Port)
	assert.NotEmpty(t, cfg.CORSOrigins)
	assert.NotEmpty(t, cfg.Validation.FallbackMessage)
}
