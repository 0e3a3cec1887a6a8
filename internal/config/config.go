package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port           string   `envconfig:"APP_PORT" default:"8080"`
	ProductionType string   `envconfig:"APP_PRODUCTION_TYPE" default:"debug"`
	LogPath        string   `envconfig:"APP_LOG_PATH" default:"logs/app.log"`
	CORSOrigins    []string `envconfig:"APP_CORS_ORIGINS" default:"*"`

	Validation Validation `envconfig:"VALIDATION"`
}

type Validation struct {
	// YAML файл с переопределениями сообщений валидации
	MessagesPath    string `envconfig:"MESSAGES_PATH"`
	FallbackMessage string `envconfig:"FALLBACK_MESSAGE" default:"Validation error"`
}

// NewEnvConfig читает конфигурацию из переменных окружения
func NewEnvConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}

func (config *Config) Print() {
	fmt.Print("========== Configuration ==========\n\n")

	fmt.Println("App Configuration:")
	fmt.Printf("\tPort: %s\n", config.Port)
	fmt.Printf("\tProductionType: %s\n", config.ProductionType)
	fmt.Printf("\tLogPath: %s\n", config.LogPath)
	fmt.Printf("\tCORSOrigins: %s\n", strings.Join(config.CORSOrigins, ","))

	fmt.Println("\nValidation Configuration:")
	fmt.Printf("\tMessagesPath: %s\n", config.Validation.MessagesPath)
	fmt.Printf("\tFallbackMessage: %s\n", config.Validation.FallbackMessage)

	fmt.Println("\n===================================")
}
