package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"fct/internal/config"
)

// Setup инициализирует и настраивает логгер zerolog в зависимости от окружения.
// В режиме debug логи выводятся в stdout, в production - в файл.
func Setup(envConf *config.Config) (*zerolog.Logger, error) {
	if envConf.ProductionType == "debug" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	// часы:минуты:секунды день.месяц.год
	zerolog.TimeFieldFormat = "15:04:05 02.01.2006"

	// Показываем только последние 2 части пути к файлу
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		parts := strings.Split(file, "/")
		if len(parts) > 2 {
			file = strings.Join(parts[len(parts)-2:], "/")
		}
		return fmt.Sprintf("%s:%d", file, line)
	}

	writer, err := newWriter(envConf)
	if err != nil {
		return nil, err
	}

	loggerContext := zerolog.New(writer).
		With().
		Caller().
		Timestamp().
		Logger()

	// Глобальный логгер, чтобы все вызовы log.Info() использовали его
	log.Logger = loggerContext

	log.Info().Msg("logger setup complete")
	return &loggerContext, nil
}

func newWriter(envConf *config.Config) (io.Writer, error) {
	if envConf.ProductionType != "prod" {
		return os.Stdout, nil
	}

	if err := os.MkdirAll(filepath.Dir(envConf.LogPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create logger directory: %w", err)
	}

	logFile, err := os.OpenFile(envConf.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open logger file: %w", err)
	}
	return logFile, nil
}
