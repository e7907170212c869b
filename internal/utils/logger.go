package utils

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/spendtrack/backend/internal/config"
)

// InitLogger initializes the application logger with the given configuration
func InitLogger(cfg *config.AppConfig) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Logging.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Console format is only used outside production
	var output io.Writer = os.Stdout
	if strings.ToLower(cfg.Logging.Format) == "console" && !cfg.App.IsProduction() {
		output = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	}

	log.Logger = zerolog.New(output).
		With().
		Timestamp().
		Str("app", cfg.App.Name).
		Str("version", cfg.App.Version).
		Str("env", cfg.App.Environment).
		Logger()

	log.Info().Msg("Logger initialized")
}

// LogDBQuery logs a database query with its duration and outcome.
// Sensitive argument values must be redacted by the caller before logging.
func LogDBQuery(query string, args []interface{}, duration time.Duration, err error) {
	event := log.Debug().
		Str("query", strings.Join(strings.Fields(query), " ")).
		Dur("duration", duration)

	if len(args) > 0 {
		event = event.Interface("args", args)
	}

	if err != nil {
		log.Error().
			Err(err).
			Str("query", strings.Join(strings.Fields(query), " ")).
			Dur("duration", duration).
			Msg("Database query failed")
		return
	}

	event.Msg("Database query executed")
}
