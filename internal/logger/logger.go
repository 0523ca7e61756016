package logger

import (
	"os"

	"github.com/kernel-kun/crossplane-utils/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init initializes the logger using the application configuration.
// Log output goes to the configured log file; stderr is the fallback when the
// file cannot be opened or no file is configured.
func Init(cfg *config.Config) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			log.Logger = zerolog.New(f).With().Timestamp().Caller().Logger()
			return
		}
		log.Warn().Err(err).Str("file", cfg.LogFile).Msg("failed to open log file, falling back to stderr")
	}
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// Debug logs a debug message if debug mode is enabled
func Debug() *zerolog.Event {
	return log.Debug()
}

// Info logs an info message
func Info() *zerolog.Event {
	return log.Info()
}

// Warn logs a warning message
func Warn() *zerolog.Event {
	return log.Warn()
}

// Error logs an error message
func Error() *zerolog.Event {
	return log.Error()
}

// Fatal logs a fatal message and exits with status code 1
func Fatal() *zerolog.Event {
	return log.Fatal()
}
