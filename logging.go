package rebalance

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// LogConfig holds logger configuration.
type LogConfig struct {
	Level string // debug, info, warn, error
	File  string // append to this file instead of the console when set
}

// NewLogger creates a structured logger. It is the only place log output is
// configured; the library itself takes loggers by injection.
func NewLogger(cfg LogConfig) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	switch cfg.Level {
	case "", "info":
		level = zerolog.InfoLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log level %q", cfg.Level)
	}

	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("cannot open log file: %w", err)
		}
		return zerolog.New(f).Level(level).With().Timestamp().Logger(), nil
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(output).Level(level).With().Timestamp().Logger(), nil
}
