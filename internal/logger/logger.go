package logger

import (
	"os"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// New builds the process logger. Filtering happens at the global level,
// seeded from LOG_LEVEL in the process environment, so ApplyLevel can
// change it once the configuration has been loaded.
func New() zerolog.Logger {
	ApplyLevel(os.Getenv("LOG_LEVEL"))
	return SetLevel(zerolog.TraceLevel)
}

// ApplyLevel sets the global level every logger is filtered by.
func ApplyLevel(name string) zerolog.Level {
	level := ParseLevel(name)
	zerolog.SetGlobalLevel(level)
	return level
}

func SetLevel(level zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Caller().
		Logger()

	logger = logger.Level(level)

	return logger
}

// ParseLevel maps a level name to a zerolog level, falling back to info.
func ParseLevel(name string) zerolog.Level {
	if name == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

var Module = fx.Provide(New)
