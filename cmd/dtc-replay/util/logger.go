package util

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lolocompany/dtc-replay/cmd/dtc-replay/output"
)

// InitLogger configures the global logger to write human readable lines to
// stderr. Quiet raises the level to warn unless a level was given explicitly.
func InitLogger(level string, quiet bool) (zerolog.Logger, error) {
	lvl := zerolog.InfoLevel
	if level != "" {
		parsed, err := zerolog.ParseLevel(level)
		if err != nil {
			return zerolog.Nop(), err
		}
		lvl = parsed
	} else if quiet {
		lvl = zerolog.WarnLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339
	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !output.IsTTY(os.Stderr),
	}
	logger := zerolog.New(console).
		Level(lvl).
		With().
		Timestamp().
		Str("app", "dtc-replay").
		Logger()
	log.Logger = logger
	return logger, nil
}
