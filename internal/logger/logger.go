package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the application logger. The dev environment gets a
// human-readable console writer, everything else structured JSON.
func New(env string) zerolog.Logger {
	if env == "dev" {
		return zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
