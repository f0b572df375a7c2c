package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns the application logger writing JSON lines to stdout.
func New(service string) zerolog.Logger {
	return zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", service).
		Logger()
}
