package logutil

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the process logger. Development gets human-readable console
// output, everything else structured JSON.
func New(env string) zerolog.Logger {
	if env == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
