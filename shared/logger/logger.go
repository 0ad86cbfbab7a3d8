package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger creates the process logger. Unknown levels fall back to info.
func NewLogger(service, level string, pretty bool) *zerolog.Logger {
	return newLogger(os.Stdout, service, level, pretty)
}

func newLogger(w io.Writer, service, level string, pretty bool) *zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	logger := zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Str("service", service).
		Logger()

	return &logger
}
