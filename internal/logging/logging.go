// Package logging provides a zerolog-backed diagnostics sink for hosts
// that want parse warnings on a live log instead of (or in addition to)
// the returned warning slice.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Sink forwards diagnostics to a zerolog logger at warn level.
type Sink struct {
	logger zerolog.Logger
}

// NewSink wraps an existing logger.
func NewSink(logger zerolog.Logger) *Sink {
	return &Sink{logger: logger}
}

// NewConsoleSink builds a sink writing human-readable output, for CLI use.
// A nil writer defaults to stderr.
func NewConsoleSink(w io.Writer) *Sink {
	if w == nil {
		w = os.Stderr
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
	return &Sink{logger: logger}
}

// Warnf implements core.DiagnosticSink.
func (s *Sink) Warnf(format string, args ...interface{}) {
	s.logger.Warn().Msgf(format, args...)
}
