package cli

import (
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// newLogger builds a console logger in cartographus's style
// (internal/logging): human-readable output on a terminal, one
// correlation ID per invocation for tying together a command's log lines.
func newLogger() zerolog.Logger {
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(writer).With().
		Timestamp().
		Str("correlation_id", newCorrelationID()).
		Logger()
}

// newCorrelationID returns the first 8 characters of a new UUID, matching
// internal/logging.GenerateCorrelationID's truncation for readability.
func newCorrelationID() string {
	return uuid.New().String()[:8]
}
