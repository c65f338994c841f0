// Package logtrace configures structured logging for the LabKey client.
// It wraps zerolog so library code and the CLI share one logger setup.
package logtrace

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger initializes the global logger with Unix timestamp format.
// Output goes to stderr; the default level is warn so library diagnostics
// (credential warnings, netrc permission problems) are visible without
// drowning callers in request traces.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
}

// SetDebug toggles debug-level logging. When enabled, the HTTP layer logs
// every request and response with a per-call request id.
func SetDebug(enabled bool) {
	if enabled {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}

// InitConsoleLogger switches the global logger to human-readable console
// output. Used by the CLI; library consumers keep the structured form.
func InitConsoleLogger() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}
