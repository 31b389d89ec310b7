package grove

import (
	"io"

	"github.com/rs/zerolog"
)

// NewConsoleLogger returns a human-readable logger writing to w. Verbose
// loggers include debug events.
func NewConsoleLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Logger()
}
