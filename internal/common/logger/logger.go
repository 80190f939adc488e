package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a structured logger tagged with the component name.
// Output is console-formatted on a TTY-less CLI either way; level comes
// from configuration.
func New(component, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(lvl).With().
		Timestamp().
		Str("component", component).
		Logger()
}
