package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// New returns a structured logger at the given level, defaulting to info
// when the level string does not parse.
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).With().Timestamp().Logger().Level(lvl)
}
