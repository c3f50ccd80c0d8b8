package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Options controls how the process logger is built.
type Options struct {
	Level   string
	Verbose bool
	Console bool
}

// New builds a logger writing to w. Every record carries a session id so that
// the lines of one interactive run can be told apart in a shared log file.
func New(w io.Writer, opts Options) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
	if err != nil || opts.Level == "" {
		level = zerolog.WarnLevel
	}
	if opts.Verbose && level > zerolog.InfoLevel {
		level = zerolog.InfoLevel
	}
	if DebugEnabled() {
		level = zerolog.DebugLevel
	}

	if opts.Console {
		cw := zerolog.NewConsoleWriter()
		cw.Out = w
		cw.TimeFormat = time.DateTime
		w = cw
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("session", uuid.NewString()).
		Logger()
}

// DebugEnabled returns true if debug mode is enabled via TD_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv("TD_DEBUG") != ""
}
