// Package applog sets up the diagnostic log. The TUI owns the terminal, so
// logs go to a file under the XDG state directory.
package applog

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

const (
	appName     = "affirm"
	logFileName = "affirm.log"
)

// Logger wraps a zerolog.Logger with the file it writes to.
type Logger struct {
	zerolog.Logger
	closer io.Closer
}

// Open creates a file logger at path, or at the default state location when
// path is empty. An unknown level falls back to info.
func Open(path, level string) (*Logger, error) {
	if path == "" {
		var err error
		path, err = xdg.StateFile(filepath.Join(appName, logFileName))
		if err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &Logger{Logger: New(f, level), closer: f}, nil
}

// New builds a logger writing JSON lines to w.
func New(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(w).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// Console builds a human-readable logger, for command-line tools.
func Console(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// Close closes the log file. Safe on a nil Logger.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
