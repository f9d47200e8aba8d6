// Package log provides the leveled logger used by huffcode.
// Messages are single lines of the form "LEVEL message key=value ...".
package log

import (
	"io"
	"log/slog"
	"sync"
)

// Level specifies the level of logging.
type Level = slog.Level

// Supported log levels.
const (
	Debug = slog.LevelDebug
	Info  = slog.LevelInfo
	Error = slog.LevelError
)

// Logger is a slog.Logger with a few helpers.
type Logger struct{ *slog.Logger }

// New builds a logger that writes messages at or above lvl to w.
func New(w io.Writer, lvl Level) *Logger {
	return &Logger{slog.New(&handler{W: w, Level: lvl, mu: new(sync.Mutex)})}
}

// WithName builds a new logger with the provided name. The returned logger is
// safe to use concurrently with this logger.
func (l *Logger) WithName(name string) *Logger {
	out := *l
	out.Logger = l.WithGroup(name)
	return &out
}
