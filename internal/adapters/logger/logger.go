// Package logger implements the ports.Logger interface on log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"

	"go.trai.ch/depscope/internal/core/ports"
)

// Logger implements ports.Logger using a slog text handler.
type Logger struct {
	logger *slog.Logger
}

// New creates a Logger writing to stderr, keeping the standard output
// stream free for query results.
func New() ports.Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter creates a Logger writing to the given writer. Used in tests.
func NewWithWriter(w io.Writer) ports.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return &Logger{logger: slog.New(handler)}
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.logger.Info(msg)
}

// Error logs an error.
func (l *Logger) Error(err error) {
	l.logger.Error(err.Error())
}
