// Package logging adapts log/slog to the auth.Logger interface used across
// the service.
package logging

import (
	"log/slog"
	"os"
)

type Logger struct {
	l *slog.Logger
}

// New returns a text slog logger writing to stderr. Debug output is enabled
// for the development environment.
func New(env string) *Logger {
	level := slog.LevelInfo
	if env == "development" {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return &Logger{l: slog.New(handler)}
}

func (s *Logger) Debug(msg string, args ...any) {
	s.l.Debug(msg, args...)
}

func (s *Logger) Info(msg string, args ...any) {
	s.l.Info(msg, args...)
}

func (s *Logger) Error(msg string, args ...any) {
	s.l.Error(msg, args...)
}
