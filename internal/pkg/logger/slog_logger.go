package logger

import (
	"log/slog"
	"os"
)

// slogLogger adapts *slog.Logger to Logger. Console and file loggers differ only in their handler.
type slogLogger struct {
	logger *slog.Logger
}

// Debug logs a debug message.
func (l *slogLogger) Debug(args ...interface{}) {
	l.logger.Debug(formatArgs(args...))
}

// Info logs an informational message.
func (l *slogLogger) Info(args ...interface{}) {
	l.logger.Info(formatArgs(args...))
}

// Warn logs a warning message.
func (l *slogLogger) Warn(args ...interface{}) {
	l.logger.Warn(formatArgs(args...))
}

// Error logs an error message.
func (l *slogLogger) Error(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
}

// Fatal logs a fatal message and exits.
func (l *slogLogger) Fatal(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
	os.Exit(1)
}

// Panic logs a panic message and panics.
func (l *slogLogger) Panic(args ...interface{}) {
	msg := formatArgs(args...)
	l.logger.Error(msg)
	panic(msg)
}

// With returns a child logger carrying the given attributes.
func (l *slogLogger) With(args ...interface{}) Logger {
	return &slogLogger{logger: l.logger.With(args...)}
}
