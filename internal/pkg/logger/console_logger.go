package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/MGTheTrain/aes-vault/internal/pkg/config"
)

// NewConsoleLogger creates a logger writing to stdout in the given format (text or json).
func NewConsoleLogger(level, format string) Logger {
	return newWriterLogger(os.Stdout, level, format)
}

func newWriterLogger(w io.Writer, level, format string) Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return &slogLogger{logger: slog.New(handler)}
}
