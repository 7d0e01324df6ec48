package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger is the application-wide structured logger instance.
var Logger = slog.Default()

// InitLogger initializes the global logger with the specified level and format.
// level: "debug", "info", "warn", "error" (defaults to "info")
// format: "json" or "text" (defaults to "text")
func InitLogger(level, format string) {
	Logger = New(os.Stdout, level, format)
	slog.SetDefault(Logger)
}

// New builds a logger writing to w without touching the global default.
func New(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// ParseLevel maps a level name to slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithSession returns a logger with the playback session_id field.
func WithSession(sessionID string) *slog.Logger {
	return Logger.With("session_id", sessionID)
}

// WithComponent returns a logger tagged with a component name.
func WithComponent(name string) *slog.Logger {
	return Logger.With("component", name)
}

// WithError returns a logger with error field.
func WithError(err error) *slog.Logger {
	return Logger.With("error", err)
}
