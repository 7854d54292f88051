package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

// RequestIDKey is the gin context key the request id middleware writes to.
const RequestIDKey = "RequestID"

var Log = slog.New(slog.NewJSONHandler(os.Stdout, nil))

func Init(level string) {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	Log = slog.New(handler)
}

// FromContext returns the logger annotated with the request id, if the
// context carries one. gin.Context resolves string keys from its key map.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return Log
	}
	if id, ok := ctx.Value(RequestIDKey).(string); ok && id != "" {
		return Log.With("request_id", id)
	}
	return Log
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
