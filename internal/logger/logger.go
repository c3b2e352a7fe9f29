package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type ctxKey string

const passIDKey ctxKey = ContextKeyPassID

// InitLogger installs a slog default logger built from config, writing to stdout
func InitLogger(config Config) {
	InitLoggerWithWriter(config, os.Stdout)
}

// InitLoggerWithWriter installs a slog default logger built from config, writing to w
func InitLoggerWithWriter(config Config, w io.Writer) {
	slog.SetDefault(New(config, w))
}

// New builds a logger from config without installing it
func New(config Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     config.LogLevel(),
		AddSource: config.AddSource,
	}

	var handler slog.Handler
	if config.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler.WithAttrs(config.BaseAttributes()))
}

// GeneratePassID creates a new UUID identifying one reconciliation or persistence pass.
func GeneratePassID() string {
	return uuid.NewString()
}

// WithPassID returns a new context containing the pass ID.
func WithPassID(ctx context.Context, passID string) context.Context {
	return context.WithValue(ctx, passIDKey, passID)
}

// PassIDFromContext extracts the pass ID from the context, if present.
func PassIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(passIDKey)
	if v == nil {
		return "", false
	}
	if id, ok := v.(string); ok {
		return id, true
	}
	return "", false
}

// GetPassID returns the pass ID from the context or an empty string
func GetPassID(ctx context.Context) string {
	id, _ := PassIDFromContext(ctx)
	return id
}

// FromContext returns a logger that includes the pass_id attribute when present.
func FromContext(ctx context.Context) *slog.Logger {
	if id, ok := PassIDFromContext(ctx); ok {
		return slog.Default().With(AttrKeyPassID, id)
	}
	return slog.Default()
}

// Debug logs at debug level on the default logger
func Debug(msg string, args ...any) {
	slog.Default().Debug(msg, args...)
}

// Info logs at info level on the default logger
func Info(msg string, args ...any) {
	slog.Default().Info(msg, args...)
}

// Warn logs at warn level on the default logger
func Warn(msg string, args ...any) {
	slog.Default().Warn(msg, args...)
}

// Error logs at error level on the default logger
func Error(msg string, args ...any) {
	slog.Default().Error(msg, args...)
}
