// Package observability builds the logger and tracer used by the processor.
package observability

import (
	"io"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/opensource-health/propr/internal/domain"
)

// NewLogger returns a structured logger writing to w.
func NewLogger(cfg domain.LoggingConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	if strings.EqualFold(cfg.Format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
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

// NewTracer returns the global OpenTelemetry tracer when tracing is enabled
// and a no-op tracer otherwise.
func NewTracer(cfg domain.TracingConfig) trace.Tracer {
	name := cfg.ServiceName
	if name == "" {
		name = "propr"
	}
	if !cfg.Enabled {
		return noop.NewTracerProvider().Tracer(name)
	}
	return otel.Tracer(name)
}
