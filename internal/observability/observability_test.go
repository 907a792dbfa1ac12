package observability

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/opensource-health/propr/internal/domain"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q): expected %v, got %v", in, want, got)
		}
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(domain.LoggingConfig{Level: "info", Format: "json"}, &buf)
		logger.Info("scored", "score", 0.518)
		logger.Debug("hidden")

		out := buf.String()
		if !strings.Contains(out, `"msg":"scored"`) {
			t.Errorf("expected JSON record, got %q", out)
		}
		if strings.Contains(out, "hidden") {
			t.Errorf("debug record should be filtered at info level: %q", out)
		}
	})

	t.Run("Text", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(domain.LoggingConfig{Level: "debug", Format: "text"}, &buf)
		logger.Debug("scored", "score", 0.518)

		if !strings.Contains(buf.String(), "msg=scored") {
			t.Errorf("expected text record, got %q", buf.String())
		}
	})
}

func TestNewTracer(t *testing.T) {
	for _, enabled := range []bool{false, true} {
		tracer := NewTracer(domain.TracingConfig{Enabled: enabled})
		ctx, span := tracer.Start(context.Background(), "test")
		if ctx == nil || span == nil {
			t.Fatalf("enabled=%v: expected context and span", enabled)
		}
		if span.IsRecording() {
			t.Errorf("enabled=%v: expected non-recording span without an SDK provider", enabled)
		}
		span.End()
	}
}
