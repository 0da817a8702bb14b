package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestNewLoggerDefaults(t *testing.T) {
	logger := NewLogger(Config{})
	if logger == nil {
		t.Fatal("expected a logger")
	}
	if !logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatal("info must be enabled by default")
	}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("debug must be disabled by default")
	}
}

func TestNewLoggerLevels(t *testing.T) {
	for raw, want := range map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"WARNING": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
		"":        slog.LevelInfo,
	} {
		if got := parseLevel(raw); got != want {
			t.Fatalf("%q: got %v, want %v", raw, got, want)
		}
	}
}

func TestNewLoggerJSONFormat(t *testing.T) {
	if logger := NewLogger(Config{Format: "json", Service: "svc", Version: "1.0"}); logger == nil {
		t.Fatal("expected a logger")
	}
}

func TestContextRoundTrip(t *testing.T) {
	logger := NewLogger(Config{})
	ctx := WithLogger(context.Background(), logger)

	if got := FromContext(ctx); got != logger {
		t.Fatal("logger not recovered from context")
	}
	if got := FromContext(context.Background()); got == nil {
		t.Fatal("expected fallback logger for empty context")
	}
}

func TestHelpersTolerateNilLogger(t *testing.T) {
	// Must not panic.
	Info(nil, "msg")
	Warn(nil, "msg")
	Error(nil, "msg", nil)
}
