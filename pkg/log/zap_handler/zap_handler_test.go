package zap_handler

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func makeObservedLogger(t *testing.T, level zapcore.LevelEnabler) (*slog.Logger, *observer.ObservedLogs) {
	t.Helper()

	core, observedLogs := observer.New(level)
	return slog.New(New(zap.New(core))), observedLogs
}

func TestNew(t *testing.T) {
	t.Run("nil logger", func(t *testing.T) {
		handler := New(nil)
		if handler == nil {
			t.Fatal("expected non-nil handler")
		}

		if err := handler.Handle(context.Background(), slog.Record{}); err != nil {
			t.Fatalf("unexpected handle error: %v", err)
		}
	})
}

func TestHandler_Enabled(t *testing.T) {
	core, _ := observer.New(zapcore.WarnLevel)
	handler := New(zap.New(core))

	if handler.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("expected info to be disabled")
	}

	if !handler.Enabled(context.Background(), slog.LevelError) {
		t.Error("expected error to be enabled")
	}
}

func TestHandler_Handle(t *testing.T) {
	t.Run("message and level", func(t *testing.T) {
		logger, observedLogs := makeObservedLogger(t, zapcore.DebugLevel)

		logger.Warn("something happened")

		entries := observedLogs.All()
		if len(entries) != 1 {
			t.Fatalf("got %d entries, expected 1", len(entries))
		}

		if entries[0].Message != "something happened" {
			t.Errorf("got message %q, expected %q", entries[0].Message, "something happened")
		}

		if entries[0].Level != zapcore.WarnLevel {
			t.Errorf("got level %v, expected %v", entries[0].Level, zapcore.WarnLevel)
		}
	})

	t.Run("level conversion", func(t *testing.T) {
		logger, observedLogs := makeObservedLogger(t, zapcore.DebugLevel)

		logger.Debug("debug")
		logger.Info("info")
		logger.Warn("warn")
		logger.Error("error")

		entries := observedLogs.All()
		if len(entries) != 4 {
			t.Fatalf("got %d entries, expected 4", len(entries))
		}

		expectedLevels := []zapcore.Level{
			zapcore.DebugLevel,
			zapcore.InfoLevel,
			zapcore.WarnLevel,
			zapcore.ErrorLevel,
		}
		for i, expectedLevel := range expectedLevels {
			if entries[i].Level != expectedLevel {
				t.Errorf("got level %v, expected %v", entries[i].Level, expectedLevel)
			}
		}
	})

	t.Run("record attrs become fields", func(t *testing.T) {
		logger, observedLogs := makeObservedLogger(t, zapcore.DebugLevel)

		logger.Info(
			"message",
			slog.String("name", "value"),
			slog.Int("count", 3),
			slog.Bool("flag", true),
		)

		entries := observedLogs.All()
		if len(entries) != 1 {
			t.Fatalf("got %d entries, expected 1", len(entries))
		}

		expectedContext := map[string]any{"name": "value", "count": int64(3), "flag": true}
		if diff := cmp.Diff(expectedContext, entries[0].ContextMap()); diff != "" {
			t.Errorf("context mismatch (-expected +got):\n%s", diff)
		}
	})

	t.Run("group attr becomes nested object", func(t *testing.T) {
		logger, observedLogs := makeObservedLogger(t, zapcore.DebugLevel)

		logger.Info("message", slog.Group("outer", slog.String("inner", "value")))

		entries := observedLogs.All()
		if len(entries) != 1 {
			t.Fatalf("got %d entries, expected 1", len(entries))
		}

		expectedContext := map[string]any{"outer": map[string]any{"inner": "value"}}
		if diff := cmp.Diff(expectedContext, entries[0].ContextMap()); diff != "" {
			t.Errorf("context mismatch (-expected +got):\n%s", diff)
		}
	})

	t.Run("empty group is elided", func(t *testing.T) {
		logger, observedLogs := makeObservedLogger(t, zapcore.DebugLevel)

		logger.Info("message", slog.Group("empty"))

		entries := observedLogs.All()
		if len(entries) != 1 {
			t.Fatalf("got %d entries, expected 1", len(entries))
		}

		if contextMap := entries[0].ContextMap(); len(contextMap) != 0 {
			t.Errorf("got context %v, expected no fields", contextMap)
		}
	})

	t.Run("disabled level produces no entry", func(t *testing.T) {
		logger, observedLogs := makeObservedLogger(t, zapcore.ErrorLevel)

		logger.Info("message")

		if count := len(observedLogs.All()); count != 0 {
			t.Errorf("got %d entries, expected 0", count)
		}
	})
}

func TestHandler_WithAttrs(t *testing.T) {
	logger, observedLogs := makeObservedLogger(t, zapcore.DebugLevel)

	logger.With(slog.String("component", "fetch")).Info("message", slog.Int("count", 1))

	entries := observedLogs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, expected 1", len(entries))
	}

	expectedContext := map[string]any{"component": "fetch", "count": int64(1)}
	if diff := cmp.Diff(expectedContext, entries[0].ContextMap()); diff != "" {
		t.Errorf("context mismatch (-expected +got):\n%s", diff)
	}
}

func TestHandler_WithGroup(t *testing.T) {
	t.Run("subsequent attrs are namespaced", func(t *testing.T) {
		logger, observedLogs := makeObservedLogger(t, zapcore.DebugLevel)

		logger.WithGroup("http").Info("message", slog.String("method", "GET"))

		entries := observedLogs.All()
		if len(entries) != 1 {
			t.Fatalf("got %d entries, expected 1", len(entries))
		}

		expectedContext := map[string]any{"http": map[string]any{"method": "GET"}}
		if diff := cmp.Diff(expectedContext, entries[0].ContextMap()); diff != "" {
			t.Errorf("context mismatch (-expected +got):\n%s", diff)
		}
	})

	t.Run("empty name is a no-op", func(t *testing.T) {
		logger, observedLogs := makeObservedLogger(t, zapcore.DebugLevel)

		logger.WithGroup("").Info("message", slog.String("name", "value"))

		entries := observedLogs.All()
		if len(entries) != 1 {
			t.Fatalf("got %d entries, expected 1", len(entries))
		}

		expectedContext := map[string]any{"name": "value"}
		if diff := cmp.Diff(expectedContext, entries[0].ContextMap()); diff != "" {
			t.Errorf("context mismatch (-expected +got):\n%s", diff)
		}
	})
}
