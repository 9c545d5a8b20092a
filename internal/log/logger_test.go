package log

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newBufferLogger(level slog.Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(Config{Level: level, Component: "test", Output: &buf}), &buf
}

func TestLoggerTagsComponent(t *testing.T) {
	logger, buf := newBufferLogger(slog.LevelInfo)
	logger.WithComponent(ComponentTheme).Info("hello", FieldTheme, "dark")

	out := buf.String()
	if !strings.Contains(out, "component=theme") || !strings.Contains(out, "theme=dark") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFieldsToSliceIsSorted(t *testing.T) {
	got := NewFields().WithTheme("light", "dark").WithOperation(OpUpdate).ToSlice()
	want := []any{FieldOperation, OpUpdate, FieldPrevTheme, "light", FieldTheme, "dark"}
	if len(got) != len(want) {
		t.Fatalf("ToSlice() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ToSlice() = %v, want %v", got, want)
		}
	}
}

func TestContextLogger(t *testing.T) {
	logger, buf := newBufferLogger(slog.LevelInfo)

	ctx := NewContext(context.Background(), logger.With(FieldRequestID, "req-1"))
	FromContext(ctx).Info("inside")

	if !strings.Contains(buf.String(), "request_id=req-1") {
		t.Fatalf("request id not propagated: %q", buf.String())
	}
	if FromContext(context.Background()).Component() != "unknown" {
		t.Fatal("expected fallback logger")
	}
}

func TestStructuredLoggerLevels(t *testing.T) {
	logger, buf := newBufferLogger(slog.LevelInfo)
	sl := NewStructuredLogger(logger)
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)

	sl.LogHTTPEnd(context.Background(), req, 404, 3, "1.2.3.4")
	sl.LogHTTPEnd(context.Background(), req, 500, 3, "1.2.3.4")
	sl.LogThemeChanged(context.Background(), "light", "dark", "memory")
	sl.LogError(context.Background(), "boom", errors.New("bad"), ComponentAMQP, OpPublish, nil)

	out := buf.String()
	for _, want := range []string{"level=WARN", "level=ERROR", "previous_theme=light", "error=bad", "component=amqp"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
