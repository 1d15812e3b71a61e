package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/felixgeelhaar/cornershape/internal/ports"
)

func TestNopLogger_Methods(t *testing.T) {
	logger := NewNopLogger()
	ctx := context.Background()

	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, "warn message")
	logger.Error(ctx, "error message")

	if logger.With(ports.F("key", "value")) != logger {
		t.Error("NopLogger.With should return itself")
	}
}

func TestNopLogger_Level(t *testing.T) {
	logger := NewNopLogger()

	if logger.Level() != ports.LevelInfo {
		t.Errorf("default level = %v, want %v", logger.Level(), ports.LevelInfo)
	}

	logger.SetLevel(ports.LevelDebug)
	if logger.Level() != ports.LevelDebug {
		t.Errorf("after SetLevel, level = %v, want %v", logger.Level(), ports.LevelDebug)
	}
}

func TestConsoleLogger_DefaultsToWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(WithOutput(&buf))

	logger.Info(context.Background(), "located config")
	if buf.Len() > 0 {
		t.Errorf("Info should be filtered by default, got %q", buf.String())
	}

	logger.Warn(context.Background(), "invalid preset choice")
	if !strings.Contains(buf.String(), "[WARN] invalid preset choice") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestConsoleLogger_TextOutput_WithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(WithOutput(&buf), WithLevel(ports.LevelDebug))

	logger.Debug(context.Background(), "injected import", ports.F("file", "tailwind.config.js"), ports.F("line", 3))

	output := buf.String()
	if !strings.Contains(output, "file=tailwind.config.js") {
		t.Errorf("output should contain file field, got %q", output)
	}
	if !strings.Contains(output, "line=3") {
		t.Errorf("output should contain line field, got %q", output)
	}
}

var timestampedLine = regexp.MustCompile(`^\d{2}:\d{2}:\d{2} \[ERROR\] write failed\n$`)

func TestConsoleLogger_Timestamp(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(
		WithOutput(&buf),
		WithTimestamp(true),
	)

	logger.Error(context.Background(), "write failed")

	if !timestampedLine.MatchString(buf.String()) {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestConsoleLogger_JSONTimestamp(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(
		WithOutput(&buf),
		WithJSONFormat(true),
		WithTimestamp(true),
	)

	logger.Warn(context.Background(), "picker cancelled")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}
	stamp, ok := entry["time"].(string)
	if !ok {
		t.Fatalf("entry has no time field: %v", entry)
	}
	if _, err := time.Parse(time.RFC3339, stamp); err != nil {
		t.Errorf("time %q is not RFC3339: %v", stamp, err)
	}
}

func TestConsoleLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(
		WithOutput(&buf),
		WithLevel(ports.LevelDebug),
		WithJSONFormat(true),
	)

	logger.Info(context.Background(), "configured", ports.F("preset", "squircle"))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}
	if entry["level"] != "INFO" {
		t.Errorf("level = %v, want INFO", entry["level"])
	}
	if entry["msg"] != "configured" {
		t.Errorf("msg = %v, want 'configured'", entry["msg"])
	}
	if entry["preset"] != "squircle" {
		t.Errorf("preset = %v, want 'squircle'", entry["preset"])
	}
	if _, ok := entry["time"]; ok {
		t.Error("time should be omitted when timestamps are disabled")
	}
}

func TestConsoleLogger_With_DoesNotModifyOriginal(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(WithOutput(&buf), WithLevel(ports.LevelDebug))

	derived := logger.With(ports.F("target", "tailwind.config.ts"))

	ctx := context.Background()
	logger.Info(ctx, "original")
	derived.Info(ctx, "derived")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if strings.Contains(lines[0], "target=") {
		t.Error("original logger should not carry derived fields")
	}
	if !strings.Contains(lines[1], "target=tailwind.config.ts") {
		t.Error("derived logger should carry its fields")
	}
}

func TestConsoleLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(WithOutput(&buf), WithLevel(ports.LevelError))

	ctx := context.Background()
	logger.Info(ctx, "info message")
	if buf.Len() > 0 {
		t.Error("Info should be filtered at Error level")
	}

	logger.SetLevel(ports.LevelDebug)
	logger.Info(ctx, "info message")
	if !strings.Contains(buf.String(), "info message") {
		t.Error("Info should pass through at Debug level")
	}
	if logger.Level() != ports.LevelDebug {
		t.Errorf("Level() = %v, want DEBUG", logger.Level())
	}
}
