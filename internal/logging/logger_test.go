package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestConsoleHandlerIncludesComponentAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger = NewComponentLogger(logger, "spatialmap")
	logger.Info("room merged", String(FieldRoom, "kitchen"), Int("annotations", 3))

	line := buf.String()
	if !strings.Contains(line, " INFO spatialmap: room merged") {
		t.Fatalf("unexpected console line: %q", line)
	}
	if !strings.Contains(line, "room=kitchen") || !strings.Contains(line, "annotations=3") {
		t.Fatalf("expected attrs in console line, got %q", line)
	}
}

func TestConsoleHandlerQuotesValuesWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Warn("load failed", Error(errors.New("read cache: boom")))

	if !strings.Contains(buf.String(), `error="read cache: boom"`) {
		t.Fatalf("expected quoted error value, got %q", buf.String())
	}
}

func TestConsoleHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("info line should have been suppressed: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("warn line missing: %q", buf.String())
	}
}

func TestJSONFormatSelected(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("hello", String("k", "v"))

	line := buf.String()
	if !strings.HasPrefix(line, "{") || !strings.Contains(line, `"k":"v"`) {
		t.Fatalf("expected JSON output, got %q", line)
	}
}

func TestUnsupportedFormatRejected(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := NewNop()
	logger.Error("should not panic", Error(nil))
	if logger.Enabled(context.Background(), 0) {
		t.Fatal("nop logger should report disabled")
	}
}
