package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestConsoleHandlerFormatsRecord(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, levelVar))

	logger.Info("generation complete", "kind", "hook", "count", 10)

	line := buf.String()
	if !strings.Contains(line, "INFO") {
		t.Fatalf("expected level label in %q", line)
	}
	if !strings.Contains(line, "generation complete") {
		t.Fatalf("expected message in %q", line)
	}
	if !strings.Contains(line, "kind=hook") || !strings.Contains(line, "count=10") {
		t.Fatalf("expected attrs in %q", line)
	}
}

func TestConsoleHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelWarn)
	logger := slog.New(newConsoleHandler(&buf, levelVar))

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record should be suppressed, got %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("warn record missing from %q", out)
	}
}

func TestJSONHandlerRenamesKeys(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	logger := slog.New(newJSONHandler(&buf, levelVar))

	logger.Info("hello", "kind", "script")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if record["msg"] != "hello" {
		t.Fatalf("expected msg key, got %#v", record)
	}
	if record["level"] != "info" {
		t.Fatalf("expected lowercase level, got %#v", record["level"])
	}
	if _, ok := record["ts"]; !ok {
		t.Fatalf("expected ts key, got %#v", record)
	}
}

func TestParseLevelFallsBackToInfo(t *testing.T) {
	if ParseLevel("verbose") != slog.LevelInfo {
		t.Fatal("unknown level should map to info")
	}
	if ParseLevel("debug") != slog.LevelDebug {
		t.Fatal("debug should map to debug")
	}
}
