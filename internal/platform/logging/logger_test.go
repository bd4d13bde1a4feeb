package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
)

func TestNewJSONTo_WritesKeyValueFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONTo(&buf, LevelInfo).Named("extract")

	logger.Info("scraping squad page", "team", "Liverpool", "error", errors.New("boom"))
	logger.Debug("dropped below level")
	_ = logger.Sync()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one log line, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := sonic.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["msg"] != "scraping squad page" {
		t.Fatalf("unexpected msg: %v", entry["msg"])
	}
	if entry["logger"] != "extract" {
		t.Fatalf("unexpected logger name: %v", entry["logger"])
	}
	if entry["team"] != "Liverpool" {
		t.Fatalf("unexpected team field: %v", entry["team"])
	}
	if entry["error"] != "boom" {
		t.Fatalf("unexpected error field: %v", entry["error"])
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.InfoContext(context.Background(), "no panic")
	if logger.With("k", "v") == nil {
		t.Fatalf("expected nop logger from nil receiver")
	}
}

func TestWithFieldsSurviveNamed(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONTo(&buf, LevelInfo).With("run_id", "20261019T060000Z-0badc0de").Named("load")

	logger.Info("player data loaded", "rows", 3)
	_ = logger.Sync()

	var entry map[string]any
	if err := sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["run_id"] != "20261019T060000Z-0badc0de" {
		t.Fatalf("expected run_id to carry over, got %v", entry["run_id"])
	}
	if entry["logger"] != "load" {
		t.Fatalf("unexpected logger name: %v", entry["logger"])
	}
}
