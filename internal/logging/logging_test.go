package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestFanoutToTerminalAndFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "dsaviz.log")
	log, closeFn, err := New(Options{Level: "info", Writer: &buf, File: path})
	if err != nil {
		t.Fatal(err)
	}
	log.Debug("hidden")
	log.Info("generated", "algorithm", "Bubble", "steps", 12)
	if err := closeFn(); err != nil {
		t.Fatal(err)
	}

	if strings.Contains(buf.String(), "hidden") {
		t.Error("debug record should be filtered at info")
	}
	if !strings.Contains(buf.String(), "algorithm=Bubble") {
		t.Errorf("terminal output missing record: %q", buf.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var rec map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &rec); err != nil {
		t.Fatalf("file is not one JSON record: %v (%q)", err, data)
	}
	if rec["msg"] != "generated" || rec["steps"] != float64(12) {
		t.Errorf("unexpected record %v", rec)
	}
}

func TestNoConsoleKeepsOnlyTheFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "tui.log")
	log, closeFn, err := New(Options{Level: "debug", Writer: &buf, File: path, NoConsole: true})
	if err != nil {
		t.Fatal(err)
	}
	log.Warn("input rejected", "algorithm", "Linear")
	if err := closeFn(); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("terminal should stay silent, got %q", buf.String())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"msg":"input rejected"`) {
		t.Errorf("file missing record: %q", data)
	}

	quiet, _, err := New(Options{Level: "debug", NoConsole: true})
	if err != nil {
		t.Fatal(err)
	}
	quiet.Error("dropped")
}
