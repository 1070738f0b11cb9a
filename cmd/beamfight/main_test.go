package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/beamfight/internal/platform/tui"
	"github.com/vovakirdan/beamfight/internal/platform/window"
)

func TestNewLoggerLevels(t *testing.T) {
	defer func(old string) { flagLogLevel = old }(flagLogLevel)

	flagLogLevel = "warn"
	var buf bytes.Buffer
	logger, err := newLogger(&buf)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "session=") {
		t.Errorf("expected warn message with session field, got %q", out)
	}

	flagLogLevel = "loud"
	if _, err := newLogger(&buf); err == nil {
		t.Error("expected error for unknown log level")
	}
}

func TestOpenLogOutput(t *testing.T) {
	w, closeFn, err := openLogOutput(tui.ID, "")
	if err != nil {
		t.Fatalf("openLogOutput: %v", err)
	}
	closeFn()
	if w != io.Discard {
		t.Errorf("terminal frontend without log file should discard logs")
	}

	w, closeFn, err = openLogOutput(window.ID, "")
	if err != nil {
		t.Fatalf("openLogOutput: %v", err)
	}
	closeFn()
	if w != os.Stderr {
		t.Errorf("window frontend should log to stderr")
	}

	path := filepath.Join(t.TempDir(), "beamfight.log")
	w, closeFn, err = openLogOutput(tui.ID, path)
	if err != nil {
		t.Fatalf("openLogOutput: %v", err)
	}
	if _, err := io.WriteString(w, "line\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	closeFn()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if string(data) != "line\n" {
		t.Errorf("log file = %q, want %q", data, "line\n")
	}
}

func TestLoadConfigTPSOverride(t *testing.T) {
	defer func(tps int, path string) { flagTPS, flagConfig = tps, path }(flagTPS, flagConfig)

	path := filepath.Join(t.TempDir(), "beamfight.yaml")
	if err := os.WriteFile(path, []byte("tick_rate: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	flagConfig = path

	flagTPS = 0
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.TickRate != 30 {
		t.Errorf("TickRate = %d, want 30 from file", cfg.TickRate)
	}

	flagTPS = 120
	cfg, err = loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.TickRate != 120 {
		t.Errorf("TickRate = %d, want 120 from --tps", cfg.TickRate)
	}
}
