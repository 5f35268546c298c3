package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("LoadConfig() on missing file = %+v, want defaults %+v", cfg, DefaultConfig())
	}

	// The default config file should have been written for next time.
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected default config file to be created: %v", err)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"log_level": "debug", "max_length": 25, "seed": 7}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.MaxLength != 25 || cfg.Seed != 7 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// Unset fields keep their defaults.
	if cfg.DataDir != DefaultConfig().DataDir {
		t.Errorf("DataDir = %q, want default %q", cfg.DataDir, DefaultConfig().DataDir)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("expected an error for malformed config, got nil")
	}
}

func TestParseLogLevel(t *testing.T) {
	testCases := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tc := range testCases {
		if got := parseLogLevel(tc.input); got != tc.expected {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tc.input, got, tc.expected)
		}
	}
}
