package config

import (
	"os"
	"testing"
)

// unsetenv clears a variable for the test and restores it afterwards.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadDefaultsAreEmpty(t *testing.T) {
	unsetenv(t, "POCKETCUBE_DB")
	unsetenv(t, "POCKETCUBE_STATE")
	unsetenv(t, "POCKETCUBE_LOG_LEVEL")
	unsetenv(t, "POCKETCUBE_SCRAMBLE_LENGTH")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.DBPath != "" || cfg.StatePath != "" || cfg.LogLevel != "" {
		t.Errorf("expected empty defaults, got %+v", cfg)
	}
	if cfg.ScrambleLength != 0 {
		t.Errorf("expected zero scramble length, got %d", cfg.ScrambleLength)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("POCKETCUBE_DB", "/tmp/cube.db")
	t.Setenv("POCKETCUBE_STATE", "/tmp/state.json")
	t.Setenv("POCKETCUBE_LOG_LEVEL", "debug")
	t.Setenv("POCKETCUBE_SCRAMBLE_LENGTH", "15")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.DBPath != "/tmp/cube.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.StatePath != "/tmp/state.json" {
		t.Errorf("StatePath = %q", cfg.StatePath)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.ScrambleLength != 15 {
		t.Errorf("ScrambleLength = %d", cfg.ScrambleLength)
	}
}

func TestLoadRejectsMalformedInt(t *testing.T) {
	t.Setenv("POCKETCUBE_SCRAMBLE_LENGTH", "many")

	if _, err := Load(); err == nil {
		t.Error("expected error for malformed POCKETCUBE_SCRAMBLE_LENGTH")
	}
}
