package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Sampling.Count != 10000 {
		t.Errorf("expected count 10000, got %d", cfg.Sampling.Count)
	}
	if cfg.Sampling.Seed != 0 {
		t.Errorf("expected seed 0, got %d", cfg.Sampling.Seed)
	}
	if cfg.Sampling.AttemptFactor != 20 {
		t.Errorf("expected attempt factor 20, got %d", cfg.Sampling.AttemptFactor)
	}
	if cfg.Filter.Enabled {
		t.Error("expected filter disabled by default")
	}
	if cfg.Output.Format != "ply" {
		t.Errorf("expected format 'ply', got %s", cfg.Output.Format)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for explicitly named missing file")
	}
	_ = cfg
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	// No config file in a scratch working directory
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	defer os.Chdir(wd)
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Sampling.Count != 10000 {
		t.Errorf("expected default count, got %d", cfg.Sampling.Count)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := Default()
	cfg.Sampling.Count = 777
	cfg.Sampling.Seed = 42
	cfg.Filter.Enabled = true
	cfg.Filter.MinDot = 0.5
	cfg.Output.Format = "xyz"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Sampling.Count != 777 {
		t.Errorf("expected count 777, got %d", loaded.Sampling.Count)
	}
	if loaded.Sampling.Seed != 42 {
		t.Errorf("expected seed 42, got %d", loaded.Sampling.Seed)
	}
	if !loaded.Filter.Enabled {
		t.Error("expected filter enabled")
	}
	if loaded.Filter.MinDot != 0.5 {
		t.Errorf("expected min_dot 0.5, got %v", loaded.Filter.MinDot)
	}
	if loaded.Output.Format != "xyz" {
		t.Errorf("expected format 'xyz', got %s", loaded.Output.Format)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("sampling:\n  count: 5\n"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Sampling.Count != 5 {
		t.Errorf("expected count 5, got %d", cfg.Sampling.Count)
	}
	// Untouched sections keep their defaults
	if cfg.Output.Format != "ply" {
		t.Errorf("expected default format 'ply', got %s", cfg.Output.Format)
	}
}
