package config

import (
	"path/filepath"
	"testing"
)

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	saved := &Config{
		Genre:           "Techno",
		Parallelism:     4,
		DisableBPM:      true,
		CoverMaxSize:    1000,
		WarningBehavior: "immediate",
	}
	if err := SaveConfig(path, saved); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := &Config{}
	if err := LoadConfig(path, loaded); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if *loaded != *saved {
		t.Errorf("round trip mismatch: saved %+v, loaded %+v", saved, loaded)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"), &Config{}); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	if cfg.Genre != DefaultGenre {
		t.Errorf("expected default genre %q, got %q", DefaultGenre, cfg.Genre)
	}
	if cfg.CoverMaxSize != DefaultCoverMaxSize {
		t.Errorf("expected default cover size %d, got %d", DefaultCoverMaxSize, cfg.CoverMaxSize)
	}
	if cfg.WarningBehavior != "summary" {
		t.Errorf("expected summary warnings, got %q", cfg.WarningBehavior)
	}

	// Explicit values survive
	cfg = &Config{Genre: "Jazz", WarningBehavior: "silent"}
	cfg.ApplyDefaults()
	if cfg.Genre != "Jazz" || cfg.WarningBehavior != "silent" {
		t.Errorf("defaults overwrote explicit values: %+v", cfg)
	}
}
