package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	DefaultGenre        = "Electronic"
	DefaultCoverMaxSize = 1500
)

// Configuration structure
type Config struct {
	Genre           string `json:"Genre"`
	Parallelism     int    `json:"Parallelism"`     // 0 means all cores
	DisableBPM      bool   `json:"DisableBPM"`
	CoverMaxSize    int    `json:"CoverMaxSize"`    // Covers above this dimension get downscaled; 0 disables
	WarningBehavior string `json:"WarningBehavior"` // "immediate", "summary", or "silent"
	DryRun          bool   `json:"-"`               // Not saved to config file
	Verbose         bool   `json:"-"`               // Not saved to config file
}

// DefaultConfig returns a config populated with defaults.
func DefaultConfig() *Config {
	return &Config{
		Genre:           DefaultGenre,
		Parallelism:     0,
		CoverMaxSize:    DefaultCoverMaxSize,
		WarningBehavior: "summary",
	}
}

// ApplyDefaults fills empty fields with default values.
func (cfg *Config) ApplyDefaults() {
	defaults := DefaultConfig()
	if cfg.Genre == "" {
		cfg.Genre = defaults.Genre
	}
	if cfg.CoverMaxSize == 0 {
		cfg.CoverMaxSize = defaults.CoverMaxSize
	}
	if cfg.WarningBehavior == "" {
		cfg.WarningBehavior = defaults.WarningBehavior
	}
}

// CreateDirIfNotExists creates a directory if it does not exist
func CreateDirIfNotExists(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}

// LoadConfig loads configuration from a JSON file
func LoadConfig(filePath string, config *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return nil
}

// SaveConfig saves configuration to a JSON file
func SaveConfig(filePath string, config *Config) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	dir := filepath.Dir(filePath)
	if err := CreateDirIfNotExists(dir); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
