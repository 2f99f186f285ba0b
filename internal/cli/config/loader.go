// Package config defines the CLI configuration structure.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agenticseek/seekctl/internal/infra/confloader"
)

// DefaultConfigPath returns the default CLI config file path.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".seekctl", "config.yaml")
}

// Load loads CLI configuration from file and environment. A missing file at
// the default path is not an error; an explicitly named file must exist.
// Environment variables (SEEKCTL_ prefix) override file values.
func Load(path string) (*CLIConfig, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}

	loader := confloader.NewLoader()

	if _, err := os.Stat(path); err == nil {
		if err := loader.LoadFile(path); err != nil {
			return nil, err
		}
	} else if explicit {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	if err := loader.LoadEnv(); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := loader.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
