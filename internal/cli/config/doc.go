// Package config provides CLI configuration for seekctl.
//
// This package defines CLI-specific configuration:
//
//   - spec.go: CLIConfig struct (~/.seekctl/config.yaml)
//   - loader.go: Configuration loading via confloader
//
// Precedence matches the rest of the tool: command-line flags override
// SEEKCTL_ environment variables, which override the config file, which
// overrides built-in defaults.
package config
