// Package confloader merges configuration for seekctl and seeksim.
//
// A Loader layers sources onto a koanf tree, later sources winning:
// struct defaults set by the caller, then a YAML file, then environment
// variables carrying the SEEKCTL_ prefix. Command-line flags sit above
// all of these and are applied by the caller after Unmarshal.
package confloader
