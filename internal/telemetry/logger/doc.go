// Package logger builds the structured loggers used by seekctl and seeksim.
//
// Handlers come from the standard library log/slog. Config selects the
// level (debug through error) and format (json for machines, text or
// console for people). Every handler shares one LevelVar, so SetLevel
// raises or lowers verbosity process-wide at runtime.
//
// Components written against *slog.Logger are wired through NewSlog;
// everything else takes the small Logger interface from New.
package logger
