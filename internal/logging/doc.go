// Package logging assembles structured slog loggers and formatting helpers used
// across alignwarm.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so every line emitted during an
// invocation carries the same run identifier. Log lines go to stderr and the
// configured log file only; stdout belongs to the model loader.
package logging
