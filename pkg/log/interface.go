// Package log provides a structured logging interface for imblearn experiment runs.
//
// This package defines a minimal, slog-compatible logging interface that allows for
// flexible implementation switching while providing experiment-specific structured
// logging. The interface integrates with Go's standard log/slog package and is
// backed by zerolog by default.
//
// Key features:
//   - slog-compatible interface for future-proofing
//   - Experiment-specific structured attributes (strategies, folds, metrics)
//   - Context-aware logging with field chaining
//   - Test-friendly with a buffer-backed TestLogger
//
// Example usage:
//
//	logger := log.GetLogger().With(
//	    log.StrategyKey, "Cost FN",
//	    log.ComponentKey, "harness",
//	)
//	logger.Info("Training started",
//	    log.OperationKey, log.OperationTrain,
//	    log.SamplesKey, 1176,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// The interface is implementation-agnostic, enabling easy switching between
// logging backends while maintaining a consistent API. It supports method
// chaining through With, allowing creation of contextual loggers with
// pre-populated fields.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	//
	// Example:
	//
	//	logger.Debug("Scoring candidate",
	//	    "complexity", 0.01,
	//	    log.FoldKey, 3,
	//	)
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	//
	// Example:
	//
	//	logger.Info("Strategy evaluated",
	//	    log.StrategyKey, "SMOTE",
	//	    log.KappaKey, 0.41,
	//	)
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	// Used among other things for UndefinedMetricWarning conditions that
	// resolve to sentinel values instead of aborting a strategy row.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	// If an error value is provided as a field, stack trace information
	// from cockroachdb/errors is included when available.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	//
	// Example:
	//
	//	strategyLogger := logger.With(log.StrategyKey, "Weighted")
	//	strategyLogger.Info("Refit on full training set")
	With(fields ...any) Logger

	// Enabled reports whether the logger emits log records at the given level.
	// Use it to avoid constructing expensive fields for suppressed records.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4 // Detailed diagnostic information
	LevelInfo  Level = 0  // General operational information
	LevelWarn  Level = 4  // Warning conditions
	LevelError Level = 8  // Error conditions
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LoggerProvider defines an interface for creating and configuring loggers.
// It allows for dependency injection and testing with different implementations.
type LoggerProvider interface {
	// GetLogger returns the default logger instance.
	GetLogger() Logger

	// GetLoggerWithName returns a logger with a specific component identifier.
	GetLoggerWithName(name string) Logger

	// SetLevel sets the minimum log level for all loggers created by this provider.
	SetLevel(level Level)
}
