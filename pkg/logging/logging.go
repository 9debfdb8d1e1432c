/*
Copyright © 2026 mayapy-launcher authors
SPDX-License-Identifier: MIT
*/

package logging

import (
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

const envLogLevel = "LOG_LEVEL"

// EnvVerbose is the legacy verbosity toggle honored by the launcher. When
// set to a truthy value ("true", "1", "t", case-insensitive) the log level is
// forced to debug regardless of LOG_LEVEL or --log-level.
const EnvVerbose = "MAYAPY_LAUNCHER_VERBOSE"

// ParseLevel converts a textual log level to a slog.Level. Unknown or empty
// values default to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// VerboseRequested reports whether the MAYAPY_LAUNCHER_VERBOSE environment
// variable requests debug logging.
func VerboseRequested() bool {
	switch strings.ToLower(os.Getenv(EnvVerbose)) {
	case "true", "1", "t":
		return true
	default:
		return false
	}
}

// NewStructuredLogger creates a JSON logger writing to stderr with the given
// module name, version, and level. Debug level enables source location
// tracking. Every logger carries an invocation_id so log lines from a single
// launcher run can be correlated.
func NewStructuredLogger(module, version, level string) *slog.Logger {
	lvl := ParseLevel(level)

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	})

	return slog.New(handler).With(
		"module", module,
		"version", version,
		"invocation_id", uuid.NewString(),
	)
}

// SetDefaultStructuredLogger installs a default logger configured from the
// LOG_LEVEL environment variable (or info if unset). The verbose toggle
// overrides both.
func SetDefaultStructuredLogger(module, version string) {
	SetDefaultStructuredLoggerWithLevel(module, version, os.Getenv(envLogLevel))
}

// SetDefaultStructuredLoggerWithLevel installs a default logger with an
// explicit level. The MAYAPY_LAUNCHER_VERBOSE toggle still wins.
func SetDefaultStructuredLoggerWithLevel(module, version, level string) {
	if VerboseRequested() {
		level = "debug"
	}
	slog.SetDefault(NewStructuredLogger(module, version, level))
}
