/*
Copyright © 2026 mayapy-launcher authors
SPDX-License-Identifier: MIT
*/

// Package logging wraps the standard library slog package with
// launcher-specific defaults: structured JSON output to stderr, module and
// version context on every record, a per-run invocation id, and flexible
// level configuration.
//
// Levels come from three places, highest priority first:
//
//  1. MAYAPY_LAUNCHER_VERBOSE=true forces debug (legacy toggle)
//  2. the --log-level flag / config value passed by the CLI
//  3. the LOG_LEVEL environment variable
//
// Typical setup in main:
//
//	logging.SetDefaultStructuredLogger("mayapy", version)
//	slog.Debug("resolved", "release", 2023, "probe", "python-version-pin")
//
// Output goes to stderr so forwarded mayapy stdout remains clean.
package logging
