/*
Copyright © 2026 mayapy-launcher authors
SPDX-License-Identifier: MIT
*/

// Package errors provides structured error types shared across the launcher.
//
// Every fatal condition in the resolution and launch pipeline is classified
// with an ErrorCode so the CLI can map failures to user-facing messages and
// exit codes without string matching:
//
//	if errors.IsCode(err, errors.ErrCodeResolutionExhausted) {
//	    // no usable mayapy version was found
//	}
//
// StructuredError implements Unwrap, so the standard library's errors.Is and
// errors.As continue to work on wrapped causes.
package errors
