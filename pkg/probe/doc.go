/*
Copyright © 2026 mayapy-launcher authors
SPDX-License-Identifier: MIT
*/

// Package probe implements the heuristic detection chain that decides which
// Maya release to launch.
//
// # Overview
//
// Two ordered chains run in sequence, and the first usable answer wins:
//
// Chain A detects Python versions and feeds each hit through the
// compatibility resolver in pkg/compat:
//
//  1. shebang - the target script's shebang line (currently a no-op)
//  2. virtualenv - the activated virtualenv's interpreter version
//  3. python-version-pin - the closest upstream .python-version file
//
// Chain B detects Maya releases directly, and only runs when chain A
// produced nothing resolvable:
//
//  1. maya-version-pin - the closest upstream .maya-version file
//  2. latest-installed - the newest installed release
//
// # Failure semantics
//
// An individual probe failing (a malformed pin file, an unreadable
// pyvenv.cfg) is "no answer from this source": the chain logs it at debug
// level and moves on. Only exhausting every probe in both chains is fatal,
// surfacing as a RESOLUTION_EXHAUSTED structured error.
package probe
