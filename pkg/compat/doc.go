/*
Copyright © 2026 mayapy-launcher authors
SPDX-License-Identifier: MIT
*/

// Package compat maps detected Python versions to compatible Maya releases.
//
// # Overview
//
// Every Maya release bundles one exact Python interpreter version. The Table
// type records those pairs in insertion order, and the Resolver picks the
// installed release whose bundled Python matches a detected version.
//
// # Matching semantics
//
// Matching is deliberately strict. The resolver first finds the table key
// with minimal componentwise distance from the input (ties resolve to the
// earlier entry), but that closest key is only a compatibility gate: it must
// share the input's major and minor components. The release returned always
// comes from looking up the input's own exact "major.minor.patch" string, so
// a detected 3.9.2 never silently resolves to the 3.9.7 entry even though
// they share a minor line. Finally the mapped release must actually be
// installed.
//
// Callers in pkg/probe treat ErrNoMatch as "try the next detection source".
package compat
