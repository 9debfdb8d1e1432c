/*
Copyright © 2026 mayapy-launcher authors
SPDX-License-Identifier: MIT
*/

// Package fspath provides the upward directory walk used by pin-file
// discovery. The walk starts at a given directory, visits every ancestor in
// order, and always terminates at the filesystem root regardless of how the
// platform represents it.
package fspath
