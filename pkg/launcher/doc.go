/*
Copyright © 2026 mayapy-launcher authors
SPDX-License-Identifier: MIT
*/

// Package launcher starts the resolved mayapy interpreter as a child
// process, forwarding arguments and stdio verbatim and propagating the
// child's exit code back to the shell.
package launcher
