/*
Copyright © 2026 mayapy-launcher authors
SPDX-License-Identifier: MIT
*/

// Package cli implements the mayapy command-line interface.
//
// The root command is the launcher shim itself: it forwards every argument
// verbatim to the resolved mayapy interpreter, consuming only an optional
// leading integer release override. Subcommands (resolve, list) expose the
// resolution machinery for inspection without launching anything.
//
// Subcommand names win over forwarding: a first argument literally named
// resolve, list, help, or completion dispatches to that subcommand. A script
// with such a name has to be passed as a path (./resolve) to be forwarded.
//
// Configuration is layered through Viper: the --config flag, then
// $HOME/.mayapy.yaml or ./.mayapy.yaml, then MAYAPY_* environment variables.
package cli
