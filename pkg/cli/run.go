/*
Copyright © 2026 mayapy-launcher authors
SPDX-License-Identifier: MIT
*/

package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Muream/mayapy-launcher/pkg/install"
	"github.com/Muream/mayapy-launcher/pkg/launcher"
)

// runLaunch implements the launcher shim: consume an optional explicit
// release override, resolve the release through the probe chains otherwise,
// and exec mayapy with everything that remains.
func runLaunch(cmd *cobra.Command, args []string) error {
	store := newStore()

	release, forwarded, overridden := parseOverride(args)
	if !overridden {
		outcome, err := newRunner(store).Resolve(cmd.Context())
		if err != nil {
			return err
		}
		release = outcome.Release
	}

	return launcher.New(store).Launch(cmd.Context(), release, forwarded)
}

// parseOverride consumes a leading integer argument as an explicit Maya
// release override. The conventional spelling looks like a flag (-2023), so
// the absolute value is taken. An argument that does not parse as an integer
// is not an error: it is simply forwarded with the rest, and resolution
// proceeds normally.
func parseOverride(args []string) (install.Release, []string, bool) {
	if len(args) == 0 {
		return 0, args, false
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, args, false
	}
	if n < 0 {
		n = -n
	}
	return install.Release(n), args[1:], true
}
