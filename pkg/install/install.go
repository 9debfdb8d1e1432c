/*
Copyright © 2026 mayapy-launcher authors
SPDX-License-Identifier: MIT
*/

package install

import (
	"context"
	"strconv"
)

// Release identifies one release of Autodesk Maya by year, e.g. 2023.
type Release int

// String returns the release year as a string.
func (r Release) String() string {
	return strconv.Itoa(int(r))
}

// Store answers "which Maya releases are installed" and "where does a
// release live". Implementations must be idempotent within a single
// resolution call; the resolution logic never caches answers across calls.
type Store interface {
	// Releases enumerates the installed Maya releases, ascending.
	Releases(ctx context.Context) ([]Release, error)

	// InstallPath returns the installation directory for a release.
	// Returns an INSTALL_NOT_FOUND structured error if the release is not
	// installed.
	InstallPath(ctx context.Context, release Release) (string, error)

	// Mayapy returns the path of the mayapy interpreter executable for a
	// release, derived from its installation directory. Returns an
	// INSTALL_NOT_FOUND structured error if it cannot be derived.
	Mayapy(ctx context.Context, release Release) (string, error)
}

// Installed reports whether the given release appears in the store's
// release enumeration.
func Installed(ctx context.Context, store Store, release Release) (bool, error) {
	releases, err := store.Releases(ctx)
	if err != nil {
		return false, err
	}
	for _, r := range releases {
		if r == release {
			return true, nil
		}
	}
	return false, nil
}
