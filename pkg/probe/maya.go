/*
Copyright © 2026 mayapy-launcher authors
SPDX-License-Identifier: MIT
*/

package probe

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	"github.com/Muream/mayapy-launcher/pkg/install"
	"github.com/Muream/mayapy-launcher/pkg/pinfile"
)

// MayaPinProbe detects a Maya release directly from the closest upstream
// .maya-version pin file. The first line is parsed as a plain release year.
type MayaPinProbe struct {
	// StartDir is where the upward walk begins. Defaults to the current
	// directory.
	StartDir string

	// Filename overrides the recognized pin file name. Defaults to
	// .maya-version.
	Filename string
}

// Name implements ReleaseProbe.
func (MayaPinProbe) Name() string { return "maya-version-pin" }

// Detect implements ReleaseProbe.
func (p MayaPinProbe) Detect(_ context.Context) (*install.Release, error) {
	path, err := findUpstream(p.StartDir, cmp.Or(p.Filename, PinFileMaya))
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, nil
	}

	slog.Debug("found maya version pin", "path", path)

	// The first non-empty line is the pin, comment-looking or not.
	line, err := pinfile.NewReader(pinfile.WithSkipComments(false)).FirstLine(path)
	if err != nil {
		return nil, err
	}

	year, err := strconv.Atoi(line)
	if err != nil {
		return nil, fmt.Errorf("malformed pin in %s: %w", path, err)
	}

	release := install.Release(year)
	return &release, nil
}

// LatestInstalledProbe returns the newest installed Maya release. It is the
// terminal fallback of the resolution chain: when it runs and finds nothing
// installed, that is a hard failure, not a silent pass.
type LatestInstalledProbe struct {
	Store install.Store
}

// Name implements ReleaseProbe.
func (LatestInstalledProbe) Name() string { return "latest-installed" }

// Detect implements ReleaseProbe.
func (p LatestInstalledProbe) Detect(ctx context.Context) (*install.Release, error) {
	releases, err := p.Store.Releases(ctx)
	if err != nil {
		return nil, err
	}
	if len(releases) == 0 {
		return nil, fmt.Errorf("no maya installations found")
	}

	latest := slices.Max(releases)
	return &latest, nil
}
