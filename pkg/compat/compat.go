/*
Copyright © 2026 mayapy-launcher authors
SPDX-License-Identifier: MIT
*/

package compat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Muream/mayapy-launcher/pkg/install"
	"github.com/Muream/mayapy-launcher/pkg/version"
)

// ErrNoMatch indicates the nearest-match resolution failed for a given
// Python version: either no table key shares its major.minor line, the exact
// version is not in the table, or the mapped release is not installed.
// Probe chains treat this as "try the next probe", not as a fatal error.
var ErrNoMatch = errors.New("no installed maya release matches the python version")

// Entry associates one exact Python version string with the Maya release
// that ships it.
type Entry struct {
	Python string          `mapstructure:"python" yaml:"python"`
	Maya   install.Release `mapstructure:"maya" yaml:"maya"`
}

// Table is an insertion-ordered mapping from exact Python version strings to
// Maya releases. The order is significant: when two keys are equidistant
// from an input version, the earlier entry wins, which keeps resolution
// deterministic. Tables are immutable at run time.
type Table []Entry

// DefaultTable lists the Python interpreter each Maya release bundles.
var DefaultTable = Table{
	{Python: "2.7.11", Maya: 2019},
	{Python: "2.7.18", Maya: 2020},
	{Python: "3.7.9", Maya: 2022},
	{Python: "3.9.7", Maya: 2023},
}

// Lookup returns the Maya release mapped to the exact Python version string.
func (t Table) Lookup(python string) (install.Release, bool) {
	for _, e := range t {
		if e.Python == python {
			return e.Maya, true
		}
	}
	return 0, false
}

// Closest returns the table key with minimal distance from the given
// version under the lexicographic distance order. On tied distances the
// earliest-inserted key wins. The boolean is false for an empty table.
// A key that fails to parse is an error: the table is trusted configuration,
// not probe input.
func (t Table) Closest(python version.Version) (version.Version, bool, error) {
	var closest *version.Version
	var closestDistance version.Version

	for _, entry := range t {
		key, err := version.Parse(entry.Python)
		if err != nil {
			return version.Version{}, false, fmt.Errorf("invalid compatibility table key %q: %w", entry.Python, err)
		}

		distance := version.Distance(python, key)
		if closest == nil || distance.Less(closestDistance) {
			closest = &key
			closestDistance = distance
		}
	}

	if closest == nil {
		return version.Version{}, false, nil
	}
	return *closest, true, nil
}

// Resolver maps a detected Python version to a compatible, installed Maya
// release using the distance-and-gate algorithm.
type Resolver struct {
	table Table
	store install.Store
}

// Option is a functional option for configuring the Resolver.
type Option func(*Resolver)

// WithTable replaces the default compatibility table.
func WithTable(table Table) Option {
	return func(r *Resolver) {
		r.table = table
	}
}

// NewResolver creates a Resolver over the given installation store. The
// default compatibility table is used unless WithTable overrides it.
func NewResolver(store install.Store, opts ...Option) *Resolver {
	r := &Resolver{
		table: DefaultTable,
		store: store,
	}

	// Apply options
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the installed Maya release whose bundled Python is
// compatible with the given version, or ErrNoMatch.
//
// The algorithm:
//
//  1. Find the table key closest to the input under the lexicographic
//     distance order; on ties the earliest-inserted key wins.
//  2. Gate: the closest key must share the input's major and minor
//     components. Proximity alone is never sufficient.
//  3. Look up the input's exact canonical string in the table. The closest
//     key only selects a candidate family; a different patch release is
//     never substituted.
//  4. Confirm the mapped release is actually installed.
//
// Table keys that fail to parse propagate as errors rather than being
// skipped, since the table is trusted configuration.
func (r *Resolver) Resolve(ctx context.Context, python version.Version) (install.Release, error) {
	closest, ok, err := r.table.Closest(python)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("%w: empty compatibility table", ErrNoMatch)
	}

	if closest.Major != python.Major || closest.Minor != python.Minor {
		slog.Debug("closest known python version is on a different major.minor line",
			"python", python.String(),
			"closest", closest.String(),
		)
		return 0, fmt.Errorf("%w: no known python %d.%d", ErrNoMatch, python.Major, python.Minor)
	}

	// The exact stringified input, not the closest key, is what gets looked
	// up. The closest key only confirmed major.minor compatibility.
	release, ok := r.table.Lookup(python.String())
	if !ok {
		return 0, fmt.Errorf("%w: python %s is not an exact bundled version", ErrNoMatch, python)
	}

	installed, err := install.Installed(ctx, r.store, release)
	if err != nil {
		return 0, fmt.Errorf("failed to enumerate installed releases: %w", err)
	}
	if !installed {
		return 0, fmt.Errorf("%w: maya %s is not installed", ErrNoMatch, release)
	}

	return release, nil
}
