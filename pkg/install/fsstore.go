/*
Copyright © 2026 mayapy-launcher authors
SPDX-License-Identifier: MIT
*/

package install

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"slices"
	"strconv"

	"log/slog"

	"github.com/Muream/mayapy-launcher/pkg/errors"
)

// EnvInstallRoot overrides the conventional per-platform install roots.
// Useful for tests and nonstandard Maya deployments.
const EnvInstallRoot = "MAYAPY_INSTALL_ROOT"

// installDirPattern matches conventional Maya install directory names such
// as "Maya2023" (windows/macOS) and "maya2023" (linux).
var installDirPattern = regexp.MustCompile(`^[Mm]aya(\d{4})$`)

// FSStore discovers Maya installations by scanning conventional Autodesk
// install roots on the local filesystem. Scanning the install roots yields
// the same set of releases the Windows registry would, and works on every
// platform Maya ships for.
type FSStore struct {
	roots []string
}

// Option is a functional option for configuring the FSStore.
type Option func(*FSStore)

// WithRoots replaces the conventional install roots.
func WithRoots(roots ...string) Option {
	return func(s *FSStore) {
		s.roots = roots
	}
}

// NewFSStore creates a store scanning the conventional Autodesk install
// roots for the current platform. MAYAPY_INSTALL_ROOT, when set, takes
// precedence over the conventions.
func NewFSStore(opts ...Option) *FSStore {
	s := &FSStore{
		roots: defaultRoots(),
	}

	if override := os.Getenv(EnvInstallRoot); override != "" {
		s.roots = []string{override}
	}

	// Apply options
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func defaultRoots() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{`C:\Program Files\Autodesk`}
	case "darwin":
		return []string{"/Applications/Autodesk"}
	default:
		return []string{"/usr/autodesk"}
	}
}

// Releases enumerates installed Maya releases by scanning every root for
// directories named like an install (Maya2023, maya2023). Missing roots are
// skipped, not errors; a machine without Maya simply has zero releases.
func (s *FSStore) Releases(ctx context.Context) ([]Release, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var releases []Release
	for _, root := range s.roots {
		entries, err := os.ReadDir(root)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to scan install root %s: %w", root, err)
		}

		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			match := installDirPattern.FindStringSubmatch(entry.Name())
			if match == nil {
				continue
			}
			year, err := strconv.Atoi(match[1])
			if err != nil {
				continue
			}
			release := Release(year)
			if !slices.Contains(releases, release) {
				releases = append(releases, release)
			}
		}
	}

	slices.Sort(releases)

	slog.Debug("enumerated installed maya releases",
		"roots", s.roots,
		"releases", releases,
	)

	return releases, nil
}

// InstallPath returns the installation directory for a release, trying both
// directory-name casings in every root.
func (s *FSStore) InstallPath(ctx context.Context, release Release) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	for _, root := range s.roots {
		for _, name := range []string{"Maya" + release.String(), "maya" + release.String()} {
			candidate := filepath.Join(root, name)
			info, err := os.Stat(candidate)
			if err == nil && info.IsDir() {
				return candidate, nil
			}
		}
	}

	return "", errors.NewWithContext(
		errors.ErrCodeInstallNotFound,
		fmt.Sprintf("maya %s is not installed", release),
		map[string]any{"roots": s.roots},
	)
}

// Mayapy derives the mayapy executable path from the release's install
// directory: <install>/bin/mayapy, with an .exe suffix on windows.
func (s *FSStore) Mayapy(ctx context.Context, release Release) (string, error) {
	installDir, err := s.InstallPath(ctx, release)
	if err != nil {
		return "", err
	}

	name := "mayapy"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}

	path := filepath.Join(installDir, "bin", name)
	if _, err := os.Stat(path); err != nil {
		return "", errors.Wrap(
			errors.ErrCodeInstallNotFound,
			fmt.Sprintf("mayapy executable missing for maya %s", release),
			err,
		)
	}

	return path, nil
}
