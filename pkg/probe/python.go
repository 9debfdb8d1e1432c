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
	"os"
	"path/filepath"

	"github.com/Muream/mayapy-launcher/pkg/fspath"
	"github.com/Muream/mayapy-launcher/pkg/pinfile"
	"github.com/Muream/mayapy-launcher/pkg/version"
)

// ShebangProbe detects the Python version from the target script's shebang
// line.
//
// TODO: parse the shebang of the first forwarded script argument once the
// CLI threads the script path down to the probe chain. Until then this probe
// has no answer, which the chain treats as a valid no-op.
type ShebangProbe struct{}

// Name implements VersionProbe.
func (ShebangProbe) Name() string { return "shebang" }

// Detect implements VersionProbe.
func (ShebangProbe) Detect(_ context.Context) (*version.Version, error) {
	return nil, nil
}

// VirtualenvProbe detects the Python version of the currently activated
// virtualenv. Activation is signaled by the VIRTUAL_ENV environment
// variable; the interpreter version is read from the venv's pyvenv.cfg,
// which every venv and virtualenv layout writes.
type VirtualenvProbe struct {
	// LookupEnv overrides os.LookupEnv, for tests.
	LookupEnv func(string) (string, bool)
}

// Name implements VersionProbe.
func (VirtualenvProbe) Name() string { return "virtualenv" }

// Detect implements VersionProbe.
func (p VirtualenvProbe) Detect(_ context.Context) (*version.Version, error) {
	lookup := p.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	venv, ok := lookup(EnvVirtualEnv)
	if !ok || venv == "" {
		return nil, nil
	}

	slog.Debug("found activated virtualenv", "path", venv)

	cfg := filepath.Join(venv, "pyvenv.cfg")
	values, err := pinfile.NewReader().GetMap(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", cfg, err)
	}

	// venv writes "version"; virtualenv and uv write "version_info".
	raw, ok := values["version"]
	if !ok {
		raw, ok = values["version_info"]
	}
	if !ok {
		return nil, fmt.Errorf("%s has no version entry", cfg)
	}

	v, err := version.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse virtualenv python version: %w", err)
	}
	return &v, nil
}

// PythonPinProbe detects the Python version from the closest upstream
// .python-version pin file, walking from StartDir through every ancestor
// directory. The first pin file found decides the answer; a malformed pin
// in a nearer directory is not shadowed by a valid one farther up.
type PythonPinProbe struct {
	// StartDir is where the upward walk begins. Defaults to the current
	// directory.
	StartDir string

	// Filename overrides the recognized pin file name. Defaults to
	// .python-version.
	Filename string
}

// Name implements VersionProbe.
func (PythonPinProbe) Name() string { return "python-version-pin" }

// Detect implements VersionProbe.
func (p PythonPinProbe) Detect(_ context.Context) (*version.Version, error) {
	path, err := findUpstream(p.StartDir, cmp.Or(p.Filename, PinFilePython))
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, nil
	}

	slog.Debug("found python version pin", "path", path)

	// The first non-empty line is the pin, comment-looking or not. A
	// commented-out pin is a malformed pin, never an invisible one.
	line, err := pinfile.NewReader(pinfile.WithSkipComments(false)).FirstLine(path)
	if err != nil {
		return nil, err
	}

	v, err := version.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("malformed pin in %s: %w", path, err)
	}
	return &v, nil
}

// findUpstream walks from startDir up to the filesystem root and returns the
// path of the first regular file with the given name, or "" if none exists.
func findUpstream(startDir, name string) (string, error) {
	if startDir == "" {
		startDir = "."
	}

	dirs, err := fspath.Ancestors(startDir)
	if err != nil {
		return "", err
	}

	for dir := range dirs {
		candidate := filepath.Join(dir, name)
		info, err := os.Stat(candidate)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		return candidate, nil
	}
	return "", nil
}
