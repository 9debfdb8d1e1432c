/*
Copyright © 2026 mayapy-launcher authors
SPDX-License-Identifier: MIT
*/

package probe

import (
	"context"

	"github.com/Muream/mayapy-launcher/pkg/install"
	"github.com/Muream/mayapy-launcher/pkg/version"
)

// Pin file names recognized by the upstream-walking probes.
const (
	PinFilePython = ".python-version"
	PinFileMaya   = ".maya-version"
)

// EnvVirtualEnv is the environment marker set by an activated virtualenv.
const EnvVirtualEnv = "VIRTUAL_ENV"

// VersionProbe attempts to detect a Python version from one information
// source. A (nil, nil) return means the source had no answer; an error means
// the source was present but unusable. Both cases make the chain move on to
// the next probe.
type VersionProbe interface {
	// Name identifies the probe in logs and resolution outcomes.
	Name() string

	// Detect returns the detected Python version, or nil when this source
	// has no answer.
	Detect(ctx context.Context) (*version.Version, error)
}

// ReleaseProbe attempts to detect a Maya release directly, bypassing the
// Python compatibility mapping. Same nil/error contract as VersionProbe.
type ReleaseProbe interface {
	Name() string
	Detect(ctx context.Context) (*install.Release, error)
}
