/*
Copyright © 2026 mayapy-launcher authors
SPDX-License-Identifier: MIT
*/

package probe

import (
	"context"
	stderrors "errors"
	"log/slog"
	"time"

	"github.com/Muream/mayapy-launcher/pkg/compat"
	"github.com/Muream/mayapy-launcher/pkg/errors"
	"github.com/Muream/mayapy-launcher/pkg/install"
)

// Outcome describes a successful resolution: which release won, which probe
// produced the answer, and the detected Python version when the answer came
// through the compatibility mapping.
type Outcome struct {
	Release install.Release `json:"release" yaml:"release"`
	Probe   string          `json:"probe" yaml:"probe"`
	Python  string          `json:"python,omitempty" yaml:"python,omitempty"`
}

// Runner orchestrates the two probe chains. Chain A detects Python versions
// and maps each hit through the compatibility resolver; chain B detects Maya
// releases directly. The first probe whose answer yields an installed
// release short-circuits everything after it.
type Runner struct {
	resolver      *compat.Resolver
	versionProbes []VersionProbe
	releaseProbes []ReleaseProbe
	startDir      string
}

// RunnerOption is a functional option for configuring the Runner.
type RunnerOption func(*Runner)

// WithStartDir sets the directory the pin-file probes walk up from.
// Defaults to the current directory.
func WithStartDir(dir string) RunnerOption {
	return func(r *Runner) {
		r.startDir = dir
	}
}

// WithResolver replaces the compatibility resolver.
func WithResolver(resolver *compat.Resolver) RunnerOption {
	return func(r *Runner) {
		r.resolver = resolver
	}
}

// WithVersionProbes replaces chain A.
func WithVersionProbes(probes ...VersionProbe) RunnerOption {
	return func(r *Runner) {
		r.versionProbes = probes
	}
}

// WithReleaseProbes replaces chain B.
func WithReleaseProbes(probes ...ReleaseProbe) RunnerOption {
	return func(r *Runner) {
		r.releaseProbes = probes
	}
}

// NewRunner creates a Runner with the standard probe chains over the given
// installation store:
//
//	chain A: shebang, virtualenv, .python-version pin
//	chain B: .maya-version pin, latest installed
func NewRunner(store install.Store, opts ...RunnerOption) *Runner {
	r := &Runner{
		startDir: ".",
	}

	// Apply options
	for _, opt := range opts {
		opt(r)
	}

	if r.resolver == nil {
		r.resolver = compat.NewResolver(store)
	}
	if r.versionProbes == nil {
		r.versionProbes = []VersionProbe{
			ShebangProbe{},
			VirtualenvProbe{},
			PythonPinProbe{StartDir: r.startDir},
		}
	}
	if r.releaseProbes == nil {
		r.releaseProbes = []ReleaseProbe{
			MayaPinProbe{StartDir: r.startDir},
			LatestInstalledProbe{Store: store},
		}
	}

	return r
}

// Resolve runs both probe chains in order and returns the first installed
// Maya release they produce.
//
// A probe error or a compat.ErrNoMatch from the resolver means "this source
// had no usable answer" and the chain continues. Any other resolver error
// (a broken store, an invalid compatibility table) aborts resolution. When
// both chains are exhausted, a RESOLUTION_EXHAUSTED structured error is
// returned; the last probe failure, if any, is attached as the cause.
func (r *Runner) Resolve(ctx context.Context) (*Outcome, error) {
	start := time.Now()
	defer func() {
		resolveDuration.Observe(time.Since(start).Seconds())
	}()

	var lastProbeErr error

	for _, p := range r.versionProbes {
		python, err := p.Detect(ctx)
		if err != nil {
			slog.Debug("version probe failed", "probe", p.Name(), "error", err)
			lastProbeErr = err
			continue
		}
		if python == nil {
			continue
		}

		slog.Debug("version probe hit", "probe", p.Name(), "python", python.String())

		release, err := r.resolver.Resolve(ctx, *python)
		if stderrors.Is(err, compat.ErrNoMatch) {
			slog.Debug("detected python version did not resolve",
				"probe", p.Name(),
				"python", python.String(),
				"reason", err,
			)
			continue
		}
		if err != nil {
			resolveOutcomes.WithLabelValues("error").Inc()
			return nil, err
		}

		probeHits.WithLabelValues(p.Name()).Inc()
		resolveOutcomes.WithLabelValues("resolved").Inc()
		slog.Debug("resolved maya release", "probe", p.Name(), "release", release)

		return &Outcome{
			Release: release,
			Probe:   p.Name(),
			Python:  python.String(),
		}, nil
	}

	for _, p := range r.releaseProbes {
		release, err := p.Detect(ctx)
		if err != nil {
			slog.Debug("release probe failed", "probe", p.Name(), "error", err)
			lastProbeErr = err
			continue
		}
		if release == nil {
			continue
		}

		probeHits.WithLabelValues(p.Name()).Inc()
		resolveOutcomes.WithLabelValues("resolved").Inc()
		slog.Debug("resolved maya release", "probe", p.Name(), "release", *release)

		return &Outcome{
			Release: *release,
			Probe:   p.Name(),
		}, nil
	}

	resolveOutcomes.WithLabelValues("exhausted").Inc()
	return nil, errors.Wrap(
		errors.ErrCodeResolutionExhausted,
		"no valid mayapy version was found",
		lastProbeErr,
	)
}
