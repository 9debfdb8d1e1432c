/*
Copyright © 2026 mayapy-launcher authors
SPDX-License-Identifier: MIT
*/

package probe

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Muream/mayapy-launcher/pkg/install"
)

func TestMetricsGatherable(t *testing.T) {
	t.Setenv(EnvVirtualEnv, "")

	store := &fakeStore{releases: []install.Release{2023}}
	r := NewRunner(store, WithStartDir(t.TempDir()))

	_, err := r.Resolve(t.Context())
	require.NoError(t, err)

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	assert.Contains(t, names, "mayapy_resolve_duration_seconds")
	assert.Contains(t, names, "mayapy_resolve_outcomes_total")
	assert.Contains(t, names, "mayapy_probe_hits_total")

	// The debug dump must work against a populated default registry.
	LogMetrics()
}
