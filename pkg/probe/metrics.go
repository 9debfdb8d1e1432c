/*
Copyright © 2026 mayapy-launcher authors
SPDX-License-Identifier: MIT
*/

package probe

import (
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	resolveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mayapy_resolve_duration_seconds",
			Help:    "Duration of a full version resolution in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	probeHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mayapy_probe_hits_total",
			Help: "Total number of resolutions won, by probe",
		},
		[]string{"probe"},
	)

	resolveOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mayapy_resolve_outcomes_total",
			Help: "Total number of resolutions by outcome (resolved, exhausted, error)",
		},
		[]string{"outcome"},
	)
)

// LogMetrics dumps the launcher's gathered metrics to the debug log. The
// launcher is a short-lived process with no exposition endpoint, so the debug
// log is where the instrumentation surfaces.
func LogMetrics() {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		slog.Debug("failed to gather metrics", "error", err)
		return
	}

	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "mayapy_") {
			continue
		}
		for _, m := range mf.GetMetric() {
			slog.Debug("metric", "name", mf.GetName(), "value", m.String())
		}
	}
}
