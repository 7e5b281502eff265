// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package metrics counts divdemo runs and division outcomes.
//
// Counters live on a private registry rather than the global default one so
// that each Recorder starts at zero. WriteText renders the registry in the
// Prometheus text exposition format, which is what --metrics prints.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Recorder holds the counters for one process.
type Recorder struct {
	registry  *prometheus.Registry
	runs      prometheus.Counter
	divisions *prometheus.CounterVec
}

// New returns a Recorder with its counters registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "divdemo_runs_total",
			Help: "Demo runs that reached a terminal state.",
		}),
		divisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "divdemo_divisions_total",
			Help: "Division attempts by outcome.",
		}, []string{"outcome"}),
	}
	r.registry.MustRegister(r.runs, r.divisions)
	return r
}

// ObserveDivision counts one division attempt with the given outcome label.
func (r *Recorder) ObserveDivision(outcome string) {
	r.divisions.WithLabelValues(outcome).Inc()
}

// ObserveRun counts one completed run.
func (r *Recorder) ObserveRun() {
	r.runs.Inc()
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteText writes every gathered metric family to w in text format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
