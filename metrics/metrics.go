// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Carbon holds the named per-subsystem counters every replica exposes:
// lattice disclosures, prepare batches witnessed, commit completions,
// and equivocations detected.
type Carbon struct {
	Registry prometheus.Registerer

	LatticeDisclosures prometheus.Counter
	BatchesWitnessed   prometheus.Counter
	CommitsApplied     prometheus.Counter
	CompletionsFormed  prometheus.Counter
	EquivocationsFound prometheus.Counter
}

// NewCarbon registers and returns Carbon's standard counter set against
// reg. An error means a counter of the same name was already registered.
func NewCarbon(reg prometheus.Registerer) (*Carbon, error) {
	c := &Carbon{
		Registry:           reg,
		LatticeDisclosures: prometheus.NewCounter(prometheus.CounterOpts{Name: "lattice_disclosures_total", Help: "Disclosures accepted by the lattice-agreement runner."}),
		BatchesWitnessed:   prometheus.NewCounter(prometheus.CounterOpts{Name: "prepare_batches_witnessed_total", Help: "Prepare batches that reached a witness certificate."}),
		CommitsApplied:     prometheus.NewCounter(prometheus.CounterOpts{Name: "commits_applied_total", Help: "Commit operations applied to the database."}),
		CompletionsFormed:  prometheus.NewCounter(prometheus.CounterOpts{Name: "completions_formed_total", Help: "BatchCompletion certificates formed."}),
		EquivocationsFound: prometheus.NewCounter(prometheus.CounterOpts{Name: "equivocations_found_total", Help: "Equivocations detected and excluded."}),
	}

	for _, collector := range []prometheus.Collector{
		c.LatticeDisclosures,
		c.BatchesWitnessed,
		c.CommitsApplied,
		c.CompletionsFormed,
		c.EquivocationsFound,
	} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Metrics is a bare single-registerer wrapper for subsystems that only
// need raw prometheus.Collector registration rather than Carbon's named
// counter set.
type Metrics struct {
	Registry prometheus.Registerer
}

// NewMetrics creates new metrics instance
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Registry: reg,
	}
}

// Register registers a prometheus collector
func (m *Metrics) Register(collector prometheus.Collector) error {
	return m.Registry.Register(collector)
}
