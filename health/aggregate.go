// Copyright (C) 2020-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package health

import (
	"context"
	"time"
)

// Subsystem names one of a replica's long-running tasks (view/frame
// updater, lattice runner, prepare server, commit server) alongside the
// Checkable it reports through.
type Subsystem struct {
	Name  string
	Check Checkable
}

// Aggregator composes several subsystems' Checkable.Health reports into
// one Report, the way Replica.Health rolls up its long-running tasks
// into a single healthy/unhealthy status with a per-subsystem Check list behind
// it.
type Aggregator struct {
	subsystems []Subsystem
}

// NewAggregator builds an Aggregator over the given subsystems.
func NewAggregator(subsystems ...Subsystem) *Aggregator {
	return &Aggregator{subsystems: subsystems}
}

// HealthCheck implements Checker: it runs every registered subsystem's
// Health and folds the results into one Report. The aggregate is healthy
// only if every subsystem is.
func (a *Aggregator) HealthCheck(ctx context.Context) (interface{}, error) {
	start := nowFunc()
	report := Report{Healthy: true, Details: map[string]interface{}{}}

	for _, s := range a.subsystems {
		checkStart := nowFunc()
		details, err := s.Check.Health(ctx)
		check := Check{
			Name:     s.Name,
			Healthy:  err == nil,
			Details:  asDetails(details),
			Duration: nowFunc().Sub(checkStart),
		}
		if err != nil {
			check.Error = err.Error()
			report.Healthy = false
		}
		report.Checks = append(report.Checks, check)
		report.Details[s.Name] = details
	}

	report.Duration = nowFunc().Sub(start)
	return report, nil
}

func asDetails(v interface{}) map[string]interface{} {
	if m, ok := v.(map[string]interface{}); ok {
		return m
	}
	return nil
}

// nowFunc is a seam for deterministic tests; production code leaves it at
// time.Now.
var nowFunc = time.Now
