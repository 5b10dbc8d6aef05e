// Copyright (C) 2020-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeCheckable struct {
	details interface{}
	err     error
}

func (f fakeCheckable) Health(context.Context) (interface{}, error) {
	return f.details, f.err
}

func TestAggregatorHealthyWhenAllSubsystemsHealthy(t *testing.T) {
	agg := NewAggregator(
		Subsystem{Name: "view", Check: fakeCheckable{details: map[string]interface{}{"height": 3}}},
		Subsystem{Name: "commit", Check: fakeCheckable{details: map[string]interface{}{"applied": 9}}},
	)

	result, err := agg.HealthCheck(context.Background())
	require.NoError(t, err)

	report, ok := result.(Report)
	require.True(t, ok)
	require.True(t, report.Healthy)
	require.Len(t, report.Checks, 2)
}

func TestAggregatorUnhealthyWhenAnySubsystemFails(t *testing.T) {
	agg := NewAggregator(
		Subsystem{Name: "view", Check: fakeCheckable{details: nil}},
		Subsystem{Name: "lattice", Check: fakeCheckable{err: errors.New("stalled")}},
	)

	result, err := agg.HealthCheck(context.Background())
	require.NoError(t, err)

	report := result.(Report)
	require.False(t, report.Healthy)

	var latticeCheck Check
	for _, c := range report.Checks {
		if c.Name == "lattice" {
			latticeCheck = c
		}
	}
	require.False(t, latticeCheck.Healthy)
	require.Equal(t, "stalled", latticeCheck.Error)
}
