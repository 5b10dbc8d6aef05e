// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package quorum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSize(t *testing.T) {
	tests := []struct {
		name                string
		n                   int
		wantQuorum          int
		wantPlurality       int
	}{
		{name: "n=1", n: 1, wantQuorum: 2, wantPlurality: 1},
		{name: "n=4 (tolerates 1 fault)", n: 4, wantQuorum: 4, wantPlurality: 2},
		{name: "n=7 (tolerates 2 faults)", n: 7, wantQuorum: 6, wantPlurality: 3},
		{name: "n=10", n: 10, wantQuorum: 8, wantPlurality: 4},
		{name: "n=100", n: 100, wantQuorum: 68, wantPlurality: 34},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, p := Size(tt.n)
			require.Equal(t, tt.wantQuorum, q)
			require.Equal(t, tt.wantPlurality, p)
			require.Equal(t, q, Quorum(tt.n))
			require.Equal(t, p, Plurality(tt.n))
		})
	}
}

func TestSizeBounds(t *testing.T) {
	// Quorum must always exceed two thirds of the committee, and a
	// plurality must always guarantee at least one correct signer among
	// up to n/3 Byzantine members.
	for n := 1; n <= 200; n++ {
		q, p := Size(n)
		require.Greater(t, q, 2*n/3, "quorum must exceed 2n/3 for n=%d", n)
		require.LessOrEqual(t, q, n+1)
		require.Greater(t, p, n/3-1, "plurality must exceed one faulty-bound for n=%d", n)
		require.Less(t, p, q, "quorum must always be stricter than plurality for n=%d", n)
	}
}
