// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package set

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetAddContainsRemove(t *testing.T) {
	s := NewSet[int](0)
	s.Add(1, 2, 3)

	require.Equal(t, 3, s.Len())
	require.True(t, s.Contains(2))

	s.Remove(2)
	require.False(t, s.Contains(2))
	require.Equal(t, 2, s.Len())
}

func TestSetRejectsDuplicateAdds(t *testing.T) {
	s := Of(1, 1, 2)
	require.Equal(t, 2, s.Len())
}

func TestSetUnionAndDifference(t *testing.T) {
	a := Of(1, 2, 3)
	b := Of(3, 4)

	a.Union(b)
	require.Equal(t, 4, a.Len())

	a.Difference(b)
	require.Equal(t, 2, a.Len())
	require.True(t, a.Contains(1))
	require.True(t, a.Contains(2))
}

func TestSetOverlaps(t *testing.T) {
	a := Of(1, 2)
	b := Of(2, 3)
	c := Of(4, 5)

	require.True(t, a.Overlaps(b))
	require.False(t, a.Overlaps(c))
}

func TestSetJSONRoundTrip(t *testing.T) {
	s := Of("x", "y", "z")

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var out Set[string]
	require.NoError(t, json.Unmarshal(data, &out))
	require.True(t, out.Equals(s))
}
