// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prepare

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrepareRequestKindsAreDistinct(t *testing.T) {
	var msgs []Request = []Request{
		PreparesMessage{},
		WitnessMessage{},
		SignaturesMessage{},
		AssignmentsMessage{},
	}

	seen := map[RequestKind]bool{}
	for _, m := range msgs {
		require.False(t, seen[m.Kind()])
		seen[m.Kind()] = true
	}
}

func TestPrepareResponseKindsAreDistinct(t *testing.T) {
	var msgs []Response = []Response{
		UnknownIdsMessage{},
		WitnessShardMessage{},
		CommitShardMessage{},
	}

	seen := map[ResponseKind]bool{}
	for _, m := range msgs {
		require.False(t, seen[m.Kind()])
		seen[m.Kind()] = true
	}
}
