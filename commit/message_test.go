// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequestKindsAreDistinct(t *testing.T) {
	var msgs []Request = []Request{
		CommitsMessage{},
		CommitProofsMessage{},
		DependenciesMessage{},
	}

	seen := map[RequestKind]bool{}
	for _, m := range msgs {
		require.False(t, seen[m.Kind()])
		seen[m.Kind()] = true
	}
}

func TestResponseKindsAreDistinct(t *testing.T) {
	var msgs []Response = []Response{
		PongMessage{},
		MissingCommitProofsMessage{},
		WitnessShardMessage{},
		MissingDependenciesMessage{},
		CompletionShardMessage{},
	}

	seen := map[ResponseKind]bool{}
	for _, m := range msgs {
		require.False(t, seen[m.Kind()])
		seen[m.Kind()] = true
	}
}
