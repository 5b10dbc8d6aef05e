// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package carboncore

import (
	"context"
	"testing"
	"time"

	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"
)

func TestStaticContextExposesFields(t *testing.T) {
	replicaID := ids.GenerateTestID()
	viewID := ids.GenerateTestID()
	deadline := time.Now().Add(time.Second)

	ctx := NewStatic(context.Background(), replicaID, viewID, deadline)

	require.Equal(t, replicaID, ctx.ReplicaID())
	require.Equal(t, viewID, ctx.ViewID())
	require.Equal(t, deadline, ctx.Deadline())
	require.NotNil(t, ctx.Go())
}

func TestStaticContextWithViewReplacesOnlyView(t *testing.T) {
	replicaID := ids.GenerateTestID()
	original := NewStatic(context.Background(), replicaID, ids.GenerateTestID(), time.Time{})
	nextView := ids.GenerateTestID()

	updated := original.WithView(nextView)

	require.Equal(t, nextView, updated.ViewID())
	require.Equal(t, replicaID, updated.ReplicaID())
}
