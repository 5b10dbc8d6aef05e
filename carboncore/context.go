// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package carboncore provides the ambient Context every subsystem
// constructor takes: the replica's own identity, the view it currently
// resolves statements against, and a deadline for the operation in
// flight.
package carboncore

import (
	"context"
	"time"

	"github.com/luxfi/ids"
)

// Context threads per-operation ambient state through every subsystem
// without a package-level global: which replica is running, which view
// it currently believes is latest, and the stdlib context.Context
// carrying cancellation and a deadline.
type Context interface {
	// Go returns the underlying stdlib context.
	Go() context.Context

	// ReplicaID identifies this replica among its committee.
	ReplicaID() ids.ID

	// ViewID identifies the view this operation is resolved against.
	ViewID() ids.ID

	// Deadline returns the deadline for the operation in flight.
	Deadline() time.Time
}

// Static is the straightforward Context implementation: an immutable
// replica/view pair wrapping a stdlib context.
type Static struct {
	ctx       context.Context
	replicaID ids.ID
	viewID    ids.ID
	deadline  time.Time
}

// NewStatic builds a Static Context.
func NewStatic(ctx context.Context, replicaID, viewID ids.ID, deadline time.Time) Static {
	return Static{ctx: ctx, replicaID: replicaID, viewID: viewID, deadline: deadline}
}

func (s Static) Go() context.Context   { return s.ctx }
func (s Static) ReplicaID() ids.ID     { return s.replicaID }
func (s Static) ViewID() ids.ID        { return s.viewID }
func (s Static) Deadline() time.Time   { return s.deadline }

// WithView returns a copy of s resolved against a new view, the way a
// replica re-derives its ambient context after an Install advances it.
func (s Static) WithView(viewID ids.ID) Static {
	s.viewID = viewID
	return s
}
