// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package replica provides the per-replica orchestration: the "fuse"
// cancellation abstraction that deterministically tears down every
// child task a long-running server spawned, and the
// Replica type that wires the four long-running tasks (view/frame
// updater, lattice runner, prepare server, commit server) behind one
// State machine and one aggregate health report.
package replica

import (
	"context"
	"sync"
)

// Fuse is a scoped cancellation handle whose drop cancels every child
// task spawned under it. Go has no destructor to hook a drop to, so Fuse
// renders it as an explicit Blow that cancels its context and blocks
// until every task Spawned under it has returned — "Dropping a
// LatticeAgreement, a Broker, or a Processor cancels all its in-flight
// children deterministically" becomes Blow() being synchronous.
type Fuse struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewFuse derives a Fuse from parent. Blowing the returned Fuse never
// cancels parent itself, only the tasks spawned under this Fuse.
func NewFuse(parent context.Context) *Fuse {
	ctx, cancel := context.WithCancel(parent)
	return &Fuse{ctx: ctx, cancel: cancel}
}

// Context returns the cancellation context every task spawned under this
// Fuse should select on.
func (f *Fuse) Context() context.Context {
	return f.ctx
}

// Spawn runs task in its own goroutine, passing it this Fuse's context.
// Blow will not return until task has returned.
func (f *Fuse) Spawn(task func(ctx context.Context)) {
	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		task(f.ctx)
	}()
}

// Blow cancels the fuse's context and blocks until every spawned task
// has observed the cancellation and returned. Blow is idempotent.
func (f *Fuse) Blow() {
	f.cancel()
	f.wg.Wait()
}
