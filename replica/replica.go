// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package replica

import (
	"context"
	"sync"

	"github.com/luxfi/carbon/carboncore"
	"github.com/luxfi/carbon/health"
)

// State is a Replica's lifecycle state, grounded on
// engine/pulsar/engine.go's State enum (StateInitializing/
// StateRunning/StateStopped).
type State int

const (
	StateInitializing State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Task is one of a Replica's long-running servers (view/frame updater,
// lattice runner, prepare server, commit server). A Task runs until ctx
// is cancelled, at which point it must return promptly — the
// cooperative scheduling model every task follows is a select-style
// wait on its proposal channel and its inbound message stream.
type Task struct {
	Name string
	Run  func(ctx context.Context)

	// Health reports this task's Checkable, folded into Replica.Health's
	// aggregate report. May be nil if the task has nothing to report.
	Health health.Checkable
}

// Replica wires a committee member's long-running servers behind one
// State machine, one cancellation Fuse, and one aggregate health report:
// the same ctx/state/health fields and Initialize/Start/Stop/Health
// method shape a single consensus engine would use, generalized to run
// several concurrent pipelines side by side.
type Replica struct {
	ctx carboncore.Context

	mu    sync.Mutex
	state State
	fuse  *Fuse
	tasks []Task
}

// New builds a Replica in StateInitializing, ready to have its tasks
// registered via WithTask before Start.
func New(ctx carboncore.Context) *Replica {
	return &Replica{ctx: ctx, state: StateInitializing}
}

// WithTask registers one long-running server. Must be called before
// Start; it is not safe to add tasks to a running Replica since each
// task takes sole ownership of its subsystem's state from the moment
// it is spawned.
func (r *Replica) WithTask(t Task) *Replica {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks = append(r.tasks, t)
	return r
}

// State reports the Replica's current lifecycle state.
func (r *Replica) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Start spawns every registered task under a fresh Fuse and transitions
// to StateRunning. Start is a no-op if the Replica is already running.
func (r *Replica) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == StateRunning {
		return nil
	}
	if r.state == StateStopped {
		return carboncore.ErrShuttingDown
	}

	r.fuse = NewFuse(ctx)
	for _, t := range r.tasks {
		task := t
		r.fuse.Spawn(task.Run)
	}
	r.state = StateRunning
	return nil
}

// Stop blows the Fuse, deterministically cancelling every task spawned
// by Start and waiting for them to return, then transitions to
// StateStopped. Stop is idempotent.
func (r *Replica) Stop(context.Context) error {
	r.mu.Lock()
	fuse := r.fuse
	alreadyStopped := r.state == StateStopped
	r.state = StateStopped
	r.mu.Unlock()

	if alreadyStopped || fuse == nil {
		return nil
	}
	fuse.Blow()
	return nil
}

// Health aggregates every registered task's Checkable into one report,
// the generalization of engine/pulsar/engine.go's single-engine Health
// method to Carbon's multiple concurrent pipelines.
func (r *Replica) Health(ctx context.Context) (interface{}, error) {
	r.mu.Lock()
	subsystems := make([]health.Subsystem, 0, len(r.tasks))
	for _, t := range r.tasks {
		if t.Health == nil {
			continue
		}
		subsystems = append(subsystems, health.Subsystem{Name: t.Name, Check: t.Health})
	}
	r.mu.Unlock()

	return health.NewAggregator(subsystems...).HealthCheck(ctx)
}
