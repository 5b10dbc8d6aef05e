// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package carboncore

import "errors"

var (
	// ErrNotRunning is returned when an operation is attempted on a
	// Replica that has not reached StateRunning yet, or has already
	// stopped.
	ErrNotRunning = errors.New("carboncore: replica not running")

	// ErrNotImplemented marks a method intentionally left unimplemented.
	ErrNotImplemented = errors.New("carboncore: not implemented")

	// ErrShuttingDown is returned when an operation is rejected because
	// the replica has begun an orderly shutdown (its Fuse has been
	// blown).
	ErrShuttingDown = errors.New("carboncore: replica shutting down")

	// ErrTimeout is returned when an operation exceeds its Context's
	// Deadline.
	ErrTimeout = errors.New("carboncore: operation timed out")
)
