// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lattice

import "errors"

var (
	// ErrForeignSource is returned when a message arrives from an
	// identity outside the runner's view — a foreign-source lattice
	// message is silently dropped by the caller rather than propagated
	// as a session-ending error.
	ErrForeignSource = errors.New("lattice: message from a source foreign to the view")

	// ErrInvalidMessage is returned when a message fails its
	// signature/shape check.
	ErrInvalidMessage = errors.New("lattice: invalid message")

	// ErrAlreadyDisclosed is returned when Propose is called on a
	// runner that has already disclosed a value — a runner discloses at
	// most once.
	ErrAlreadyDisclosed = errors.New("lattice: runner already disclosed")

	// ErrNotDecided is returned when Decision is called before the
	// runner has reached the Decided state.
	ErrNotDecided = errors.New("lattice: runner has not decided")
)
