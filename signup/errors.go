// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package signup

import "errors"

var (
	// ErrUnknownView is returned when a Request or Claim names a view
	// the Store has never registered.
	ErrUnknownView = errors.New("signup: unknown view")

	// ErrForeignAllocator is returned when a Request names an allocator
	// outside the view it targets.
	ErrForeignAllocator = errors.New("signup: allocator is not a member of the view")

	// ErrWorkInvalid is returned when a Request's proof-of-work fails
	// to meet the configured difficulty.
	ErrWorkInvalid = errors.New("signup: proof-of-work invalid")

	// ErrRogueInvalid is returned when a Rogue proof does not verify
	// against the key it claims to bind.
	ErrRogueInvalid = errors.New("signup: rogue-key proof invalid")

	// ErrClaimInvalid is returned when a Claim's self-signature does
	// not verify against its own embedded client key.
	ErrClaimInvalid = errors.New("signup: claim signature invalid")
)
