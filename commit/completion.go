// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commit

import "github.com/luxfi/carbon/view"

// Completion bundles a Payload with the CompletionProof vouching that
// some earlier batch already applied it. A Dependency's referenced
// operation is always supplied this way on the wire, never as a bare
// Payload, since nothing short of a quorum certificate entitles a
// replica to trust another account's reported history.
type Completion struct {
	Proof   CompletionProof
	Payload Payload
}

// Validate checks c's CompletionProof against the view registry.
func (c Completion) Validate(store *view.Store) error {
	return c.Proof.Validate(store, c.Payload)
}
