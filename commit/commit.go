// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commit

import (
	"errors"

	"github.com/luxfi/carbon/prepare"
	"github.com/luxfi/carbon/view"
)

// ErrCommitMissingDependency is returned by Validate when p.Payload
// requires a Dependency but none is attached.
var ErrCommitMissingDependency = errors.New("commit: missing required dependency")

// Commit bundles one Payload with the CommitProof that places it in some
// already-witnessed prepare batch — the unit a CommitRequest ships.
type Commit struct {
	Payload Payload
	Proof   CommitProof
}

// prepare reconstructs the Prepare statement the commit pipeline's
// CommitProof was taken against: the same (id, height, commitment)
// triple the client originally signed in the prepare pipeline, derived
// here from the Commit's own Payload rather than carried again on the
// wire.
func (c Commit) prepare() prepare.Prepare {
	return prepare.Prepare{
		ID:         c.Payload.Entry.ID,
		Height:     c.Payload.Entry.Height,
		Commitment: c.Payload.Commitment(),
	}
}

// Validate checks c's structural well-formedness and its CommitProof
// against the view registry.
func (c Commit) Validate(store *view.Store) error {
	if c.Payload.RequiresDependency() && c.Payload.Dependency == nil {
		return ErrCommitMissingDependency
	}
	return c.Proof.Validate(store, c.prepare())
}
