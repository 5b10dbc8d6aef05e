// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prepare

import (
	"errors"

	"github.com/luxfi/carbon/account"
	"github.com/luxfi/carbon/crypto"
	"github.com/luxfi/carbon/quorum"
	"github.com/luxfi/carbon/view"
)

// ErrExtractViewUnknown, ErrExtractWitnessInvalid, and
// ErrExtractInclusionInvalid are returned by Extract.Validate.
var (
	ErrExtractViewUnknown      = errors.New("prepare: extract view unknown")
	ErrExtractWitnessInvalid   = errors.New("prepare: extract witness invalid")
	ErrExtractInclusionInvalid = errors.New("prepare: extract inclusion proof invalid")
)

// Extract is a self-contained proof that one Prepare was witnessed at
// plurality as part of the batch rooted at Root under View — the
// exported form a State's Handle is converted into whenever its proof
// must leave the replica that originally processed the batch (folded
// into an Equivocation).
type Extract struct {
	View      crypto.Hash
	Root      crypto.Hash
	Witness   quorum.Certificate
	Inclusion Proof
	Prepare   Prepare
}

// ID returns the account.ID this extract attests to.
func (e Extract) ID() account.ID { return e.Prepare.ID }

// Commitment returns the commitment this extract attests to.
func (e Extract) Commitment() crypto.Hash { return e.Prepare.Commitment }

// Validate checks an Extract against the view registry: the named view
// must be known, the witness certificate must verify at plurality over
// WitnessStatement{Root}, and the inclusion proof must place Prepare
// under Root.
func (e Extract) Validate(store *view.Store) error {
	v, ok := store.Lookup(e.View)
	if !ok {
		return ErrExtractViewUnknown
	}

	statement := WitnessStatement{Root: e.Root}
	if err := v.VerifyPlurality(e.Witness, statement); err != nil {
		return ErrExtractWitnessInvalid
	}

	if !e.Inclusion.Verify(e.Root, e.Prepare) {
		return ErrExtractInclusionInvalid
	}

	return nil
}
