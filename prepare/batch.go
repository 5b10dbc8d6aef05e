// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prepare

import (
	"errors"

	"github.com/luxfi/carbon/account"
	"github.com/luxfi/carbon/crypto"
	"github.com/luxfi/carbon/quorum"
	"github.com/luxfi/carbon/signup"
	"github.com/luxfi/carbon/utils/wrappers"
)

// ErrMalformedBatch is returned when a SignedBatch fails one of Verify's
// structural checks: prepares out of order, an id with no matching
// assignment, or a signature that does not verify.
var ErrMalformedBatch = errors.New("prepare: malformed batch")

// SignedBatch is a broker's in-flight batch before it has been witnessed:
// every prepare is either individually signed by its account, or folded
// into one reduction multisignature over the batch root.
type SignedBatch struct {
	Prepares             []Prepare
	ReductionSignature   crypto.MultiSignature
	IndividualSignatures []*crypto.Signature
}

// Root computes the Merkle root of the batch's prepares.
func (b SignedBatch) Root() (crypto.Hash, error) {
	return BatchRoot(b.Prepares)
}

// Sorted reports whether the batch's prepares are strictly increasing by
// account.ID, the ordering the reduction signature's verification and the
// state machine's per-account bookkeeping both assume.
func (b SignedBatch) Sorted() bool {
	for i := 1; i < len(b.Prepares); i++ {
		if b.Prepares[i-1].ID.Compare(b.Prepares[i].ID) >= 0 {
			return false
		}
	}
	return true
}

// Verify checks every individually signed prepare against its account's
// assigned keycard, and the reduction signature against the keycards of
// every prepare left unsigned. assignments must contain every prepared
// account.ID; an unknown id is one of the structural problems collected
// below rather than an immediate return, so a broker sees every defect
// in a malformed batch in a single round trip instead of one at a time.
func (b SignedBatch) Verify(assignments map[account.ID]signup.Assignment) error {
	var errs wrappers.Errs

	if !b.Sorted() {
		errs.Add(ErrMalformedBatch)
	}

	root, err := b.Root()
	if err != nil {
		return err
	}

	var reductionSigners []crypto.PublicKey
	for i, prep := range b.Prepares {
		assignment, ok := assignments[prep.ID]
		if !ok {
			errs.Add(ErrMalformedBatch)
			continue
		}
		pk := assignment.Statement.Client.PublicKey()

		if i < len(b.IndividualSignatures) && b.IndividualSignatures[i] != nil {
			if !crypto.VerifyStatement(*b.IndividualSignatures[i], pk, prep) {
				errs.Add(ErrMalformedBatch)
			}
			continue
		}
		reductionSigners = append(reductionSigners, pk)
	}

	statement := ReductionStatement{Root: root}
	if len(reductionSigners) > 0 && !crypto.VerifyMultiStatement(b.ReductionSignature, reductionSigners, statement) {
		errs.Add(ErrMalformedBatch)
	}

	return errs.Err()
}

// IntoWitnessed closes out a SignedBatch once its root has collected a
// plurality Witness certificate.
func (b SignedBatch) IntoWitnessed(view crypto.Hash, witness quorum.Certificate) WitnessedBatch {
	return WitnessedBatch{View: view, Prepares: b.Prepares, Witness: witness}
}

// WitnessedBatch is a batch whose root has been certified by a plurality
// of the view's members — the form a replica's prepare Database actually
// stores and applies.
type WitnessedBatch struct {
	View     crypto.Hash
	Prepares []Prepare
	Witness  quorum.Certificate
}

// Root computes (and, on a witnessed batch, re-derives) the batch's
// Merkle root.
func (b WitnessedBatch) Root() crypto.Hash {
	root, err := BatchRoot(b.Prepares)
	if err != nil {
		return crypto.Hash{}
	}
	return root
}

