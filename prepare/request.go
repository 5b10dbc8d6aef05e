// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prepare

import (
	"errors"

	"github.com/luxfi/carbon/crypto"
	"github.com/luxfi/carbon/signup"
	"github.com/luxfi/carbon/view"
)

var (
	// ErrRequestAssignmentInvalid is returned when a Request's embedded
	// Assignment fails to verify.
	ErrRequestAssignmentInvalid = errors.New("prepare: request assignment invalid")
	// ErrRequestSignatureInvalid is returned when a Request's signature
	// does not verify against its own assignment's client keycard.
	ErrRequestSignatureInvalid = errors.New("prepare: request signature invalid")
)

// Request is a client's signed bid to prepare one of its own entries,
// bundling the signup Assignment that proves it controls the account.ID
// named by the enclosed Prepare.
type Request struct {
	Assignment signup.Assignment
	Prepare    Prepare
	Signature  crypto.Signature
}

// NewRequest builds a Request for height/commitment under assignment,
// signed by secret (the client holding assignment.Statement.Client).
func NewRequest(secret *crypto.SecretKey, assignment signup.Assignment, height uint64, commitment crypto.Hash) Request {
	prep := Prepare{ID: assignment.Statement.ID, Height: height, Commitment: commitment}
	return Request{
		Assignment: assignment,
		Prepare:    prep,
		Signature:  crypto.Sign(secret, prep),
	}
}

// Validate checks the embedded assignment against the view registry at
// quorum, then the request's own signature against the assignment's
// client keycard.
func (r Request) Validate(store *view.Store) error {
	v, ok := store.Lookup(r.Assignment.Statement.View)
	if !ok {
		return ErrRequestAssignmentInvalid
	}
	if err := r.Assignment.Verify(v.PublicKeys(), v.Quorum()); err != nil {
		return ErrRequestAssignmentInvalid
	}
	if !crypto.VerifyStatement(r.Signature, r.Assignment.Statement.Client.PublicKey(), r.Prepare) {
		return ErrRequestSignatureInvalid
	}
	return nil
}
