// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package signup

import (
	"github.com/luxfi/carbon/account"
	"github.com/luxfi/carbon/crypto"
	"github.com/luxfi/carbon/quorum"
	"github.com/luxfi/ids"
)

// AssignmentStatement is what each replica's certification shard signs
// over: the binding of a claimed account.ID to the client keycard that
// won the conflict check. Client carries the full KeyCard, not just the
// identity, so a downstream holder of an Assignment (the prepare
// pipeline's Request.Validate) can verify the client's own signatures
// without a separate keycard lookup.
type AssignmentStatement struct {
	View   crypto.Hash
	ID     account.ID
	Client crypto.KeyCard
}

func (AssignmentStatement) Header() crypto.Header { return crypto.HeaderIdAssignment }

func (s AssignmentStatement) Encode() []byte {
	out := append([]byte(nil), s.View[:]...)
	out = append(out, s.ID[:]...)
	id := s.Client.Identity()
	out = append(out, id[:]...)
	return append(out, s.Client.PublicKey().Bytes()...)
}

// Certify produces one replica's assignment shard for claim. The caller
// is responsible for the conflict check against competing claims before
// calling this — Certify itself only attests the (view, id, client)
// binding, it does not re-validate claim.
func Certify(secret *crypto.SecretKey, claim Claim) (AssignmentStatement, crypto.Signature) {
	statement := AssignmentStatement{View: claim.View(), ID: claim.ID(), Client: claim.ClientCard()}
	return statement, crypto.Multisign(secret, statement)
}

// Assignment is the finalized threshold-signed proof that Client was
// assigned ID, aggregated from a quorum of replicas' Certify shards via
// a quorum.Aggregator the same way every other certificate in Carbon is
// built.
type Assignment struct {
	Statement   AssignmentStatement
	Certificate quorum.Certificate
}

// Verify checks the assignment's certificate against members at
// threshold.
func (a Assignment) Verify(members map[ids.ID]crypto.PublicKey, threshold int) error {
	return a.Certificate.VerifyThreshold(members, threshold, a.Statement)
}
