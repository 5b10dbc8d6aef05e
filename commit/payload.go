// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package commit implements the commit pipeline: validating a batch of
// Commits against their prepare-pipeline proofs, resolving the
// Dependencies a Withdraw or Deposit operation references, and applying
// the resulting Payloads to the account database under a single
// exclusive acquisition of the replica's voidable lock.
package commit

import (
	"github.com/luxfi/carbon/account"
)

// Dependency names another account's already-completed Entry that an
// operation references: a Withdraw's recipient slot, or the originating
// Withdraw a Deposit completes.
type Dependency struct {
	Entry account.Entry
}

func (d Dependency) Encode() []byte { return d.Entry.Encode() }

// Payload is one operation's full content: the account slot it targets,
// the operation itself, and — for the two dependency-bearing operation
// kinds — the Entry it references.
type Payload struct {
	Entry      account.Entry
	Operation  account.Operation
	Dependency *Dependency
}

// RequiresDependency reports whether p's operation kind must carry a
// Dependency before it can be applied: a Withdraw naming a recipient
// slot, or a Deposit completing one, can each reference another
// account's prior Entry this way.
func (p Payload) RequiresDependency() bool {
	switch p.Operation.Kind() {
	case account.OperationWithdraw, account.OperationDeposit:
		return true
	default:
		return false
	}
}

// Commitment is the hash a CommitProof's inclusion proof is taken
// against — the same Identifier hashing scheme the prepare pipeline used
// to commit to this operation in the first place.
func (p Payload) Commitment() account.ID {
	return account.Identifier(p.Operation)
}

// Encode serializes a Payload for hashing/signing and for Merkle leaf
// commitment in a BatchCompletionStatement.
func (p Payload) Encode() []byte {
	out := append([]byte(nil), p.Entry.Encode()...)
	commitment := p.Commitment()
	out = append(out, commitment[:]...)
	if p.Dependency != nil {
		out = append(out, byte(1))
		out = append(out, p.Dependency.Encode()...)
	} else {
		out = append(out, byte(0))
	}
	return out
}
