// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commit

import (
	"errors"

	"github.com/luxfi/carbon/crypto"
	"github.com/luxfi/carbon/prepare"
	"github.com/luxfi/carbon/quorum"
	"github.com/luxfi/carbon/view"
)

var (
	// ErrCommitProofViewUnknown is returned when a CommitProof names a
	// view the registry has never seen.
	ErrCommitProofViewUnknown = errors.New("commit: commit proof view unknown")
	// ErrCommitProofInvalid is returned when a CommitProof's certificate
	// or inclusion proof fails to verify.
	ErrCommitProofInvalid = errors.New("commit: commit proof invalid")
	// ErrCommitProofExcluded is returned when the prepare pipeline's
	// batch commit statement names this entry's id as equivocated.
	ErrCommitProofExcluded = errors.New("commit: entry excluded by equivocation")
)

// CommitProof is a portable proof that one Commit's Prepare survived a
// batch's prepare pipeline: a quorum-aggregated certificate over the
// batch's BatchCommit statement, plus the Merkle inclusion proof placing
// this entry's Prepare under that statement's root.
type CommitProof struct {
	Statement   prepare.BatchCommit
	Certificate quorum.Certificate
	Inclusion   prepare.Proof
}

// Validate checks proof against the view registry and the entry's
// reconstructed Prepare statement, and confirms the entry was not named
// in the batch commit's equivocation exceptions.
func (proof CommitProof) Validate(store *view.Store, entry prepare.Prepare) error {
	v, ok := store.Lookup(proof.Statement.View)
	if !ok {
		return ErrCommitProofViewUnknown
	}

	if err := v.VerifyQuorum(proof.Certificate, proof.Statement); err != nil {
		return ErrCommitProofInvalid
	}

	if !proof.Inclusion.Verify(proof.Statement.Root, entry) {
		return ErrCommitProofInvalid
	}

	for _, eq := range proof.Statement.Exceptions {
		if eq.ID() == entry.ID {
			return ErrCommitProofExcluded
		}
	}

	return nil
}

// BatchCompletionStatement is what a replica's CompletionShard multisigns
// once it has applied an entire batch of Commits: the Merkle root of
// every Payload the batch completed.
type BatchCompletionStatement struct {
	View crypto.Hash
	Root crypto.Hash
}

func (BatchCompletionStatement) Header() crypto.Header { return crypto.HeaderBatchCompletion }

func (s BatchCompletionStatement) Encode() []byte {
	out := append([]byte(nil), s.View[:]...)
	return append(out, s.Root[:]...)
}

// CompletionStatement is the per-entry record of one applied operation,
// signed individually rather than folded into a batch root: a replica
// answering a single dependency lookup outside of any live commit
// session cannot wait for the next batch's root to fold the answer in
// without stalling the requester.
type CompletionStatement struct {
	View       crypto.Hash
	Entry      crypto.Hash // account.Entry, hashed — see Payload.Entry.Encode()
	Commitment crypto.Hash
}

func (CompletionStatement) Header() crypto.Header { return crypto.HeaderCompletion }

func (s CompletionStatement) Encode() []byte {
	out := append([]byte(nil), s.View[:]...)
	out = append(out, s.Entry[:]...)
	return append(out, s.Commitment[:]...)
}

// CompletionShard is one replica's signature over a BatchCompletionStatement.
type CompletionShard struct {
	Statement BatchCompletionStatement
	Signature crypto.Signature
}

// NewCompletionShard signs a BatchCompletionStatement for the given view
// and root.
func NewCompletionShard(secret *crypto.SecretKey, view, root crypto.Hash) CompletionShard {
	statement := BatchCompletionStatement{View: view, Root: root}
	return CompletionShard{Statement: statement, Signature: crypto.Sign(secret, statement)}
}

// BatchCompletion is the quorum-aggregated certificate over a
// BatchCompletionStatement, the shape CompletionShards are finalized
// into for consumption as a CompletionProof below.
type BatchCompletion struct {
	Statement   BatchCompletionStatement
	Certificate quorum.Certificate
}

var (
	// ErrCompletionViewUnknown is returned when a CompletionProof names
	// an unknown view.
	ErrCompletionViewUnknown = errors.New("commit: completion proof view unknown")
	// ErrCompletionInvalid is returned when a CompletionProof's
	// certificate or inclusion proof fails to verify.
	ErrCompletionInvalid = errors.New("commit: completion proof invalid")
)

// CompletionProof is a portable proof that a Payload was already applied
// by a quorum of some earlier batch: the form a Dependency's referenced
// Payload is actually supplied in, since a bare Payload carries no
// evidence a replica can check on its own.
type CompletionProof struct {
	Statement   BatchCompletionStatement
	Certificate quorum.Certificate
	Inclusion   prepare.Proof
}

// Validate checks proof against the view registry and confirms payload
// is included under the proof's certified root.
func (proof CompletionProof) Validate(store *view.Store, payload Payload) error {
	v, ok := store.Lookup(proof.Statement.View)
	if !ok {
		return ErrCompletionViewUnknown
	}

	if err := v.VerifyQuorum(proof.Certificate, proof.Statement); err != nil {
		return ErrCompletionInvalid
	}

	if !proof.Inclusion.VerifyBytes(proof.Statement.Root, payload.Encode()) {
		return ErrCompletionInvalid
	}

	return nil
}
