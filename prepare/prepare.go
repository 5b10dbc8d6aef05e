// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package prepare implements the prepare pipeline: a client's signed
// proposal for its next (height, commitment) transition, the broker
// round that batches many Prepares under one Merkle root and witnesses
// it at plurality, and the per-account State machine (Consistent /
// Equivocated) that a replica's database tracks across every batch it
// processes.
package prepare

import (
	"encoding/binary"

	"github.com/luxfi/carbon/account"
	"github.com/luxfi/carbon/crypto"
)

// Prepare is a client's proposed next transition for one account entry:
// its signing is carried separately (see Request), since a batch mixes
// individually signed Prepares with ones folded into a reduction
// signature.
type Prepare struct {
	ID         account.ID
	Height     uint64
	Commitment crypto.Hash
}

func (Prepare) Header() crypto.Header { return crypto.HeaderPrepare }

func (p Prepare) Encode() []byte {
	out := make([]byte, 0, len(p.ID)+8+len(p.Commitment))
	out = append(out, p.ID[:]...)
	out = binary.BigEndian.AppendUint64(out, p.Height)
	out = append(out, p.Commitment[:]...)
	return out
}

// ReductionStatement is what a batch's aggregate reduction signature
// signs over: the root of every Prepare the broker folded into one
// multisignature instead of carrying each one's individual signature.
type ReductionStatement struct{ Root crypto.Hash }

func (ReductionStatement) Header() crypto.Header { return crypto.HeaderReduction }

func (s ReductionStatement) Encode() []byte { return append([]byte(nil), s.Root[:]...) }

// WitnessStatement is what each replica multisigns once it has verified a
// batch's root against either its reduction signature or an inclusion
// proof. A Plurality of these signatures over the same root is the
// batch's Witness certificate.
type WitnessStatement struct{ Root crypto.Hash }

func (WitnessStatement) Header() crypto.Header { return crypto.HeaderWitness }

func (s WitnessStatement) Encode() []byte { return append([]byte(nil), s.Root[:]...) }

// BatchCommit is what a replica's BatchCommitShard signs: the root it
// witnessed, plus any Equivocations its own database detected while
// applying the batch.
type BatchCommit struct {
	View       crypto.Hash
	Root       crypto.Hash
	Exceptions []Equivocation
}

func (BatchCommit) Header() crypto.Header { return crypto.HeaderBatchCommit }

func (s BatchCommit) Encode() []byte {
	out := append([]byte(nil), s.View[:]...)
	out = append(out, s.Root[:]...)
	for _, eq := range s.Exceptions {
		out = append(out, eq.Old.Prepare.Commitment[:]...)
		out = append(out, eq.New.Prepare.Commitment[:]...)
	}
	return out
}

// BatchCommitShard is one replica's individually signed response closing
// a prepare broker session.
type BatchCommitShard struct {
	Statement BatchCommit
	Signature crypto.Signature
}

// NewBatchCommitShard signs a BatchCommit statement for the given view,
// root, and exceptions.
func NewBatchCommitShard(secret *crypto.SecretKey, view, root crypto.Hash, exceptions []Equivocation) BatchCommitShard {
	statement := BatchCommit{View: view, Root: root, Exceptions: exceptions}
	return BatchCommitShard{Statement: statement, Signature: crypto.Sign(secret, statement)}
}
