// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prepare

import (
	"github.com/luxfi/carbon/account"
	"github.com/luxfi/carbon/crypto"
	"github.com/luxfi/carbon/quorum"
	"github.com/luxfi/carbon/signup"
)

// RequestKind discriminates the four PrepareRequest variants, using the
// same Kind()-tagged sum-type idiom as lattice.Message.
type RequestKind uint8

const (
	RequestPrepares RequestKind = iota
	RequestWitness
	RequestSignatures
	RequestAssignments
)

// Request is any message a prepare broker sends to drive one session: a
// batch of Prepares to fold into a root, the Witness certificate over
// it, the reduction/individual Signatures backing it, or the
// Assignments proving each signer controls its account.
type Request interface {
	Kind() RequestKind
}

// PreparesMessage opens a session with the batch's ordered Prepares.
type PreparesMessage struct {
	Prepares []Prepare
}

func (PreparesMessage) Kind() RequestKind { return RequestPrepares }

// WitnessMessage delivers the finalized plurality Witness certificate
// over the batch's root, closing out the witnessing round.
type WitnessMessage struct {
	Witness quorum.Certificate
}

func (WitnessMessage) Kind() RequestKind { return RequestWitness }

// SignaturesMessage carries the batch's reduction signature plus one
// optional individual signature per prepare — the same split
// SignedBatch.Verify checks.
type SignaturesMessage struct {
	Reduction  crypto.MultiSignature
	Individual []*crypto.Signature
}

func (SignaturesMessage) Kind() RequestKind { return RequestSignatures }

// AssignmentsMessage resolves the sign-up Assignments for account ids a
// replica reported unknown via UnknownIdsMessage.
type AssignmentsMessage struct {
	Assignments []signup.Assignment
}

func (AssignmentsMessage) Kind() RequestKind { return RequestAssignments }

// ResponseKind discriminates the three PrepareResponse variants.
type ResponseKind uint8

const (
	ResponseUnknownIds ResponseKind = iota
	ResponseWitnessShard
	ResponseCommitShard
)

// Response is a replica's reply to one prepare session message.
type Response interface {
	Kind() ResponseKind
}

// UnknownIdsMessage names account ids in the batch this replica has no
// Assignment for, requesting the broker resupply them.
type UnknownIdsMessage struct {
	IDs []account.ID
}

func (UnknownIdsMessage) Kind() ResponseKind { return ResponseUnknownIds }

// WitnessShardMessage is this replica's individual signature over the
// batch's WitnessStatement.
type WitnessShardMessage struct {
	Signature crypto.Signature
}

func (WitnessShardMessage) Kind() ResponseKind { return ResponseWitnessShard }

// CommitShardMessage closes the session: this replica's BatchCommitShard,
// naming any Equivocations its database detected while applying the
// batch.
type CommitShardMessage struct {
	Shard BatchCommitShard
}

func (CommitShardMessage) Kind() ResponseKind { return ResponseCommitShard }
