// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commit

import (
	"github.com/luxfi/carbon/account"
	"github.com/luxfi/carbon/crypto"
)

// RequestKind discriminates the three CommitRequest variants, using the
// same Kind()-tagged sum-type idiom as lattice.Message rather than a
// single struct of optional fields.
type RequestKind uint8

const (
	RequestCommits RequestKind = iota
	RequestCommitProofs
	RequestDependencies
)

// Request is any message a commit broker sends to open or continue a
// commit session: a batch of Commits to apply, a batch of CommitProofs
// vouching for prepares it already holds, or a request for the
// Dependencies those Commits reference.
type Request interface {
	Kind() RequestKind
}

// CommitsMessage opens a commit session with the batch of Commits the
// broker wants applied.
type CommitsMessage struct {
	Commits []Commit
}

func (CommitsMessage) Kind() RequestKind { return RequestCommits }

// CommitProofsMessage resends the CommitProofs a replica reported
// missing via MissingCommitProofsMessage.
type CommitProofsMessage struct {
	Proofs []CommitProof
}

func (CommitProofsMessage) Kind() RequestKind { return RequestCommitProofs }

// DependenciesMessage supplies the Completions resolving Dependencies a
// replica reported missing via MissingDependenciesMessage. Each
// dependency travels as a full Completion (Payload + CompletionProof),
// never a bare Payload — see [[commit]]'s Completion decision.
type DependenciesMessage struct {
	Dependencies []Completion
}

func (DependenciesMessage) Kind() RequestKind { return RequestDependencies }

// ResponseKind discriminates the five CommitResponse variants a broker
// can receive: a liveness pong, a request for missing proofs or
// dependencies, a witness shard, or a completion shard.
type ResponseKind uint8

const (
	ResponsePong ResponseKind = iota
	ResponseMissingCommitProofs
	ResponseWitnessShard
	ResponseMissingDependencies
	ResponseCompletionShard
)

// Response is a replica's reply to one commit session message.
type Response interface {
	Kind() ResponseKind
}

// PongMessage is a replica's keepalive reply.
type PongMessage struct{}

func (PongMessage) Kind() ResponseKind { return ResponsePong }

// MissingCommitProofsMessage names entries whose CommitProof the
// replica could not validate from batch context alone.
type MissingCommitProofsMessage struct {
	IDs []account.ID
}

func (MissingCommitProofsMessage) Kind() ResponseKind { return ResponseMissingCommitProofs }

// WitnessShardMessage is this replica's signature over the commit
// batch's WitnessStatement, echoing the prepare pipeline's own witness
// step for the commit pipeline's batch root.
type WitnessShardMessage struct {
	Signature crypto.Signature
}

func (WitnessShardMessage) Kind() ResponseKind { return ResponseWitnessShard }

// MissingDependenciesMessage names Entries this replica could not
// resolve from the session's supplied Dependencies.
type MissingDependenciesMessage struct {
	Entries []account.Entry
}

func (MissingDependenciesMessage) Kind() ResponseKind { return ResponseMissingDependencies }

// CompletionShardMessage closes the session: this replica's signature
// over the BatchCompletionStatement for every Payload it applied.
type CompletionShardMessage struct {
	Shard CompletionShard
}

func (CompletionShardMessage) Kind() ResponseKind { return ResponseCompletionShard }
