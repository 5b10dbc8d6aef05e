// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package signup implements the sign-up flow that binds a client's keys
// to an allocated AccountId: a proof-of-work-gated Request for the id,
// followed by a Claim that replicas certify into an Assignment once any
// conflicting claim has been resolved.
package signup

import (
	"github.com/luxfi/carbon/crypto"
	"github.com/luxfi/carbon/view"
	"github.com/luxfi/ids"
)

// WorkDifficulty is the proof-of-work gate's default leading-zero-bit
// requirement.
const WorkDifficulty = 10

type requestStatement struct {
	View      crypto.Hash
	Allocator ids.ID
	Client    crypto.KeyCard
}

func (requestStatement) Header() crypto.Header { return crypto.HeaderIdRequest }

func (s requestStatement) Encode() []byte {
	out := append([]byte(nil), s.View[:]...)
	out = append(out, s.Allocator[:]...)
	id := s.Client.Identity()
	out = append(out, id[:]...)
	return append(out, s.Client.PublicKey().Bytes()...)
}

// Request is a client's bid to be allocated an AccountId by allocator,
// a member of v. It carries a proof-of-work rate-limit and a rogue-key
// proof over the client's own public key.
type Request struct {
	statement requestStatement
	work      Work
	rogue     Rogue
}

// NewRequest builds and mines a Request for allocator under v, signed
// as the holder of secret.
func NewRequest(secret *crypto.SecretKey, v view.View, allocator ids.ID) Request {
	statement := requestStatement{
		View:      v.Identifier(),
		Allocator: allocator,
		Client:    crypto.NewKeyCard(clientIdentity(secret), secret.PublicKey()),
	}

	return Request{
		statement: statement,
		work:      NewWork(WorkDifficulty, statement.Encode()),
		rogue:     NewRogue(secret),
	}
}

// clientIdentity derives the client's self-asserted identity from its
// own public key — sign-up is the one place in Carbon an identity is
// minted rather than looked up, so it is derived deterministically from
// the key being bound rather than chosen freely by the client.
func clientIdentity(secret *crypto.SecretKey) ids.ID {
	return ids.ID(crypto.HashOf(secret.PublicKey().Bytes()))
}

// View returns the view identifier the request targets.
func (r Request) View() crypto.Hash { return r.statement.View }

// Allocator returns the member the request was addressed to.
func (r Request) Allocator() ids.ID { return r.statement.Allocator }

// Client returns the identity requesting allocation.
func (r Request) Client() ids.ID { return r.statement.Client.Identity() }

// Validate checks a Request against the registered view it names: the
// allocator must be a genuine member, the proof-of-work must meet
// WorkDifficulty, and the rogue-key proof must verify against the
// client's own embedded key.
func (r Request) Validate(store *view.Store) error {
	v, ok := store.Lookup(r.statement.View)
	if !ok {
		return ErrUnknownView
	}
	if !v.Contains(r.statement.Allocator) {
		return ErrForeignAllocator
	}
	if !r.work.Verify(WorkDifficulty, r.statement.Encode()) {
		return ErrWorkInvalid
	}
	if err := r.rogue.Validate(r.statement.Client.PublicKey()); err != nil {
		return err
	}
	return nil
}
