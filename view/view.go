// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package view implements the committee-snapshot substrate every other
// subsystem resolves signed statements against: registering views,
// validating the Change records and Install messages that move a
// replica from one view to the next, and computing the quorum/plurality
// thresholds a view's member set demands.
package view

import (
	"sort"

	"github.com/luxfi/carbon/crypto"
	"github.com/luxfi/carbon/quorum"
	"github.com/luxfi/ids"
)

// View is an immutable committee snapshot: a height, an ordered member
// set, and an identifier that names it for every future signed
// statement. Two Views with the same members at the same height always
// share the same identifier, since the identifier is a hash of the
// canonically sorted membership.
type View struct {
	height     uint64
	members    map[ids.ID]crypto.KeyCard
	identifier crypto.Hash
}

// Genesis builds the height-0 founding view from an explicit member set.
func Genesis(members map[ids.ID]crypto.KeyCard) View {
	return newView(0, members)
}

// NewAt builds a view at an explicit height with the given membership.
// Most views are reached by applying a Change to a predecessor; NewAt is
// for the cases that start somewhere other than height 0 — bootstrapping
// a replica from a saved snapshot height, or seeding a discovery-frame
// fixture at an arbitrary starting height.
func NewAt(height uint64, members map[ids.ID]crypto.KeyCard) View {
	return newView(height, members)
}

func newView(height uint64, members map[ids.ID]crypto.KeyCard) View {
	cloned := make(map[ids.ID]crypto.KeyCard, len(members))
	for id, kc := range members {
		cloned[id] = kc
	}
	return View{
		height:     height,
		members:    cloned,
		identifier: identifierOf(cloned),
	}
}

// identifierOf hashes the member set in identity-sorted order so that the
// identifier never depends on map iteration order or insertion history.
func identifierOf(members map[ids.ID]crypto.KeyCard) crypto.Hash {
	sorted := sortedIdentities(members)
	buf := make([]byte, 0, len(sorted)*(len(ids.ID{})+48))
	for _, id := range sorted {
		buf = append(buf, id[:]...)
		buf = append(buf, members[id].PublicKey().Bytes()...)
	}
	return crypto.HashOf(buf)
}

func sortedIdentities(members map[ids.ID]crypto.KeyCard) []ids.ID {
	out := make([]ids.ID, 0, len(members))
	for id := range members {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })
	return out
}

// Height returns the view's height.
func (v View) Height() uint64 { return v.height }

// Identifier returns the view's stable identity, H(members).
func (v View) Identifier() crypto.Hash { return v.identifier }

// Len returns the number of members in the view.
func (v View) Len() int { return len(v.members) }

// Members returns the view's membership keyed by identity, in the stable
// sorted order used to compute the identifier. The returned slice is safe
// to mutate; the view itself is never mutated in place.
func (v View) Members() []ids.ID { return sortedIdentities(v.members) }

// KeyCard looks up a member's signing keys.
func (v View) KeyCard(identity ids.ID) (crypto.KeyCard, bool) {
	kc, ok := v.members[identity]
	return kc, ok
}

// Contains reports whether identity is a member of v.
func (v View) Contains(identity ids.ID) bool {
	_, ok := v.members[identity]
	return ok
}

// PublicKeys returns the member→public-key map quorum.Certificate expects.
func (v View) PublicKeys() map[ids.ID]crypto.PublicKey {
	out := make(map[ids.ID]crypto.PublicKey, len(v.members))
	for id, kc := range v.members {
		out[id] = kc.PublicKey()
	}
	return out
}

// Quorum returns ⌈2n/3⌉+1 for this view's membership.
func (v View) Quorum() int { return quorum.Quorum(len(v.members)) }

// Plurality returns ⌊n/3⌋+1 for this view's membership.
func (v View) Plurality() int { return quorum.Plurality(len(v.members)) }

// VerifyQuorum verifies cert against this view's membership at the quorum
// threshold.
func (v View) VerifyQuorum(cert quorum.Certificate, statement crypto.Statement) error {
	return cert.VerifyQuorum(v.PublicKeys(), statement)
}

// VerifyPlurality verifies cert against this view's membership at the
// plurality threshold.
func (v View) VerifyPlurality(cert quorum.Certificate, statement crypto.Statement) error {
	return cert.VerifyPlurality(v.PublicKeys(), statement)
}

// withAdd returns a new view with identity's card added at height+1.
func (v View) withAdd(identity ids.ID, card crypto.KeyCard) View {
	members := make(map[ids.ID]crypto.KeyCard, len(v.members)+1)
	for id, kc := range v.members {
		members[id] = kc
	}
	members[identity] = card
	return newView(v.height+1, members)
}

// withRemove returns a new view with identity's card removed at height+1.
func (v View) withRemove(identity ids.ID) View {
	members := make(map[ids.ID]crypto.KeyCard, len(v.members))
	for id, kc := range v.members {
		if id == identity {
			continue
		}
		members[id] = kc
	}
	return newView(v.height+1, members)
}
