// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package lattice implements the generalized lattice-agreement runner:
// one runner per (view, instance), disclosing at most one element via
// probabilistic reliable broadcast and certifying the resulting safe set
// at a quorum of the view.
package lattice

import (
	"sort"

	"github.com/luxfi/carbon/crypto"
)

// Instance is an opaque, hashable label separating independent
// agreements running over the same view.
type Instance = crypto.Hash

// Element is the opaque value a replica discloses and the runner
// eventually agrees on a set of.
type Element []byte

// Identifier hashes an element for use as a map key and wire identifier.
func (e Element) Identifier() crypto.Hash {
	return crypto.HashOf(e)
}

// State is the runner's position in its Disclosing → Proposing → Decided
// state machine.
type State int8

const (
	Disclosing State = iota
	Proposing
	Decided
)

func (s State) String() string {
	switch s {
	case Disclosing:
		return "Disclosing"
	case Proposing:
		return "Proposing"
	case Decided:
		return "Decided"
	default:
		return "Unknown"
	}
}

func sortedHashes(set map[crypto.Hash]struct{}) []crypto.Hash {
	out := make([]crypto.Hash, 0, len(set))
	for h := range set {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })
	return out
}
