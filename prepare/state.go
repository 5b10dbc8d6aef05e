// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prepare

import (
	"github.com/luxfi/carbon/account"
	"github.com/luxfi/carbon/crypto"
)

// StateKind discriminates the two State variants.
type StateKind uint8

const (
	StateConsistent StateKind = iota
	StateEquivocated
)

// State is the per-account bookkeeping a replica's prepare database holds
// for one account.ID: either the most recent height/commitment it has
// consistently observed, or the Equivocation that proved the id can no
// longer be trusted.
type State struct {
	Kind StateKind

	// Height, Commitment, and Handle are set when Kind == StateConsistent.
	Height     uint64
	Commitment crypto.Hash
	Handle     Handle

	// Stale marks an entry that has been overwritten since the commit
	// pipeline last drained it: set unconditionally on every transition
	// out of the prior state (Consistent-to-Consistent,
	// Consistent-to-Equivocated), and cleared only by whatever consumes
	// the entry next. A consumer deciding "has anything changed here
	// since I last looked" reads this instead of diffing height and
	// commitment by hand.
	Stale bool

	// Equivocation is set when Kind == StateEquivocated.
	Equivocation *Equivocation
}

// Database is the prepare pipeline's share of a replica's overall
// storage.Database[T] payload: per-account State, plus the batches this
// replica has locally witnessed (needed to resolve a Batched handle back
// into an Extract on demand).
type Database struct {
	States  map[account.ID]State
	Batches map[crypto.Hash]WitnessedBatch
}

// NewDatabase returns an empty prepare Database.
func NewDatabase() Database {
	return Database{
		States:  make(map[account.ID]State),
		Batches: make(map[crypto.Hash]WitnessedBatch),
	}
}

// Apply folds a witnessed batch's prepares into db's per-account states,
// in order, and returns every Equivocation detected in the process.
func (db Database) Apply(batch WitnessedBatch) []Equivocation {
	db.Batches[batch.Root()] = batch

	var exceptions []Equivocation
	root := batch.Root()

	for index, prep := range batch.Prepares {
		id := prep.ID
		height := prep.Height
		commitment := prep.Commitment
		handle := Batched(root, index)

		prior, ok := db.States[id]

		var next State
		switch {
		case !ok:
			next = State{Kind: StateConsistent, Height: height, Commitment: commitment, Handle: handle, Stale: true}

		case prior.Kind == StateEquivocated:
			next = prior

		case prior.Height == height && prior.Commitment == commitment:
			// Idempotent re-observation of the same transition.
			continue

		case prior.Height == height:
			// Same height, different commitment: equivocation.
			oldExtract := db.extractOf(prior)
			newExtract := db.extractFromBatch(batch, root, index)

			eq := Equivocation{Old: oldExtract, New: newExtract}
			exceptions = append(exceptions, eq)

			next = State{Kind: StateEquivocated, Equivocation: &eq, Stale: true}

		default:
			// Different height: overwrite with the newer transition.
			next = State{Kind: StateConsistent, Height: height, Commitment: commitment, Handle: handle, Stale: true}
		}

		db.States[id] = next
	}

	return exceptions
}

// extractOf materializes the Extract a Consistent state's handle
// currently points to, resolving a Batched handle against the locally
// held batch it references.
func (db Database) extractOf(state State) Extract {
	if state.Handle.IsStandalone() {
		return *state.Handle.Extract
	}
	batch := db.Batches[state.Handle.Root]
	return db.extractFromBatch(batch, state.Handle.Root, state.Handle.Index)
}

func (db Database) extractFromBatch(batch WitnessedBatch, root crypto.Hash, index int) Extract {
	proof, _ := ProveInclusion(batch.Prepares, index)
	return Extract{
		View:      batch.View,
		Root:      root,
		Witness:   batch.Witness,
		Inclusion: proof,
		Prepare:   batch.Prepares[index],
	}
}
