// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commit

import (
	"errors"
	"sort"

	"github.com/luxfi/carbon/account"
	"github.com/luxfi/carbon/crypto"
)

var (
	// ErrCommitOutOfOrder is returned when a Commit's entry height is not
	// exactly one past the account's last applied height.
	ErrCommitOutOfOrder = errors.New("commit: entry out of order")
	// ErrCommitDependencyMismatch is returned when a supplied Completion
	// does not resolve the Dependency a Commit's Payload names.
	ErrCommitDependencyMismatch = errors.New("commit: dependency mismatch")
)

// MissingDependencyStatement is what a replica individually multisigns
// to attest that it does not locally hold a requested Dependency's
// Completion — giving a broker grounds to distinguish a genuinely
// unavailable dependency (every replica attests it's missing) from one
// flaky replica, rather than giving up after a single report.
type MissingDependencyStatement struct {
	View  crypto.Hash
	Entry crypto.Hash // account.Entry, hashed
}

func (MissingDependencyStatement) Header() crypto.Header { return crypto.HeaderDependency }

func (s MissingDependencyStatement) Encode() []byte {
	out := append([]byte(nil), s.View[:]...)
	return append(out, s.Entry[:]...)
}

// NewMissingDependencyShard signs a MissingDependencyStatement reporting
// that entry's Completion is not locally available.
func NewMissingDependencyShard(secret *crypto.SecretKey, view crypto.Hash, entry account.Entry) crypto.Signature {
	statement := MissingDependencyStatement{View: view, Entry: crypto.HashOf(entry.Encode())}
	return crypto.Sign(secret, statement)
}

// Database tracks, per account, the height of the last Commit this
// replica has applied — the state the commit pipeline folds batches
// into once their CommitProofs and Dependencies have validated.
type Database struct {
	Applied map[account.ID]uint64
}

// NewDatabase returns an empty commit Database.
func NewDatabase() Database {
	return Database{Applied: make(map[account.ID]uint64)}
}

// Apply validates and applies an ordered batch of Commits against
// already-resolved dependencies, returning the Payloads it actually
// applied (in application order) and the Entries whose Dependency could
// not be resolved from dependencies. commits is sorted by (id, height)
// before application.
func (db Database) Apply(commits []Commit, dependencies map[account.ID]Completion) ([]Payload, []account.Entry, error) {
	sorted := append([]Commit(nil), commits...)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i].Payload.Entry, sorted[j].Payload.Entry
		if a.ID != b.ID {
			return idLess(a.ID, b.ID)
		}
		return a.Height < b.Height
	})

	var (
		applied []Payload
		missing []account.Entry
	)

	for _, c := range sorted {
		entry := c.Payload.Entry

		if c.Payload.RequiresDependency() {
			dep := c.Payload.Dependency
			completion, ok := dependencies[dep.Entry.ID]
			if !ok {
				missing = append(missing, entry)
				continue
			}
			if completion.Payload.Entry != dep.Entry {
				return nil, nil, ErrCommitDependencyMismatch
			}
		}

		want := db.Applied[entry.ID] + 1
		if entry.Height != want {
			return nil, nil, ErrCommitOutOfOrder
		}

		db.Applied[entry.ID] = entry.Height
		applied = append(applied, c.Payload)
	}

	return applied, missing, nil
}

func idLess(a, b account.ID) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
