// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package view

import (
	"sync"

	"github.com/luxfi/carbon/crypto"
)

// Store is the process-wide view registry: every signed statement's view
// field is resolved by identifier alone, so any subsystem that
// deserializes one needs a reference to a Store rather than a hidden
// global. It is passed explicitly to every subsystem that
// validates Installs or Resolutions.
type Store struct {
	mu     sync.RWMutex
	byID   map[crypto.Hash]View
	latest View
}

// NewStore creates a registry seeded with a genesis view.
func NewStore(genesis View) *Store {
	s := &Store{
		byID:   make(map[crypto.Hash]View, 1),
		latest: genesis,
	}
	s.byID[genesis.Identifier()] = genesis
	return s
}

// Register records v so that future Lookups by its identifier succeed. It
// also advances the store's notion of the latest view when v's height is
// the highest seen so far.
func (s *Store) Register(v View) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID[v.Identifier()] = v
	if v.Height() >= s.latest.Height() {
		s.latest = v
	}
}

// Lookup resolves a view by its identifier.
func (s *Store) Lookup(identifier crypto.Hash) (View, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.byID[identifier]
	return v, ok
}

// Latest returns the highest-height view registered so far.
func (s *Store) Latest() View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.latest
}

// Teardown releases every registered view, leaving the store empty. Only
// meaningful at process shutdown; a torn-down Store rejects every future
// Lookup.
func (s *Store) Teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID = make(map[crypto.Hash]View)
	s.latest = View{}
}
