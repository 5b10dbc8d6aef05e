// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prepare

import (
	"errors"

	"github.com/luxfi/carbon/account"
	"github.com/luxfi/carbon/view"
)

var (
	// ErrEquivocationIDMismatch is returned when the two extracts name
	// different account IDs.
	ErrEquivocationIDMismatch = errors.New("prepare: equivocation id mismatch")
	// ErrEquivocationConsistent is returned when the two extracts agree
	// on their commitment — no equivocation occurred.
	ErrEquivocationConsistent = errors.New("prepare: equivocation extracts are consistent")
	// ErrEquivocationInvalidExtract is returned when either extract fails
	// to validate against the view registry.
	ErrEquivocationInvalidExtract = errors.New("prepare: equivocation extract invalid")
)

// Equivocation pairs two conflicting Extracts for the same account.ID.
type Equivocation struct {
	Old Extract
	New Extract
}

// ID returns the account.ID both extracts name. Callers only reach for
// this on an Equivocation that has already passed Validate, where
// Old.ID() == New.ID() is guaranteed.
func (e Equivocation) ID() account.ID { return e.Old.ID() }

// Validate checks that the two extracts name the same id, disagree on
// commitment, and each independently validate against the view registry.
func (e Equivocation) Validate(store *view.Store) error {
	if e.Old.ID() != e.New.ID() {
		return ErrEquivocationIDMismatch
	}
	if e.Old.Commitment() == e.New.Commitment() {
		return ErrEquivocationConsistent
	}
	for _, extract := range []Extract{e.Old, e.New} {
		if err := extract.Validate(store); err != nil {
			return ErrEquivocationInvalidExtract
		}
	}
	return nil
}
