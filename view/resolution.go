// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package view

import (
	"github.com/luxfi/carbon/crypto"
	"github.com/luxfi/carbon/quorum"
)

// Threshold selects which of a view's two thresholds a Resolution must
// clear. Callers pick explicitly rather than the package silently
// defaulting to one, since a view-change vote and a finality vote have
// different tolerance for how many members must agree.
type Threshold int8

const (
	ThresholdQuorum Threshold = iota
	ThresholdPlurality
)

// ResolutionStatement is the signed body of a Resolution: a claimed view
// and the Change it proposes against that view. It is the vote carrier a
// replica multisigns when voting to apply a Change.
type ResolutionStatement struct {
	View   crypto.Hash
	Change Change
}

func (ResolutionStatement) Header() crypto.Header { return crypto.HeaderResolution }

func (s ResolutionStatement) Encode() []byte {
	out := append([]byte(nil), s.View[:]...)
	return append(out, s.Change.Encode()...)
}

// ResolutionClaim is a ResolutionStatement plus the certificate attesting
// it.
type ResolutionClaim struct {
	Statement   ResolutionStatement
	Certificate quorum.Certificate
}

// Resolution wraps a claim for validation against a Store.
type Resolution struct {
	Claim ResolutionClaim
}

// Validate checks that the claimed view is registered and not ahead of
// the store's latest known view for its family, and that the certificate
// verifies at the requested threshold over the claimed view's
// membership.
func (r Resolution) Validate(store *Store, threshold Threshold) error {
	claimed, ok := store.Lookup(r.Claim.Statement.View)
	if !ok {
		return newError(KindViewUnknown, nil)
	}

	if claimed.Height() > store.Latest().Height() {
		return newError(KindFutureVote, nil)
	}

	var err error
	switch threshold {
	case ThresholdPlurality:
		err = claimed.VerifyPlurality(r.Claim.Certificate, r.Claim.Statement)
	default:
		err = claimed.VerifyQuorum(r.Claim.Certificate, r.Claim.Statement)
	}
	if err != nil {
		return newError(KindCertificateInvalid, err)
	}

	return nil
}
