// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package quorum

import (
	"errors"
	"sort"

	"github.com/luxfi/carbon/crypto"
	"github.com/luxfi/carbon/utils/set"
	"github.com/luxfi/ids"
)

var (
	// ErrUnknownSigner is returned when a shard is received from an
	// identity outside the member set used to build the certificate.
	ErrUnknownSigner = errors.New("quorum: signer is not a member")
	// ErrDuplicateSigner is returned when the same identity contributes a
	// second shard to the same aggregator.
	ErrDuplicateSigner = errors.New("quorum: signer already contributed a shard")
	// ErrBadShard is returned when a shard fails to verify against the
	// claimed signer's public key.
	ErrBadShard = errors.New("quorum: shard failed verification")
	// ErrCertificateInvalid is returned by Certificate.Verify* when the
	// aggregate signature does not verify against the exact claimed
	// signer set, or the signer set is smaller than the threshold.
	ErrCertificateInvalid = errors.New("quorum: certificate invalid")
)

// Certificate is a portable, self-verifying record that a threshold subset
// of a known member set signed a given Statement — the shared shape behind
// an Install's plurality certificate, a witness certificate, a batch
// commit/completion certificate, and a lattice decision certificate.
type Certificate struct {
	Signers   []ids.ID
	Signature crypto.MultiSignature
}

// VerifyThreshold checks that c was produced by at least threshold members
// of members, all of whom are genuine members, over statement.
func (c Certificate) VerifyThreshold(members map[ids.ID]crypto.PublicKey, threshold int, statement crypto.Statement) error {
	if len(c.Signers) < threshold {
		return ErrCertificateInvalid
	}

	seen := set.NewSet[ids.ID](len(c.Signers))
	keys := make([]crypto.PublicKey, 0, len(c.Signers))

	for _, signer := range c.Signers {
		if seen.Contains(signer) {
			return ErrCertificateInvalid
		}
		seen.Add(signer)

		pk, ok := members[signer]
		if !ok {
			return ErrCertificateInvalid
		}
		keys = append(keys, pk)
	}

	if !crypto.VerifyMultiStatement(c.Signature, keys, statement) {
		return ErrCertificateInvalid
	}

	return nil
}

// VerifyQuorum checks c against the quorum threshold of members.
func (c Certificate) VerifyQuorum(members map[ids.ID]crypto.PublicKey, statement crypto.Statement) error {
	return c.VerifyThreshold(members, Quorum(len(members)), statement)
}

// VerifyPlurality checks c against the plurality threshold of members.
func (c Certificate) VerifyPlurality(members map[ids.ID]crypto.PublicKey, statement crypto.Statement) error {
	return c.VerifyThreshold(members, Plurality(len(members)), statement)
}

// Aggregator collects per-signer shards for a single statement until a
// threshold is reached, then finalizes them into a Certificate. The same
// Aggregator backs every shard collection in the system: witness shards,
// batch-commit shards, batch-completion shards, and lattice
// certification confirmations.
type Aggregator struct {
	statement crypto.Statement
	members   map[ids.ID]crypto.PublicKey
	threshold int

	shards  map[ids.ID]crypto.Signature
	order   []ids.ID
}

// NewAggregator creates an Aggregator for statement over the given member
// set, requiring threshold distinct shards to finalize.
func NewAggregator(statement crypto.Statement, members map[ids.ID]crypto.PublicKey, threshold int) *Aggregator {
	return &Aggregator{
		statement: statement,
		members:   members,
		threshold: threshold,
		shards:    make(map[ids.ID]crypto.Signature, threshold),
	}
}

// Add records a shard from signer, verifying it before counting. It
// returns true once the threshold has just been reached by this call (the
// caller should finalize then); it is idempotent for a signer that already
// contributed — a repeated shard from the same signer is rejected with
// ErrDuplicateSigner rather than silently ignored, so callers can
// distinguish a network retry (tolerable) from a protocol bug (log it).
func (a *Aggregator) Add(signer ids.ID, sig crypto.Signature) (bool, error) {
	if _, ok := a.shards[signer]; ok {
		return false, ErrDuplicateSigner
	}

	pk, ok := a.members[signer]
	if !ok {
		return false, ErrUnknownSigner
	}

	if !crypto.VerifyStatement(sig, pk, a.statement) {
		return false, ErrBadShard
	}

	a.shards[signer] = sig
	a.order = append(a.order, signer)

	return len(a.shards) == a.threshold, nil
}

// Count returns the number of distinct shards collected so far.
func (a *Aggregator) Count() int {
	return len(a.shards)
}

// Ready reports whether the threshold has been met.
func (a *Aggregator) Ready() bool {
	return len(a.shards) >= a.threshold
}

// Finalize aggregates the first `threshold` collected shards (in arrival
// order) into a Certificate. It returns false if the threshold has not yet
// been reached.
func (a *Aggregator) Finalize() (Certificate, bool) {
	if !a.Ready() {
		return Certificate{}, false
	}

	signers := append([]ids.ID(nil), a.order[:a.threshold]...)
	sort.Slice(signers, func(i, j int) bool { return signers[i].Compare(signers[j]) < 0 })

	sigs := make([]crypto.Signature, 0, len(signers))
	for _, signer := range signers {
		sigs = append(sigs, a.shards[signer])
	}

	return Certificate{
		Signers:   signers,
		Signature: crypto.Aggregate(sigs...),
	}, true
}
