// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lattice

import (
	"github.com/luxfi/carbon/crypto"
	"github.com/luxfi/carbon/quorum"
	"github.com/luxfi/ids"
)

// Decision is the statement a CertificationConfirmation signs over: the
// proposer's claimed element set at a specific identifier. Its elements
// are always hash-sorted, so two replicas that received disclosures in a
// different order still sign the same bytes.
type Decision struct {
	View     crypto.Hash
	Instance Instance
	Elements []crypto.Hash
}

func (Decision) Header() crypto.Header { return crypto.HeaderLatticeDecisions }

func (d Decision) Encode() []byte {
	out := append([]byte(nil), d.View[:]...)
	out = append(out, d.Instance[:]...)
	for _, e := range d.Elements {
		out = append(out, e[:]...)
	}
	return out
}

// identifierOf hashes a proposed element set, giving CertificationRequest/
// Confirmation/Update their shared identifier.
func identifierOf(elements map[crypto.Hash]struct{}) crypto.Hash {
	return crypto.HashOf(Decision{Elements: sortedHashes(elements)}.Encode())
}

// CertificationRequestMessage is the proposer's broadcast snapshot of its
// current safe set, keyed by origin since a replica discloses at most
// one element. Each entry carries the origin's own
// signed DisclosureSendMessage so a recipient can verify every element's
// authenticity against the origin's keycard before folding it into its
// accepted set — a request carries no certificate of its own; the
// certificate is built from the Confirmations it collects.
type CertificationRequestMessage struct {
	Elements map[ids.ID]DisclosureSendMessage
}

// elementHashes reduces a request's origin-keyed elements down to the
// content-hash set a Decision statement signs over.
func elementHashes(elements map[ids.ID]DisclosureSendMessage) map[crypto.Hash]struct{} {
	out := make(map[crypto.Hash]struct{}, len(elements))
	for _, send := range elements {
		out[send.Disclosure.id()] = struct{}{}
	}
	return out
}

func (CertificationRequestMessage) Kind() MessageKind { return MessageCertificationRequest }

// CertificationConfirmationMessage is a replica's agreement that its own
// accepted set is a subset of the proposer's request.
type CertificationConfirmationMessage struct {
	Identifier crypto.Hash
	Signature  crypto.Signature
}

func (CertificationConfirmationMessage) Kind() MessageKind { return MessageCertificationConfirmation }

// CertificationUpdateMessage tells the proposer its request omitted
// elements the replying replica had already accepted; the proposer must
// re-propose the union.
type CertificationUpdateMessage struct {
	Identifier  crypto.Hash
	Differences []crypto.Hash
}

func (CertificationUpdateMessage) Kind() MessageKind { return MessageCertificationUpdate }

// Certificate is the finalized quorum-aggregated proof of a Decision.
type Certificate = quorum.Certificate
