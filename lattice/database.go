// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lattice

import (
	"github.com/luxfi/carbon/crypto"
	"github.com/luxfi/ids"
)

// originDisclosure keys everything indexed by (origin, disclosure id).
type originDisclosure struct {
	Origin ids.ID
	ID     crypto.Hash
}

// sourceOrigin keys everything indexed by (source replica, origin
// replica) — membership, not count, since a replica only ever echoes or
// readies one disclosure per origin.
type sourceOrigin struct {
	Source ids.ID
	Origin ids.ID
}

// disclosureDatabase carries the runner's per-instance bookkeeping:
// collapsing any of these indices breaks either the quorum counting or
// the brief/expanded request flow.
type disclosureDatabase struct {
	// disclosed is true iff the local replica disclosed a value.
	disclosed bool

	// disclosuresReceived maps (origin, id) to the signed send message,
	// so an expanded echo/ready can always be re-derived.
	disclosuresReceived map[originDisclosure]DisclosureSendMessage

	// echoesSent maps origin to the id the local replica echoed for it —
	// a replica echoes at most one disclosure per origin.
	echoesSent map[ids.ID]crypto.Hash

	// echoesCollected holds (source, origin) iff the local replica
	// received an echo from source for any message from origin.
	echoesCollected map[sourceOrigin]struct{}

	// echoSupport counts distinct echoes per (origin, id); must reach
	// view.Quorum() to issue a ready (the plurality shortcut for issuing
	// a ready counts readySupport instead).
	echoSupport map[originDisclosure]int

	// readySent holds origin iff the local replica issued a ready for
	// any message from origin.
	readySent map[ids.ID]struct{}

	// readyCollected holds (source, origin) iff the local replica
	// received a ready from source for any message from origin.
	readyCollected map[sourceOrigin]struct{}

	// readySupport counts distinct readies per (origin, id); must reach
	// view.Plurality() to relay a ready, view.Quorum() to deliver.
	readySupport map[originDisclosure]int

	// disclosuresDelivered maps origin to the id of the (only possible)
	// disclosure the local replica has delivered from it.
	disclosuresDelivered map[ids.ID]crypto.Hash
}

func newDisclosureDatabase() disclosureDatabase {
	return disclosureDatabase{
		disclosuresReceived:  make(map[originDisclosure]DisclosureSendMessage),
		echoesSent:           make(map[ids.ID]crypto.Hash),
		echoesCollected:      make(map[sourceOrigin]struct{}),
		echoSupport:          make(map[originDisclosure]int),
		readySent:            make(map[ids.ID]struct{}),
		readyCollected:       make(map[sourceOrigin]struct{}),
		readySupport:         make(map[originDisclosure]int),
		disclosuresDelivered: make(map[ids.ID]crypto.Hash),
	}
}

// database is the runner's full state: the delivered safe elements plus
// the disclosure bookkeeping above.
type database struct {
	safeElements map[crypto.Hash]Element
	disclosure   disclosureDatabase
}

func newDatabase() database {
	return database{
		safeElements: make(map[crypto.Hash]Element),
		disclosure:   newDisclosureDatabase(),
	}
}
