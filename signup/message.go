// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package signup

import "github.com/luxfi/carbon/quorum"

// RequestKind discriminates the two SignupRequest variants, using the
// same Kind()-tagged sum-type idiom as lattice.Message.
type RequestKind uint8

const (
	RequestIdRequests RequestKind = iota
	RequestIdClaims
)

// SignupMessage is any message a sign-up broker sends to an allocator:
// a batch of IdRequests asking for an AccountId, or a batch of IdClaims
// asking to be certified.
type SignupMessage interface {
	Kind() RequestKind
}

// IdRequestsMessage opens a sign-up session with a batch of clients'
// allocation bids.
type IdRequestsMessage struct {
	Requests []Request
}

func (IdRequestsMessage) Kind() RequestKind { return RequestIdRequests }

// IdClaimsMessage carries the Claims an allocator issued in response to
// an earlier IdRequestsMessage, once the client has countersigned them.
type IdClaimsMessage struct {
	Claims []Claim
}

func (IdClaimsMessage) Kind() RequestKind { return RequestIdClaims }

// ResponseKind discriminates the two SignupResponse variants.
type ResponseKind uint8

const (
	ResponseIdAllocations ResponseKind = iota
	ResponseIdAssignments
)

// SignupResponse is a replica's reply to one sign-up session message.
type SignupResponse interface {
	Kind() ResponseKind
}

// AllocationResult is one member's vote on a single IdRequest: either its
// certified Claim, or an error if the request itself was rejected
// (unknown view, insufficient work, invalid rogue-key proof). ErrMessage
// is a plain string rather than an error value so it survives being
// marshaled onto the wire.
type AllocationResult struct {
	Claim      *Claim
	ErrMessage string
}

// IdAllocationsMessage replies to an IdRequestsMessage with one
// AllocationResult per submitted request, in the same order.
type IdAllocationsMessage struct {
	Results []AllocationResult
}

func (IdAllocationsMessage) Kind() ResponseKind { return ResponseIdAllocations }

// AssignmentResult is one member's response to a single IdClaim: either
// a quorum Certificate finalizing it into an Assignment, or the Claim
// echoed back unresolved.
type AssignmentResult struct {
	Certificate quorum.Certificate
	Ok          bool
	Claim       Claim
}

// IdAssignmentsMessage replies to an IdClaimsMessage with one
// AssignmentResult per submitted claim, in the same order.
type IdAssignmentsMessage struct {
	Results []AssignmentResult
}

func (IdAssignmentsMessage) Kind() ResponseKind { return ResponseIdAssignments }
