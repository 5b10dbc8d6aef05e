// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package wire implements the external interfaces: the six wire message
// families (SignupRequest/SignupResponse, PrepareRequest/PrepareResponse,
// CommitRequest/CommitResponse), each a Kind()-tagged sum type owned by
// its pipeline package (signup, prepare, commit), and the stable
// self-describing Envelope, encoded as JSON, that carries any one of them over a
// network.Session, built on the codec package's versioned
// marshal/unmarshal contract.
package wire

import (
	"errors"

	"github.com/luxfi/carbon/codec"
	"github.com/luxfi/carbon/commit"
	"github.com/luxfi/carbon/prepare"
	"github.com/luxfi/carbon/signup"
)

// Family discriminates the six top-level message families a session
// carries, tagging an Envelope so its Payload can be decoded back into
// the right pipeline package's concrete type.
type Family uint8

const (
	FamilySignupRequest Family = iota
	FamilySignupResponse
	FamilyPrepareRequest
	FamilyPrepareResponse
	FamilyCommitRequest
	FamilyCommitResponse
)

// ErrUnknownFamily is returned by Decode for a Family byte Carbon doesn't
// recognize (a peer running a newer/older protocol revision).
var ErrUnknownFamily = errors.New("wire: unknown message family")

// ErrUnknownVariant is returned by Decode when a Family's Variant byte
// doesn't match any of that family's known concrete message types.
var ErrUnknownVariant = errors.New("wire: unknown message variant")

// Envelope is what actually crosses a network.Session: a message's
// Family and its Kind() value within that family (Variant), framing an
// opaque codec-marshaled payload so the receiver can reconstruct the
// concrete Go type before dispatching it.
type Envelope struct {
	Family  Family
	Variant uint8
	Payload []byte
}

func marshal(v interface{}) ([]byte, error) {
	return codec.Codec.Marshal(codec.CurrentVersion, v)
}

func unmarshal(data []byte, v interface{}) error {
	_, err := codec.Codec.Unmarshal(data, v)
	return err
}

// EncodeSignupRequest wraps msg in an Envelope tagged as a SignupRequest.
func EncodeSignupRequest(msg signup.SignupMessage) (Envelope, error) {
	payload, err := marshal(msg)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{Family: FamilySignupRequest, Variant: uint8(msg.Kind()), Payload: payload}, nil
}

// DecodeSignupRequest reconstructs the concrete SignupMessage an Envelope
// carries.
func DecodeSignupRequest(e Envelope) (signup.SignupMessage, error) {
	if e.Family != FamilySignupRequest {
		return nil, ErrUnknownFamily
	}
	switch signup.RequestKind(e.Variant) {
	case signup.RequestIdRequests:
		var msg signup.IdRequestsMessage
		return msg, unmarshal(e.Payload, &msg)
	case signup.RequestIdClaims:
		var msg signup.IdClaimsMessage
		return msg, unmarshal(e.Payload, &msg)
	default:
		return nil, ErrUnknownVariant
	}
}

// EncodeSignupResponse wraps msg in an Envelope tagged as a SignupResponse.
func EncodeSignupResponse(msg signup.SignupResponse) (Envelope, error) {
	payload, err := marshal(msg)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{Family: FamilySignupResponse, Variant: uint8(msg.Kind()), Payload: payload}, nil
}

// DecodeSignupResponse reconstructs the concrete SignupResponse an
// Envelope carries.
func DecodeSignupResponse(e Envelope) (signup.SignupResponse, error) {
	if e.Family != FamilySignupResponse {
		return nil, ErrUnknownFamily
	}
	switch signup.ResponseKind(e.Variant) {
	case signup.ResponseIdAllocations:
		var msg signup.IdAllocationsMessage
		return msg, unmarshal(e.Payload, &msg)
	case signup.ResponseIdAssignments:
		var msg signup.IdAssignmentsMessage
		return msg, unmarshal(e.Payload, &msg)
	default:
		return nil, ErrUnknownVariant
	}
}

// EncodePrepareRequest wraps msg in an Envelope tagged as a PrepareRequest.
func EncodePrepareRequest(msg prepare.Request) (Envelope, error) {
	payload, err := marshal(msg)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{Family: FamilyPrepareRequest, Variant: uint8(msg.Kind()), Payload: payload}, nil
}

// DecodePrepareRequest reconstructs the concrete prepare.Request an
// Envelope carries.
func DecodePrepareRequest(e Envelope) (prepare.Request, error) {
	if e.Family != FamilyPrepareRequest {
		return nil, ErrUnknownFamily
	}
	switch prepare.RequestKind(e.Variant) {
	case prepare.RequestPrepares:
		var msg prepare.PreparesMessage
		return msg, unmarshal(e.Payload, &msg)
	case prepare.RequestWitness:
		var msg prepare.WitnessMessage
		return msg, unmarshal(e.Payload, &msg)
	case prepare.RequestSignatures:
		var msg prepare.SignaturesMessage
		return msg, unmarshal(e.Payload, &msg)
	case prepare.RequestAssignments:
		var msg prepare.AssignmentsMessage
		return msg, unmarshal(e.Payload, &msg)
	default:
		return nil, ErrUnknownVariant
	}
}

// EncodePrepareResponse wraps msg in an Envelope tagged as a
// PrepareResponse.
func EncodePrepareResponse(msg prepare.Response) (Envelope, error) {
	payload, err := marshal(msg)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{Family: FamilyPrepareResponse, Variant: uint8(msg.Kind()), Payload: payload}, nil
}

// DecodePrepareResponse reconstructs the concrete prepare.Response an
// Envelope carries.
func DecodePrepareResponse(e Envelope) (prepare.Response, error) {
	if e.Family != FamilyPrepareResponse {
		return nil, ErrUnknownFamily
	}
	switch prepare.ResponseKind(e.Variant) {
	case prepare.ResponseUnknownIds:
		var msg prepare.UnknownIdsMessage
		return msg, unmarshal(e.Payload, &msg)
	case prepare.ResponseWitnessShard:
		var msg prepare.WitnessShardMessage
		return msg, unmarshal(e.Payload, &msg)
	case prepare.ResponseCommitShard:
		var msg prepare.CommitShardMessage
		return msg, unmarshal(e.Payload, &msg)
	default:
		return nil, ErrUnknownVariant
	}
}

// EncodeCommitRequest wraps msg in an Envelope tagged as a CommitRequest.
func EncodeCommitRequest(msg commit.Request) (Envelope, error) {
	payload, err := marshal(msg)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{Family: FamilyCommitRequest, Variant: uint8(msg.Kind()), Payload: payload}, nil
}

// DecodeCommitRequest reconstructs the concrete commit.Request an
// Envelope carries.
func DecodeCommitRequest(e Envelope) (commit.Request, error) {
	if e.Family != FamilyCommitRequest {
		return nil, ErrUnknownFamily
	}
	switch commit.RequestKind(e.Variant) {
	case commit.RequestCommits:
		var msg commit.CommitsMessage
		return msg, unmarshal(e.Payload, &msg)
	case commit.RequestCommitProofs:
		var msg commit.CommitProofsMessage
		return msg, unmarshal(e.Payload, &msg)
	case commit.RequestDependencies:
		var msg commit.DependenciesMessage
		return msg, unmarshal(e.Payload, &msg)
	default:
		return nil, ErrUnknownVariant
	}
}

// EncodeCommitResponse wraps msg in an Envelope tagged as a
// CommitResponse.
func EncodeCommitResponse(msg commit.Response) (Envelope, error) {
	payload, err := marshal(msg)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{Family: FamilyCommitResponse, Variant: uint8(msg.Kind()), Payload: payload}, nil
}

// DecodeCommitResponse reconstructs the concrete commit.Response an
// Envelope carries.
func DecodeCommitResponse(e Envelope) (commit.Response, error) {
	if e.Family != FamilyCommitResponse {
		return nil, ErrUnknownFamily
	}
	switch commit.ResponseKind(e.Variant) {
	case commit.ResponsePong:
		var msg commit.PongMessage
		return msg, unmarshal(e.Payload, &msg)
	case commit.ResponseMissingCommitProofs:
		var msg commit.MissingCommitProofsMessage
		return msg, unmarshal(e.Payload, &msg)
	case commit.ResponseWitnessShard:
		var msg commit.WitnessShardMessage
		return msg, unmarshal(e.Payload, &msg)
	case commit.ResponseMissingDependencies:
		var msg commit.MissingDependenciesMessage
		return msg, unmarshal(e.Payload, &msg)
	case commit.ResponseCompletionShard:
		var msg commit.CompletionShardMessage
		return msg, unmarshal(e.Payload, &msg)
	default:
		return nil, ErrUnknownVariant
	}
}
