// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package account defines the operation slots a client signs prepares
// over: an Entry names one slot of one account's history, and an
// Operation is the sum type of the four actions a slot can hold.
package account

import (
	"encoding/binary"

	"github.com/luxfi/carbon/crypto"
	"github.com/luxfi/ids"
)

// ID identifies an account, allocated to a client at sign-up. Carbon
// reuses ids.ID rather than inventing a parallel type.
type ID = ids.ID

// Entry names one operation slot of one account: the height is the
// account's local sequence number, incremented once per accepted
// operation.
type Entry struct {
	ID     ID
	Height uint64
}

// Encode serializes an Entry for hashing or inclusion in a larger
// signed statement.
func (e Entry) Encode() []byte {
	out := make([]byte, 0, len(e.ID)+8)
	out = append(out, e.ID[:]...)
	out = binary.BigEndian.AppendUint64(out, e.Height)
	return out
}

// OperationKind discriminates the four operation variants.
type OperationKind uint8

const (
	OperationWithdraw OperationKind = iota
	OperationDeposit
	OperationSupport
	OperationAbandon
)

func (k OperationKind) String() string {
	switch k {
	case OperationWithdraw:
		return "Withdraw"
	case OperationDeposit:
		return "Deposit"
	case OperationSupport:
		return "Support"
	case OperationAbandon:
		return "Abandon"
	default:
		return "Unknown"
	}
}

// Operation is any action a client can request over an account Entry.
// Concrete variants are Withdraw, Deposit, Support, and Abandon. Each
// implements its own Kind/Encode rather than sharing a tagged union;
// only Withdraw carries fields beyond its kind.
type Operation interface {
	Kind() OperationKind
	Encode() []byte
}

// Identifier hashes an Operation with its kind tag folded in front of
// the variant's own encoding, so Withdraw and Deposit never collide even
// if their payloads happen to coincide.
func Identifier(op Operation) crypto.Hash {
	out := append([]byte{byte(op.Kind())}, op.Encode()...)
	return crypto.HashOf(out)
}

// Withdraw moves amount out of the signing account to recipient's slot,
// at the withdraw side's chosen slot number (used by a dependent Deposit
// to reference it).
type Withdraw struct {
	Amount    uint64
	Recipient ID
	Slot      uint64
}

func (Withdraw) Kind() OperationKind { return OperationWithdraw }

func (w Withdraw) Encode() []byte {
	out := make([]byte, 0, 8+len(w.Recipient)+8)
	out = binary.BigEndian.AppendUint64(out, w.Amount)
	out = append(out, w.Recipient[:]...)
	out = binary.BigEndian.AppendUint64(out, w.Slot)
	return out
}

// Deposit has no fields of its own: it is completed against a prior
// Withdraw via a Dependency at commit time, not by carrying the
// withdraw's Entry inline.
type Deposit struct{}

func (Deposit) Kind() OperationKind { return OperationDeposit }
func (Deposit) Encode() []byte      { return nil }

// Support records a client vouching for its own account without moving
// funds.
type Support struct{}

func (Support) Kind() OperationKind { return OperationSupport }
func (Support) Encode() []byte      { return nil }

// Abandon closes out an account slot, ending that account's
// participation without transferring funds.
type Abandon struct{}

func (Abandon) Kind() OperationKind { return OperationAbandon }
func (Abandon) Encode() []byte      { return nil }
