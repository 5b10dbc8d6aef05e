// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package signup

import "github.com/luxfi/carbon/crypto"

// rogueStatement is what a Rogue proof signs over: the claimant's own
// public key. Requiring a self-signature over one's own key — rather
// than accepting the key bare — is the standard rogue-key-attack
// defense for schemes whose aggregate/threshold signatures are later
// verified against a sum of public keys, as every certificate in this
// protocol does over its view's member keys.
type rogueStatement struct {
	PublicKey crypto.PublicKey
}

func (rogueStatement) Header() crypto.Header { return crypto.HeaderRogue }

func (s rogueStatement) Encode() []byte { return s.PublicKey.Bytes() }

// Rogue is a proof that the holder of sk genuinely controls sk's public
// key.
type Rogue struct {
	Signature crypto.Signature
}

// NewRogue proves possession of sk by self-signing its public key.
func NewRogue(sk *crypto.SecretKey) Rogue {
	return Rogue{Signature: crypto.Sign(sk, rogueStatement{PublicKey: sk.PublicKey()})}
}

// Validate checks that the Rogue proof was produced by the holder of
// pk's matching secret key.
func (r Rogue) Validate(pk crypto.PublicKey) error {
	if !crypto.VerifyStatement(r.Signature, pk, rogueStatement{PublicKey: pk}) {
		return ErrRogueInvalid
	}
	return nil
}
