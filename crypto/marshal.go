// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import (
	"encoding/json"

	"github.com/luxfi/ids"
)

// The abstract signing types in types.go carry their state in unexported byte
// arrays so that nothing outside this package ever inspects a concrete
// scheme's internals. That also means the stdlib encoding/json the wire
// package's codec is built on would otherwise marshal every one of them
// as `{}` — these MarshalJSON/UnmarshalJSON pairs round-trip them through
// their own Bytes() accessors instead, so a Signature/PublicKey/
// MultiSignature/KeyCard crossing the wire in a codec-marshaled Envelope
// survives the trip.

type wirePublicKey struct {
	Bytes []byte `json:"bytes"`
}

func (pk PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(wirePublicKey{Bytes: pk.bytes[:]})
}

func (pk *PublicKey) UnmarshalJSON(data []byte) error {
	var w wirePublicKey
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	copy(pk.bytes[:], w.Bytes)
	return nil
}

type wireSignature struct {
	Bytes []byte `json:"bytes"`
}

func (sig Signature) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireSignature{Bytes: sig.bytes[:]})
}

func (sig *Signature) UnmarshalJSON(data []byte) error {
	var w wireSignature
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	copy(sig.bytes[:], w.Bytes)
	return nil
}

type wireMultiSignature struct {
	Bytes   []byte `json:"bytes"`
	Signers int    `json:"signers"`
}

func (msig MultiSignature) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireMultiSignature{Bytes: msig.bytes[:], Signers: msig.signers})
}

func (msig *MultiSignature) UnmarshalJSON(data []byte) error {
	var w wireMultiSignature
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	copy(msig.bytes[:], w.Bytes)
	msig.signers = w.Signers
	return nil
}

type wireKeyCard struct {
	Identity  ids.ID    `json:"identity"`
	PublicKey PublicKey `json:"publicKey"`
}

func (k KeyCard) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireKeyCard{Identity: k.identity, PublicKey: k.publicKey})
}

func (k *KeyCard) UnmarshalJSON(data []byte) error {
	var w wireKeyCard
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	k.identity = w.Identity
	k.publicKey = w.PublicKey
	return nil
}
