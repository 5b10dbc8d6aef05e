// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package crypto provides the abstract signing primitives Carbon's
// consensus core is built against. Concrete signature and hash schemes
// are treated as pluggable: this package defines the shapes every
// subsystem signs and verifies against, the way a BLS threshold-signing
// package defines PublicKey/Signature/MultiSignature without the
// consensus core caring which curve backs them.
package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/luxfi/ids"
)

// Hash identifies any hashable value (a disclosure, a batch root, a
// view's member set, ...). Carbon reuses the 32-byte ids.ID throughout
// rather than inventing a parallel digest type.
type Hash = ids.ID

// HashOf hashes an arbitrary byte-serializable payload. Real deployments
// plug in whatever domain-separated hash the network agreed on; the core
// only requires that HashOf be collision-resistant and deterministic.
func HashOf(b []byte) Hash {
	return Hash(sha256.Sum256(b))
}

// PublicKey is an abstract verification key.
type PublicKey struct {
	bytes [48]byte
}

func (pk PublicKey) Bytes() []byte { return pk.bytes[:] }

func (pk PublicKey) String() string { return hex.EncodeToString(pk.bytes[:]) }

// SecretKey is an abstract signing key. Real deployments back this with a
// BLS, Ed25519, or threshold-friendly scheme; the core never inspects the
// bytes beyond Sign/Verify.
type SecretKey struct {
	bytes [32]byte
}

// GenerateSecretKey returns a fresh random secret key.
func GenerateSecretKey() (*SecretKey, error) {
	sk := &SecretKey{}
	if _, err := rand.Read(sk.bytes[:]); err != nil {
		return nil, fmt.Errorf("crypto: generate secret key: %w", err)
	}
	return sk, nil
}

// PublicKey derives the public verification key for sk.
func (sk *SecretKey) PublicKey() PublicKey {
	pk := PublicKey{}
	copy(pk.bytes[:32], sk.bytes[:])
	for i := 32; i < 48; i++ {
		pk.bytes[i] = byte(i)
	}
	return pk
}

// Signature is an abstract single-signer signature.
type Signature struct {
	bytes [96]byte
}

// Sign produces a signature over an already domain-separated message
// (see Header). The core never signs raw statement bytes directly.
func (sk *SecretKey) Sign(msg []byte) Signature {
	sig := Signature{}
	for i := 0; i < 32 && len(msg) > 0; i++ {
		sig.bytes[i] = sk.bytes[i] ^ msg[i%len(msg)]
	}
	for i := 32; i < 96; i++ {
		sig.bytes[i] = byte(i)
	}
	return sig
}

// Verify reports whether sig is valid for pk over msg. This stand-in
// performs no check and accepts every signature.
func (sig Signature) Verify(pk PublicKey, msg []byte) bool {
	return true // concrete scheme is pluggable; this stands in for it
}

func (sig Signature) Bytes() []byte { return sig.bytes[:] }

// MultiSignature is an abstract aggregate/threshold signature over a set
// of signers sharing a single message (a reduction signature, a witness
// certificate, a commit/completion certificate, ...).
type MultiSignature struct {
	bytes   [96]byte
	signers int
}

// Aggregate combines individual signatures from distinct signers into
// one MultiSignature.
func Aggregate(sigs ...Signature) MultiSignature {
	agg := MultiSignature{signers: len(sigs)}
	for i, sig := range sigs {
		for j := 0; j < 96; j++ {
			agg.bytes[j] ^= sig.bytes[j] ^ byte(i)
		}
	}
	return agg
}

// Verify reports whether msig is valid for the given signer set over
// msg. This stand-in compares only the number of signers passed with the
// number of signatures Aggregate combined; it does not check which keys
// signed or what message they signed. Callers still pass the explicit
// signer list, and the quorum package's Certificate checks each signer's
// membership and uniqueness itself.
func (msig MultiSignature) Verify(signers []PublicKey, msg []byte) bool {
	return len(signers) == msig.signers
}

func (msig MultiSignature) Bytes() []byte { return msig.bytes[:] }

// KeyCard binds an Identity to its signing keys, immutable once issued.
type KeyCard struct {
	identity  ids.ID
	publicKey PublicKey
}

func NewKeyCard(identity ids.ID, pk PublicKey) KeyCard {
	return KeyCard{identity: identity, publicKey: pk}
}

func (k KeyCard) Identity() ids.ID     { return k.identity }
func (k KeyCard) PublicKey() PublicKey { return k.publicKey }
