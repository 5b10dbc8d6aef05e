// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package signup

import (
	"encoding/binary"
	"math/bits"

	"github.com/luxfi/carbon/crypto"
)

// Work is a client-side proof-of-work gate on sign-up requests. The
// difficulty is an explicit parameter rather than a fixed constant, so a
// deployment can tune the sign-up rate-limit.
type Work struct {
	Nonce uint64
}

// NewWork mines a nonce such that H(payload || nonce) has at least
// difficulty leading zero bits.
func NewWork(difficulty int, payload []byte) Work {
	for nonce := uint64(0); ; nonce++ {
		if leadingZeroBits(workHash(payload, nonce)) >= difficulty {
			return Work{Nonce: nonce}
		}
	}
}

// Verify checks that w's nonce actually satisfies difficulty against
// payload.
func (w Work) Verify(difficulty int, payload []byte) bool {
	return leadingZeroBits(workHash(payload, w.Nonce)) >= difficulty
}

func workHash(payload []byte, nonce uint64) crypto.Hash {
	buf := make([]byte, 0, len(payload)+8)
	buf = append(buf, payload...)
	buf = binary.BigEndian.AppendUint64(buf, nonce)
	return crypto.HashOf(buf)
}

func leadingZeroBits(h crypto.Hash) int {
	count := 0
	for _, b := range h {
		if b == 0 {
			count += 8
			continue
		}
		count += bits.LeadingZeros8(b)
		break
	}
	return count
}
