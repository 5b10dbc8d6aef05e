// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wire

import (
	"encoding/binary"
	"errors"

	"github.com/luxfi/carbon/utils/wrappers"
)

// ErrShortFrame is returned by Unframe when buf does not contain a
// complete length-prefixed frame.
var ErrShortFrame = errors.New("wire: short frame")

// Frame serializes e as a length-prefixed frame, the form every wire
// message takes on a session: a 4-byte big-endian length header followed
// by the marshaled envelope.
func Frame(e Envelope) ([]byte, error) {
	body, err := marshal(e)
	if err != nil {
		return nil, err
	}

	p := wrappers.NewPacker(4 + len(body))
	p.PackInt(uint32(len(body)))
	p.PackBytes(body)
	return p.Bytes, p.Err
}

// Unframe reads one length-prefixed Envelope from the front of buf,
// returning it along with the number of bytes consumed.
func Unframe(buf []byte) (Envelope, int, error) {
	if len(buf) < 4 {
		return Envelope{}, 0, ErrShortFrame
	}
	length := binary.BigEndian.Uint32(buf)
	if uint32(len(buf)-4) < length {
		return Envelope{}, 0, ErrShortFrame
	}

	var e Envelope
	if err := unmarshal(buf[4:4+length], &e); err != nil {
		return Envelope{}, 0, err
	}
	return e, 4 + int(length), nil
}
