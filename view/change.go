// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package view

import (
	"encoding/binary"

	"github.com/luxfi/carbon/crypto"
	"github.com/luxfi/ids"
)

// Kind of membership Change.
type ChangeKind uint8

const (
	ChangeAdd ChangeKind = iota
	ChangeRemove
)

func (k ChangeKind) String() string {
	if k == ChangeAdd {
		return "Add"
	}
	return "Remove"
}

// Change adds or removes exactly one Identity from a view. A Change is
// valid only relative to the base view it claims to extend.
type Change struct {
	Kind     ChangeKind
	Identity ids.ID
	// KeyCard is the joining member's signing keys. Only meaningful when
	// Kind == ChangeAdd; the zero value is used for ChangeRemove.
	KeyCard crypto.KeyCard
}

// Encode serializes the change for inclusion in a signed Install payload.
func (c Change) Encode() []byte {
	out := make([]byte, 0, 1+len(ids.ID{})+48)
	out = append(out, byte(c.Kind))
	out = append(out, c.Identity[:]...)
	if c.Kind == ChangeAdd {
		out = append(out, c.KeyCard.PublicKey().Bytes()...)
	}
	return out
}

// Apply extends base by this Change, returning the resulting view. It
// validates that the change is structurally sound before applying: an Add
// must name an identity not already present, a Remove must name one that
// is, and the resulting member set must hash to a distinct identifier
// from base.
func (c Change) Apply(base View) (View, error) {
	switch c.Kind {
	case ChangeAdd:
		if base.Contains(c.Identity) {
			return View{}, newError(KindChangeInvalid, errAlreadyMember(c.Identity))
		}
		next := base.withAdd(c.Identity, c.KeyCard)
		if next.Identifier() == base.Identifier() {
			return View{}, newError(KindChangeInvalid, errNotDistinct())
		}
		return next, nil
	case ChangeRemove:
		if !base.Contains(c.Identity) {
			return View{}, newError(KindChangeInvalid, errNotMember(c.Identity))
		}
		next := base.withRemove(c.Identity)
		if next.Identifier() == base.Identifier() {
			return View{}, newError(KindChangeInvalid, errNotDistinct())
		}
		return next, nil
	default:
		return View{}, newError(KindChangeInvalid, errUnknownKind(c.Kind))
	}
}

func encodeHeight(h uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, h)
	return buf
}
