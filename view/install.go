// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package view

import (
	"github.com/luxfi/carbon/crypto"
	"github.com/luxfi/carbon/quorum"
)

// InstallPayload is the signed portion of an Install: the source view's
// identifier and the ordered increments that move a replica past it.
type InstallPayload struct {
	Source     crypto.Hash
	Increments []Change
}

func (InstallPayload) Header() crypto.Header { return crypto.HeaderInstall }

func (p InstallPayload) Encode() []byte {
	out := append([]byte(nil), p.Source[:]...)
	for _, c := range p.Increments {
		enc := c.Encode()
		out = append(out, encodeHeight(uint64(len(enc)))...)
		out = append(out, enc...)
	}
	return out
}

// Install carries a payload plus the plurality certificate of the source
// view that authorizes it. Tailless marks whether the resulting
// Transition's destination is a resting point with no further pending
// churn — the bit the discovery frame uses to decide whether an install
// is a safe lookup anchor.
type Install struct {
	Payload     InstallPayload
	Certificate quorum.Certificate
	Tailless    bool
}

// Check validates that the payload's source view is registered in store
// and that the certificate verifies at a plurality of that source view's
// membership.
func (i Install) Check(store *Store) error {
	source, ok := store.Lookup(i.Payload.Source)
	if !ok {
		return newError(KindSourceUnknown, nil)
	}

	if len(i.Payload.Increments) == 0 {
		return newError(KindEmptyIncrements, nil)
	}

	if err := source.VerifyPlurality(i.Certificate, i.Payload); err != nil {
		return newError(KindCertificateInvalid, err)
	}

	return nil
}

// IntoTransition replays the install's increments over its source view,
// returning the resulting Transition. It does not re-validate the
// certificate; callers must Check first.
func (i Install) IntoTransition(store *Store) (Transition, error) {
	source, ok := store.Lookup(i.Payload.Source)
	if !ok {
		return Transition{}, newError(KindSourceUnknown, nil)
	}

	destination := source
	for _, change := range i.Payload.Increments {
		var err error
		destination, err = change.Apply(destination)
		if err != nil {
			return Transition{}, err
		}
	}

	return Transition{
		Source:      source,
		Destination: destination,
		Tailless:    i.Tailless,
	}, nil
}
