// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lattice

import (
	"github.com/luxfi/carbon/crypto"
	"github.com/luxfi/ids"
)

// Disclosure is the signed statement behind a DisclosureSend: "I propose
// this element for this (view, instance)".
type Disclosure struct {
	View     crypto.Hash
	Instance Instance
	Element  Element
}

func (Disclosure) Header() crypto.Header { return crypto.HeaderDisclosure }

func (d Disclosure) Encode() []byte {
	out := append([]byte(nil), d.View[:]...)
	out = append(out, d.Instance[:]...)
	return append(out, d.Element...)
}

func (d Disclosure) id() crypto.Hash { return d.Element.Identifier() }

// MessageKind tags the six message types a runner exchanges: three
// reliable-broadcast types during disclosure and three during
// certification.
type MessageKind uint8

const (
	MessageDisclosureSend MessageKind = iota
	MessageDisclosureEcho
	MessageDisclosureReady
	MessageCertificationRequest
	MessageCertificationConfirmation
	MessageCertificationUpdate
)

// Message is any disclosure or certification message a runner sends or
// receives.
type Message interface {
	Kind() MessageKind
}

// DisclosureSendMessage is the origin's one-time broadcast of its signed
// Disclosure.
type DisclosureSendMessage struct {
	Disclosure Disclosure
	Signature  crypto.Signature
}

func (DisclosureSendMessage) Kind() MessageKind { return MessageDisclosureSend }

// EchoForm distinguishes a brief (digest-only) echo from an expanded
// (full element) echo: a brief echo halves the common-case broadcast
// cost once enough peers already hold the full element.
type EchoForm uint8

const (
	EchoBrief EchoForm = iota
	EchoExpanded
)

// DisclosureEchoMessage is one echo of a disclosure, one per (local,
// origin). An expanded echo carries the origin's own signed
// DisclosureSendMessage rather than a bare digest, so a recipient that
// missed the original Send can still verify the content's authenticity
// against the origin's keycard instead of trusting the echoer.
type DisclosureEchoMessage struct {
	Origin       ids.ID
	DisclosureID crypto.Hash
	Form         EchoForm
	// Send is populated only when Form == EchoExpanded.
	Send DisclosureSendMessage
}

func (DisclosureEchoMessage) Kind() MessageKind { return MessageDisclosureEcho }

// DisclosureReadyMessage signals the sender believes origin's disclosure
// has enough echo support to deliver.
type DisclosureReadyMessage struct {
	Origin       ids.ID
	DisclosureID crypto.Hash
}

func (DisclosureReadyMessage) Kind() MessageKind { return MessageDisclosureReady }
