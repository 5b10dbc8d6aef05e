// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lattice

import (
	"sort"

	"github.com/luxfi/carbon/crypto"
	"github.com/luxfi/carbon/quorum"
	"github.com/luxfi/carbon/view"
	"github.com/luxfi/ids"
)

// Outbound is a message the runner needs delivered after processing an
// inbound event. To nil means broadcast to every view member; a non-nil
// To targets a single replica (a Confirmation or Update always replies
// directly to the requester).
type Outbound struct {
	To      *ids.ID
	Message Message
}

func broadcast(msg Message) Outbound { return Outbound{Message: msg} }

func reply(to ids.ID, msg Message) Outbound { return Outbound{To: &to, Message: msg} }

// Runner drives one (view, instance) generalized lattice agreement:
// probabilistic reliable broadcast of a single disclosed element, then
// quorum certification of the resulting safe set.
type Runner struct {
	view     view.View
	instance Instance
	identity ids.ID
	secret   *crypto.SecretKey

	db    database
	state State

	// acceptedSet is the certification responder's running union of
	// every element it has locally delivered or accepted from another
	// proposer's request, keyed by origin since a replica discloses at
	// most one element — monotone, never shrinks.
	acceptedSet map[ids.ID]DisclosureSendMessage

	// proposing is non-nil once this runner has itself begun
	// certification; it tracks the in-flight aggregator for the
	// element set most recently proposed.
	proposing *proposal

	decision    *Decision
	certificate Certificate
}

type proposal struct {
	elements   map[ids.ID]DisclosureSendMessage
	hashes     map[crypto.Hash]struct{}
	statement  Decision
	aggregator *quorum.Aggregator
}

// NewRunner creates a runner for instance over v, signing and verifying
// as identity.
func NewRunner(v view.View, instance Instance, identity ids.ID, secret *crypto.SecretKey) *Runner {
	return &Runner{
		view:        v,
		instance:    instance,
		identity:    identity,
		secret:      secret,
		db:          newDatabase(),
		state:       Disclosing,
		acceptedSet: make(map[ids.ID]DisclosureSendMessage),
	}
}

// State reports the runner's current position in Disclosing → Proposing
// → Decided.
func (r *Runner) State() State { return r.state }

// Decision returns the decided element set and its certificate. It
// returns ErrNotDecided before the runner reaches the Decided state.
func (r *Runner) Decision() (Decision, Certificate, error) {
	if r.state != Decided {
		return Decision{}, Certificate{}, ErrNotDecided
	}
	return *r.decision, r.certificate, nil
}

// Propose discloses element via reliable broadcast. A runner discloses
// at most once; a second call returns ErrAlreadyDisclosed.
func (r *Runner) Propose(element Element) ([]Outbound, error) {
	if r.db.disclosure.disclosed {
		return nil, ErrAlreadyDisclosed
	}
	r.db.disclosure.disclosed = true

	disclosure := Disclosure{View: r.view.Identifier(), Instance: r.instance, Element: element}
	send := DisclosureSendMessage{
		Disclosure: disclosure,
		Signature:  crypto.Sign(r.secret, disclosure),
	}

	out := []Outbound{broadcast(send)}
	more, err := r.handleDisclosureSend(r.identity, send)
	if err != nil {
		return nil, err
	}
	return append(out, more...), nil
}

// HandleMessage processes a message received from source, returning any
// messages the runner needs to send in response. A message from outside
// the view is reported as ErrForeignSource so the caller can drop it
// rather than treat it as a session-ending fault.
func (r *Runner) HandleMessage(source ids.ID, msg Message) ([]Outbound, error) {
	if !r.view.Contains(source) {
		return nil, ErrForeignSource
	}

	switch m := msg.(type) {
	case DisclosureSendMessage:
		return r.handleDisclosureSend(source, m)
	case DisclosureEchoMessage:
		return r.handleDisclosureEcho(source, m)
	case DisclosureReadyMessage:
		return r.handleDisclosureReady(source, m)
	case CertificationRequestMessage:
		return r.handleCertificationRequest(source, m)
	case CertificationConfirmationMessage:
		return r.handleCertificationConfirmation(source, m)
	case CertificationUpdateMessage:
		return r.handleCertificationUpdate(source, m)
	default:
		return nil, ErrInvalidMessage
	}
}

// handleDisclosureSend is the first delivery of origin's disclosure,
// whether relayed directly from origin or self-fed by Propose.
func (r *Runner) handleDisclosureSend(origin ids.ID, msg DisclosureSendMessage) ([]Outbound, error) {
	if msg.Disclosure.View != r.view.Identifier() || msg.Disclosure.Instance != r.instance {
		return nil, ErrInvalidMessage
	}
	card, ok := r.view.KeyCard(origin)
	if !ok || !crypto.VerifyStatement(msg.Signature, card.PublicKey(), msg.Disclosure) {
		return nil, ErrInvalidMessage
	}

	id := msg.Disclosure.id()
	key := originDisclosure{Origin: origin, ID: id}
	if _, have := r.db.disclosure.disclosuresReceived[key]; have {
		return nil, nil
	}
	r.db.disclosure.disclosuresReceived[key] = msg

	if _, sent := r.db.disclosure.echoesSent[origin]; sent {
		return nil, nil
	}
	r.db.disclosure.echoesSent[origin] = id

	echo := DisclosureEchoMessage{Origin: origin, DisclosureID: id, Form: EchoBrief}
	out := []Outbound{broadcast(echo)}

	more, err := r.handleDisclosureEcho(r.identity, echo)
	if err != nil {
		return nil, err
	}
	return append(out, more...), nil
}

// handleDisclosureEcho tallies one echo toward origin's disclosure and
// issues a ready once echo support reaches quorum.
func (r *Runner) handleDisclosureEcho(source ids.ID, msg DisclosureEchoMessage) ([]Outbound, error) {
	srcKey := sourceOrigin{Source: source, Origin: msg.Origin}
	if _, have := r.db.disclosure.echoesCollected[srcKey]; have {
		return nil, nil
	}
	r.db.disclosure.echoesCollected[srcKey] = struct{}{}

	odKey := originDisclosure{Origin: msg.Origin, ID: msg.DisclosureID}

	if msg.Form == EchoExpanded {
		if _, have := r.db.disclosure.disclosuresReceived[odKey]; !have {
			if msg.Send.Disclosure.id() != msg.DisclosureID || msg.Send.Disclosure.View != r.view.Identifier() || msg.Send.Disclosure.Instance != r.instance {
				return nil, ErrInvalidMessage
			}
			card, ok := r.view.KeyCard(msg.Origin)
			if ok && crypto.VerifyStatement(msg.Send.Signature, card.PublicKey(), msg.Send.Disclosure) {
				r.db.disclosure.disclosuresReceived[odKey] = msg.Send
			}
		}
	}

	r.db.disclosure.echoSupport[odKey]++

	var out []Outbound

	if r.db.disclosure.echoSupport[odKey] >= r.view.Quorum() {
		if _, sent := r.db.disclosure.readySent[msg.Origin]; !sent {
			ready := DisclosureReadyMessage{Origin: msg.Origin, DisclosureID: msg.DisclosureID}
			r.db.disclosure.readySent[msg.Origin] = struct{}{}
			out = append(out, broadcast(ready))

			more, err := r.handleDisclosureReady(r.identity, ready)
			if err != nil {
				return nil, err
			}
			out = append(out, more...)
		}
	}

	return out, nil
}

// handleDisclosureReady tallies one ready toward origin's disclosure,
// amplifying at plurality and delivering at quorum once the disclosure's
// content is in hand.
func (r *Runner) handleDisclosureReady(source ids.ID, msg DisclosureReadyMessage) ([]Outbound, error) {
	srcKey := sourceOrigin{Source: source, Origin: msg.Origin}
	if _, have := r.db.disclosure.readyCollected[srcKey]; have {
		return nil, nil
	}
	r.db.disclosure.readyCollected[srcKey] = struct{}{}

	odKey := originDisclosure{Origin: msg.Origin, ID: msg.DisclosureID}
	r.db.disclosure.readySupport[odKey]++

	var out []Outbound

	if r.db.disclosure.readySupport[odKey] >= r.view.Plurality() {
		if _, sent := r.db.disclosure.readySent[msg.Origin]; !sent {
			ready := DisclosureReadyMessage{Origin: msg.Origin, DisclosureID: msg.DisclosureID}
			r.db.disclosure.readySent[msg.Origin] = struct{}{}
			out = append(out, broadcast(ready))

			more, err := r.handleDisclosureReady(r.identity, ready)
			if err != nil {
				return nil, err
			}
			out = append(out, more...)
		}
	}

	if r.db.disclosure.readySupport[odKey] >= r.view.Quorum() {
		if _, delivered := r.db.disclosure.disclosuresDelivered[msg.Origin]; !delivered {
			if send, have := r.db.disclosure.disclosuresReceived[odKey]; have {
				r.db.disclosure.disclosuresDelivered[msg.Origin] = msg.DisclosureID
				r.db.safeElements[msg.DisclosureID] = send.Disclosure.Element
				r.acceptedSet[msg.Origin] = send
				out = append(out, r.checkProposingTransition()...)
			}
		}
	}

	return out, nil
}

// checkProposingTransition moves Disclosing → Proposing once this
// replica has delivered a plurality of disclosures, broadcasting its
// first certification request. Disclosing a value is
// optional — a replica that never calls Propose still certifies
// whatever safe set it has observed, so every correct replica reaches a
// decision even if only a subset of them contributed an element.
func (r *Runner) checkProposingTransition() []Outbound {
	if r.state != Disclosing {
		return nil
	}
	if len(r.db.disclosure.disclosuresDelivered) < r.view.Plurality() {
		return nil
	}

	r.state = Proposing
	return r.beginProposal(r.acceptedSetCopy())
}

func (r *Runner) acceptedSetCopy() map[ids.ID]DisclosureSendMessage {
	out := make(map[ids.ID]DisclosureSendMessage, len(r.acceptedSet))
	for origin, send := range r.acceptedSet {
		out[origin] = send
	}
	return out
}

// beginProposal starts (or restarts, after an Update) certification over
// elements, broadcasting a fresh CertificationRequestMessage and
// confirming its own statement immediately.
func (r *Runner) beginProposal(elements map[ids.ID]DisclosureSendMessage) []Outbound {
	hashes := elementHashes(elements)
	statement := Decision{View: r.view.Identifier(), Instance: r.instance, Elements: sortedHashes(hashes)}
	aggregator := quorum.NewAggregator(statement, r.view.PublicKeys(), r.view.Quorum())

	r.proposing = &proposal{elements: elements, hashes: hashes, statement: statement, aggregator: aggregator}

	out := []Outbound{broadcast(CertificationRequestMessage{Elements: elements})}

	ownSig := crypto.Multisign(r.secret, statement)
	if done, err := aggregator.Add(r.identity, ownSig); err == nil && done {
		r.finalizeDecision()
	}

	return out
}

// handleCertificationRequest folds request's elements into the local
// accepted set and replies with a Confirmation (if the local accepted
// set is already covered by the request) or an Update naming what the
// request is missing. The accepted set is unioned unconditionally,
// regardless of which reply is sent.
func (r *Runner) handleCertificationRequest(source ids.ID, msg CertificationRequestMessage) ([]Outbound, error) {
	for origin, send := range msg.Elements {
		card, ok := r.view.KeyCard(origin)
		if !ok {
			return nil, ErrInvalidMessage
		}
		if send.Disclosure.View != r.view.Identifier() || send.Disclosure.Instance != r.instance {
			return nil, ErrInvalidMessage
		}
		if !crypto.VerifyStatement(send.Signature, card.PublicKey(), send.Disclosure) {
			return nil, ErrInvalidMessage
		}
		r.acceptedSet[origin] = send
	}

	requestedHashes := elementHashes(msg.Elements)

	var missing []crypto.Hash
	for _, send := range r.acceptedSet {
		id := send.Disclosure.id()
		if _, ok := requestedHashes[id]; !ok {
			missing = append(missing, id)
		}
	}

	if len(missing) == 0 {
		statement := Decision{View: r.view.Identifier(), Instance: r.instance, Elements: sortedHashes(requestedHashes)}
		sig := crypto.Multisign(r.secret, statement)
		confirmation := CertificationConfirmationMessage{Identifier: identifierOf(requestedHashes), Signature: sig}
		return []Outbound{reply(source, confirmation)}, nil
	}

	sort.Slice(missing, func(i, j int) bool { return missing[i].Compare(missing[j]) < 0 })
	update := CertificationUpdateMessage{Identifier: identifierOf(requestedHashes), Differences: missing}
	return []Outbound{reply(source, update)}, nil
}

// handleCertificationConfirmation adds a Confirmation's signature to the
// in-flight aggregator, finalizing the decision once quorum is reached.
func (r *Runner) handleCertificationConfirmation(source ids.ID, msg CertificationConfirmationMessage) ([]Outbound, error) {
	if r.proposing == nil || msg.Identifier != identifierOf(r.proposing.hashes) {
		return nil, nil
	}

	done, err := r.proposing.aggregator.Add(source, msg.Signature)
	if err != nil {
		if err == quorum.ErrDuplicateSigner {
			return nil, nil
		}
		return nil, ErrInvalidMessage
	}
	if !done {
		return nil, nil
	}

	r.finalizeDecision()
	return nil, nil
}

// handleCertificationUpdate re-proposes the union of the in-flight
// request with the differences a replica reported.
func (r *Runner) handleCertificationUpdate(source ids.ID, msg CertificationUpdateMessage) ([]Outbound, error) {
	if r.proposing == nil || msg.Identifier != identifierOf(r.proposing.hashes) {
		return nil, nil
	}

	elements := r.proposing.elements
	grown := false
	for _, id := range msg.Differences {
		if _, ok := r.proposing.hashes[id]; ok {
			continue
		}
		for origin, send := range r.acceptedSet {
			if send.Disclosure.id() == id {
				if _, already := elements[origin]; !already {
					elements = r.acceptedSetCopy()
				}
				elements[origin] = send
				grown = true
				break
			}
		}
	}
	if !grown {
		return nil, nil
	}

	return r.beginProposal(elements), nil
}

// finalizeDecision aggregates the in-flight proposal into a Certificate
// and transitions the runner into Decided.
func (r *Runner) finalizeDecision() {
	cert, _ := r.proposing.aggregator.Finalize()
	decision := r.proposing.statement
	r.decision = &decision
	r.certificate = cert
	r.state = Decided
	r.proposing = nil
}
