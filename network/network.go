// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package network defines the transport boundary a replica talks to:
// real TCP/plaintext framing, session multiplexing, and peer discovery
// are all external collaborators. What this package owns is the narrow
// interface a replica subsystem needs against that boundary — a Session
// that carries one peer's ordered stream of wire.Envelopes, and a
// Listener that accepts them — keeping the send-side surface to a
// handful of narrow methods rather than exposing raw sockets.
package network

import (
	"errors"

	"github.com/luxfi/carbon/wire"
	"github.com/luxfi/ids"
)

// ErrSessionClosed is returned by Send/Recv once a Session has been
// closed, and by Listener.Accept once the listener has been closed.
var ErrSessionClosed = errors.New("network: session closed")

// Session is one framed, ordered connection to a broker or peer replica.
// Delivery order from a single origin is preserved by the session layer;
// Session makes no promise about ordering across distinct Sessions, and
// a session-level transport failure is always handled by closing the
// Session, never by retrying in place.
type Session interface {
	// Peer identifies who is on the other end of the session.
	Peer() ids.ID

	// Send frames and writes one Envelope. Send does not block waiting
	// for a reply; the reply, if any, arrives via a later Recv.
	Send(env wire.Envelope) error

	// Recv blocks until the next Envelope arrives, the session is
	// closed, or the peer errors.
	Recv() (wire.Envelope, error)

	// Close ends the session. Close is idempotent.
	Close() error
}

// Listener accepts inbound Sessions. Discovery of which addresses to
// listen on, or which peers will connect, is a separate rendezvous
// service's job; Listener only covers the accept loop a replica runs
// once a connection has already been established.
type Listener interface {
	Accept() (Session, error)
	Close() error
}
