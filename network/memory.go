// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package network

import (
	"sync"

	"github.com/luxfi/carbon/wire"
	"github.com/luxfi/ids"
)

// MemorySession is an in-memory Session backed by a channel, grounded on
// networking/sender/sendermock.MockSender's record-and-replay pattern.
// Two MemorySessions wired together with Pipe form a full-duplex, in
// process stand-in for a real transport connection.
type MemorySession struct {
	peer ids.ID
	out  chan<- wire.Envelope
	in   <-chan wire.Envelope

	mu     sync.Mutex
	closed bool
	sent   []wire.Envelope
}

// Pipe returns two MemorySessions, each seeing the other as its peer: a
// Send on one is delivered to the other's Recv.
func Pipe(local, remote ids.ID) (*MemorySession, *MemorySession) {
	const buffer = 64
	ab := make(chan wire.Envelope, buffer)
	ba := make(chan wire.Envelope, buffer)

	a := &MemorySession{peer: remote, out: ab, in: ba}
	b := &MemorySession{peer: local, out: ba, in: ab}
	return a, b
}

// Peer implements Session.
func (s *MemorySession) Peer() ids.ID { return s.peer }

// Send implements Session.
func (s *MemorySession) Send(env wire.Envelope) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	s.sent = append(s.sent, env)
	s.mu.Unlock()

	s.out <- env
	return nil
}

// Recv implements Session.
func (s *MemorySession) Recv() (wire.Envelope, error) {
	env, ok := <-s.in
	if !ok {
		return wire.Envelope{}, ErrSessionClosed
	}
	return env, nil
}

// Close implements Session. Close is idempotent and only closes this
// session's outbound channel, so the peer's Recv observes ErrSessionClosed
// without a data race on the shared channel.
func (s *MemorySession) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	close(s.out)
	return nil
}

// Sent returns every Envelope this session has sent, in order — the
// MockSender.GetSentMessages equivalent for tests that assert on what a
// replica broadcast rather than how a mock peer responded.
func (s *MemorySession) Sent() []wire.Envelope {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]wire.Envelope, len(s.sent))
	copy(out, s.sent)
	return out
}

// MemoryListener is an in-memory Listener fed by Offer, for tests that
// drive a replica's accept loop without a real socket.
type MemoryListener struct {
	mu      sync.Mutex
	pending chan Session
	closed  bool
}

// NewMemoryListener builds a MemoryListener with the given backlog.
func NewMemoryListener(backlog int) *MemoryListener {
	return &MemoryListener{pending: make(chan Session, backlog)}
}

// Offer enqueues a Session for the next Accept call.
func (l *MemoryListener) Offer(s Session) {
	l.pending <- s
}

// Accept implements Listener.
func (l *MemoryListener) Accept() (Session, error) {
	s, ok := <-l.pending
	if !ok {
		return nil, ErrSessionClosed
	}
	return s, nil
}

// Close implements Listener. Close is idempotent.
func (l *MemoryListener) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil
	}
	l.closed = true
	close(l.pending)
	return nil
}
