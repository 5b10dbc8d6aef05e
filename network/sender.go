// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package network

import (
	"time"

	"github.com/luxfi/carbon/wire"
	"github.com/luxfi/ids"
)

// AckLevel is the acknowledgement level a broadcast aims for: Strong for
// protocol messages that must land, Weak for unicast responses that
// aren't worth retrying.
type AckLevel uint8

const (
	// AckWeak is satisfied by the send itself; no retry is attempted.
	// Unicast responses to a broker use this level.
	AckWeak AckLevel = iota
	// AckStrong is only satisfied once the peer has been observed to
	// acknowledge the message; Sender retries with bounded backoff
	// until then. Protocol messages (Prepares, Commits, ...) use this
	// level.
	AckStrong
)

// Sender is a replica's outbound-session abstraction: a single method
// covering every wire.Envelope a subsystem sends, keyed by AckLevel
// rather than by message type.
type Sender interface {
	// Send delivers env to peer over session, retrying with bounded
	// backoff until level is satisfied or attempts are exhausted.
	Send(session Session, env wire.Envelope, level AckLevel) error
}

// Acknowledged reports whether a peer has acknowledged the most recent
// send sent to it. A Sender's caller supplies this so that what counts
// as an acknowledgement stays a protocol-layer decision (a commit-shard
// reply, a witness shard, ...) rather than something the transport layer
// guesses at.
type Acknowledged func(peer ids.ID) bool

// RetryingSender is the default Sender: it resends at most maxAttempts
// times with exponential backoff starting at baseDelay, stopping early
// once Acknowledged reports the peer has caught up. AckWeak sends are
// attempted exactly once regardless of maxAttempts — a response is not
// worth retrying; the broker will re-request if it never arrives.
type RetryingSender struct {
	maxAttempts int
	baseDelay   time.Duration
	acked       Acknowledged
	sleep       func(time.Duration)
}

// NewRetryingSender builds a RetryingSender. acked reports, for a given
// peer, whether the in-flight send has already been satisfied; sleep
// defaults to time.Sleep when nil (tests pass a no-op to stay fast).
func NewRetryingSender(maxAttempts int, baseDelay time.Duration, acked Acknowledged, sleep func(time.Duration)) *RetryingSender {
	if sleep == nil {
		sleep = time.Sleep
	}
	return &RetryingSender{maxAttempts: maxAttempts, baseDelay: baseDelay, acked: acked, sleep: sleep}
}

// Send implements Sender.
func (s *RetryingSender) Send(session Session, env wire.Envelope, level AckLevel) error {
	attempts := s.maxAttempts
	if level == AckWeak {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if s.acked != nil && s.acked(session.Peer()) {
			return nil
		}
		if err := session.Send(env); err != nil {
			lastErr = err
			if err == ErrSessionClosed {
				return err
			}
		} else {
			lastErr = nil
		}
		if level == AckWeak {
			break
		}
		if attempt < attempts-1 {
			s.sleep(s.baseDelay << uint(attempt))
		}
	}
	return lastErr
}
