// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package network

import (
	"testing"
	"time"

	"github.com/luxfi/carbon/commit"
	"github.com/luxfi/carbon/wire"
	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionDeliversInOrder(t *testing.T) {
	replica := ids.GenerateTestID()
	broker := ids.GenerateTestID()
	a, b := Pipe(replica, broker)

	env1, err := wire.EncodeCommitResponse(commit.PongMessage{})
	require.NoError(t, err)
	env2, err := wire.EncodeCommitResponse(commit.MissingCommitProofsMessage{IDs: []ids.ID{ids.GenerateTestID()}})
	require.NoError(t, err)

	require.NoError(t, a.Send(env1))
	require.NoError(t, a.Send(env2))

	got1, err := b.Recv()
	require.NoError(t, err)
	require.Equal(t, env1, got1)

	got2, err := b.Recv()
	require.NoError(t, err)
	require.Equal(t, env2, got2)

	require.Equal(t, broker, a.Peer())
	require.Equal(t, replica, b.Peer())
	require.Len(t, a.Sent(), 2)
}

func TestMemorySessionCloseSignalsPeer(t *testing.T) {
	a, b := Pipe(ids.GenerateTestID(), ids.GenerateTestID())
	require.NoError(t, a.Close())
	require.NoError(t, a.Close())

	_, err := b.Recv()
	require.ErrorIs(t, err, ErrSessionClosed)

	err = a.Send(wire.Envelope{})
	require.ErrorIs(t, err, ErrSessionClosed)
}

func TestMemoryListenerAcceptsOfferedSessions(t *testing.T) {
	l := NewMemoryListener(1)
	a, _ := Pipe(ids.GenerateTestID(), ids.GenerateTestID())
	l.Offer(a)

	got, err := l.Accept()
	require.NoError(t, err)
	require.Equal(t, a, got)

	require.NoError(t, l.Close())
	_, err = l.Accept()
	require.ErrorIs(t, err, ErrSessionClosed)
}

func TestRetryingSenderStopsOnceAcknowledged(t *testing.T) {
	a, b := Pipe(ids.GenerateTestID(), ids.GenerateTestID())
	defer b.Close()

	attempt := 0
	acked := func(ids.ID) bool {
		attempt++
		return attempt > 2 // acknowledged after the second send attempt
	}
	var slept int
	sender := NewRetryingSender(5, time.Millisecond, acked, func(time.Duration) { slept++ })

	env, err := wire.EncodeCommitResponse(commit.PongMessage{})
	require.NoError(t, err)

	require.NoError(t, sender.Send(a, env, AckStrong))
	require.Equal(t, 2, len(a.Sent()))
	require.Equal(t, 2, slept)
}

func TestRetryingSenderWeakLevelSendsOnce(t *testing.T) {
	a, b := Pipe(ids.GenerateTestID(), ids.GenerateTestID())
	defer b.Close()

	sender := NewRetryingSender(5, time.Millisecond, func(ids.ID) bool { return false }, func(time.Duration) {
		t.Fatal("AckWeak must not sleep/retry")
	})

	env, err := wire.EncodeCommitResponse(commit.PongMessage{})
	require.NoError(t, err)

	require.NoError(t, sender.Send(a, env, AckWeak))
	require.Len(t, a.Sent(), 1)
}

func TestRetryingSenderPropagatesClosedSession(t *testing.T) {
	a, b := Pipe(ids.GenerateTestID(), ids.GenerateTestID())
	require.NoError(t, a.Close())
	_ = b

	sender := NewRetryingSender(3, time.Millisecond, func(ids.ID) bool { return false }, func(time.Duration) {})
	env, err := wire.EncodeCommitResponse(commit.PongMessage{})
	require.NoError(t, err)

	err = sender.Send(a, env, AckStrong)
	require.ErrorIs(t, err, ErrSessionClosed)
}
