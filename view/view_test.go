// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package view

import (
	"testing"

	"github.com/luxfi/carbon/crypto"
	"github.com/luxfi/carbon/quorum"
	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"
)

func certificateOf(signers []ids.ID, sigs []crypto.Signature) quorum.Certificate {
	return quorum.Certificate{Signers: signers, Signature: crypto.Aggregate(sigs...)}
}

type member struct {
	identity ids.ID
	secret   *crypto.SecretKey
	card     crypto.KeyCard
}

func newMembers(t *testing.T, n int) []member {
	t.Helper()

	members := make([]member, n)
	for i := range members {
		sk, err := crypto.GenerateSecretKey()
		require.NoError(t, err)

		identity := ids.GenerateTestID()
		members[i] = member{
			identity: identity,
			secret:   sk,
			card:     crypto.NewKeyCard(identity, sk.PublicKey()),
		}
	}
	return members
}

func genesisView(t *testing.T, members []member) View {
	t.Helper()

	set := make(map[ids.ID]crypto.KeyCard, len(members))
	for _, m := range members {
		set[m.identity] = m.card
	}
	return Genesis(set)
}

func TestViewIdentifierStableUnderMapOrder(t *testing.T) {
	members := newMembers(t, 4)
	a := genesisView(t, members)
	b := genesisView(t, members)

	require.Equal(t, a.Identifier(), b.Identifier())
	require.Equal(t, 4, a.Quorum()) // n=4 -> quorum=4
	require.Equal(t, 2, a.Plurality())
}

func TestChangeAddProducesDistinctView(t *testing.T) {
	members := newMembers(t, 4)
	base := genesisView(t, members)

	newcomer := newMembers(t, 1)[0]
	change := Change{Kind: ChangeAdd, Identity: newcomer.identity, KeyCard: newcomer.card}

	next, err := change.Apply(base)
	require.NoError(t, err)
	require.Equal(t, base.Height()+1, next.Height())
	require.NotEqual(t, base.Identifier(), next.Identifier())
	require.True(t, next.Contains(newcomer.identity))
}

func TestChangeAddRejectsExistingMember(t *testing.T) {
	members := newMembers(t, 4)
	base := genesisView(t, members)

	change := Change{Kind: ChangeAdd, Identity: members[0].identity, KeyCard: members[0].card}
	_, err := change.Apply(base)
	require.Error(t, err)

	var verr *Error
	require.ErrorAs(t, err, &verr)
	require.Equal(t, KindChangeInvalid, verr.Kind)
}

func TestChangeRemoveRejectsUnknownMember(t *testing.T) {
	members := newMembers(t, 4)
	base := genesisView(t, members)

	outsider := newMembers(t, 1)[0]
	change := Change{Kind: ChangeRemove, Identity: outsider.identity}
	_, err := change.Apply(base)
	require.Error(t, err)

	var verr *Error
	require.ErrorAs(t, err, &verr)
	require.Equal(t, KindChangeInvalid, verr.Kind)
}

// TestInstallCheckSourceUnknown is scenario S5: an Install whose source
// view is not registered fails with SourceUnknown, with no crash and no
// state change.
func TestInstallCheckSourceUnknown(t *testing.T) {
	members := newMembers(t, 4)
	genesis := genesisView(t, members)
	store := NewStore(genesis)

	unregistered := genesisView(t, newMembers(t, 4))
	newcomer := newMembers(t, 1)[0]

	install := Install{
		Payload: InstallPayload{
			Source:     unregistered.Identifier(),
			Increments: []Change{{Kind: ChangeAdd, Identity: newcomer.identity, KeyCard: newcomer.card}},
		},
	}

	err := install.Check(store)
	require.Error(t, err)

	var verr *Error
	require.ErrorAs(t, err, &verr)
	require.Equal(t, KindSourceUnknown, verr.Kind)

	// No state change: the store still only knows genesis.
	_, ok := store.Lookup(unregistered.Identifier())
	require.False(t, ok)
}

func TestInstallCheckAndTransition(t *testing.T) {
	members := newMembers(t, 4)
	genesis := genesisView(t, members)
	store := NewStore(genesis)

	newcomer := newMembers(t, 1)[0]
	change := Change{Kind: ChangeAdd, Identity: newcomer.identity, KeyCard: newcomer.card}

	payload := InstallPayload{Source: genesis.Identifier(), Increments: []Change{change}}

	var sigs []crypto.Signature
	var signers []ids.ID
	for _, m := range members[:genesis.Plurality()] {
		sigs = append(sigs, crypto.Multisign(m.secret, payload))
		signers = append(signers, m.identity)
	}

	install := Install{
		Payload:     payload,
		Certificate: certificateOf(signers, sigs),
		Tailless:    true,
	}

	require.NoError(t, install.Check(store))

	transition, err := install.IntoTransition(store)
	require.NoError(t, err)
	require.Equal(t, genesis.Identifier(), transition.Source.Identifier())
	require.Equal(t, genesis.Height()+1, transition.Destination.Height())
	require.True(t, transition.Tailless)
	require.True(t, transition.Destination.Contains(newcomer.identity))

	store.Register(transition.Destination)
	got, ok := store.Lookup(transition.Destination.Identifier())
	require.True(t, ok)
	require.Equal(t, transition.Destination.Identifier(), got.Identifier())
}

func TestResolutionValidate(t *testing.T) {
	members := newMembers(t, 4)
	genesis := genesisView(t, members)
	store := NewStore(genesis)

	outsider := newMembers(t, 1)[0]
	change := Change{Kind: ChangeAdd, Identity: outsider.identity, KeyCard: outsider.card}
	statement := ResolutionStatement{View: genesis.Identifier(), Change: change}

	var sigs []crypto.Signature
	var signers []ids.ID
	for _, m := range members {
		sigs = append(sigs, crypto.Multisign(m.secret, statement))
		signers = append(signers, m.identity)
	}

	resolution := Resolution{Claim: ResolutionClaim{
		Statement:   statement,
		Certificate: certificateOf(signers, sigs),
	}}

	require.NoError(t, resolution.Validate(store, ThresholdQuorum))
}

func TestResolutionValidateUnknownView(t *testing.T) {
	members := newMembers(t, 4)
	genesis := genesisView(t, members)
	store := NewStore(genesis)

	unregistered := genesisView(t, newMembers(t, 4))
	statement := ResolutionStatement{View: unregistered.Identifier()}
	resolution := Resolution{Claim: ResolutionClaim{Statement: statement}}

	err := resolution.Validate(store, ThresholdQuorum)
	require.Error(t, err)

	var verr *Error
	require.ErrorAs(t, err, &verr)
	require.Equal(t, KindViewUnknown, verr.Kind)
}
