// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package signup

import (
	"testing"

	"github.com/luxfi/carbon/crypto"
	"github.com/luxfi/carbon/quorum"
	"github.com/luxfi/carbon/view"
	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"
)

type committeeMember struct {
	identity ids.ID
	secret   *crypto.SecretKey
}

func newCommittee(t *testing.T, n int) ([]committeeMember, view.View) {
	t.Helper()

	members := make([]committeeMember, n)
	cards := make(map[ids.ID]crypto.KeyCard, n)
	for i := range members {
		sk, err := crypto.GenerateSecretKey()
		require.NoError(t, err)

		identity := ids.GenerateTestID()
		members[i] = committeeMember{identity: identity, secret: sk}
		cards[identity] = crypto.NewKeyCard(identity, sk.PublicKey())
	}
	return members, view.Genesis(cards)
}

func TestRequestValidate(t *testing.T) {
	members, v := newCommittee(t, 4)
	store := view.NewStore(v)

	client, err := crypto.GenerateSecretKey()
	require.NoError(t, err)

	req := NewRequest(client, v, members[0].identity)
	require.NoError(t, req.Validate(store))
	require.Equal(t, v.Identifier(), req.View())
	require.Equal(t, members[0].identity, req.Allocator())
}

func TestRequestValidateRejectsUnknownView(t *testing.T) {
	members, v := newCommittee(t, 4)
	store := view.NewStore(view.Genesis(map[ids.ID]crypto.KeyCard{}))

	client, err := crypto.GenerateSecretKey()
	require.NoError(t, err)

	req := NewRequest(client, v, members[0].identity)
	require.ErrorIs(t, req.Validate(store), ErrUnknownView)
}

func TestRequestValidateRejectsForeignAllocator(t *testing.T) {
	_, v := newCommittee(t, 4)
	store := view.NewStore(v)

	client, err := crypto.GenerateSecretKey()
	require.NoError(t, err)

	req := NewRequest(client, v, ids.GenerateTestID())
	require.ErrorIs(t, req.Validate(store), ErrForeignAllocator)
}

func TestClaimValidate(t *testing.T) {
	_, v := newCommittee(t, 4)

	client, err := crypto.GenerateSecretKey()
	require.NoError(t, err)

	claim := NewClaim(client, v.Identifier(), ids.GenerateTestID())
	require.NoError(t, claim.Validate())
	require.Equal(t, v.Identifier(), claim.View())
}

func TestAssignmentCertifiesAtQuorum(t *testing.T) {
	members, v := newCommittee(t, 4)

	client, err := crypto.GenerateSecretKey()
	require.NoError(t, err)
	accountID := ids.GenerateTestID()

	claim := NewClaim(client, v.Identifier(), accountID)
	require.NoError(t, claim.Validate())

	statement, _ := Certify(members[0].secret, claim)
	aggregator := quorum.NewAggregator(statement, v.PublicKeys(), v.Quorum())

	var done bool
	for _, m := range members {
		_, sig := Certify(m.secret, claim)
		var err error
		done, err = aggregator.Add(m.identity, sig)
		require.NoError(t, err)
	}
	require.True(t, done)

	cert, ok := aggregator.Finalize()
	require.True(t, ok)

	assignment := Assignment{Statement: statement, Certificate: cert}
	require.NoError(t, assignment.Verify(v.PublicKeys(), v.Quorum()))
	require.Equal(t, accountID, assignment.Statement.ID)
	require.Equal(t, claim.ClientCard(), assignment.Statement.Client)
	require.Equal(t, claim.Client(), assignment.Statement.Client.Identity())
}
