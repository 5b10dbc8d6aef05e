// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prepare

import (
	"testing"

	"github.com/luxfi/carbon/account"
	"github.com/luxfi/carbon/crypto"
	"github.com/luxfi/carbon/quorum"
	"github.com/luxfi/carbon/signup"
	"github.com/luxfi/carbon/view"
	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"
)

// newAssignment certifies id to client at quorum across members, the way
// a real sign-up flow would before the client ever prepares anything.
func newAssignment(t *testing.T, client *crypto.SecretKey, v view.View, id account.ID, members []member) signup.Assignment {
	t.Helper()

	claim := signup.NewClaim(client, v.Identifier(), id)
	require.NoError(t, claim.Validate())

	statement, _ := signup.Certify(members[0].secret, claim)
	aggregator := quorum.NewAggregator(statement, v.PublicKeys(), v.Quorum())

	var cert quorum.Certificate
	for _, m := range members {
		_, sig := signup.Certify(m.secret, claim)
		done, err := aggregator.Add(m.identity, sig)
		require.NoError(t, err)
		if done {
			var ok bool
			cert, ok = aggregator.Finalize()
			require.True(t, ok)
			break
		}
	}

	return signup.Assignment{Statement: statement, Certificate: cert}
}

func TestSignedBatchSortedDetectsOutOfOrder(t *testing.T) {
	a := Prepare{ID: ids.GenerateTestID(), Height: 1, Commitment: crypto.HashOf([]byte("a"))}
	b := Prepare{ID: ids.GenerateTestID(), Height: 1, Commitment: crypto.HashOf([]byte("b"))}

	sorted := []Prepare{a, b}
	if a.ID.Compare(b.ID) > 0 {
		sorted = []Prepare{b, a}
	}
	batch := SignedBatch{Prepares: sorted}
	require.True(t, batch.Sorted())

	unsorted := SignedBatch{Prepares: []Prepare{sorted[1], sorted[0]}}
	require.False(t, unsorted.Sorted())
}

func TestSignedBatchIntoWitnessedPreservesRoot(t *testing.T) {
	members, v := newCommittee(t, 4)
	prepares := samplePrepares(3)

	signed := SignedBatch{Prepares: prepares}
	root, err := signed.Root()
	require.NoError(t, err)

	statement := WitnessStatement{Root: root}
	aggregator := quorum.NewAggregator(statement, v.PublicKeys(), v.Plurality())

	var cert quorum.Certificate
	for _, m := range members {
		sig := crypto.Multisign(m.secret, statement)
		done, err := aggregator.Add(m.identity, sig)
		require.NoError(t, err)
		if done {
			var ok bool
			cert, ok = aggregator.Finalize()
			require.True(t, ok)
			break
		}
	}

	witnessed := signed.IntoWitnessed(v.Identifier(), cert)
	require.Equal(t, root, witnessed.Root())
}

func TestSignedBatchVerifyIndividualAndReductionSignatures(t *testing.T) {
	members, v := newCommittee(t, 4)

	clientA, err := crypto.GenerateSecretKey()
	require.NoError(t, err)
	clientB, err := crypto.GenerateSecretKey()
	require.NoError(t, err)

	idA, idB := ids.GenerateTestID(), ids.GenerateTestID()
	if idA.Compare(idB) > 0 {
		idA, idB = idB, idA
		clientA, clientB = clientB, clientA
	}

	assignmentA := newAssignment(t, clientA, v, idA, members)
	assignmentB := newAssignment(t, clientB, v, idB, members)

	reqA := NewRequest(clientA, assignmentA, 1, crypto.HashOf([]byte("a")))
	reqB := NewRequest(clientB, assignmentB, 1, crypto.HashOf([]byte("b")))

	prepares := []Prepare{reqA.Prepare, reqB.Prepare}

	// A is signed individually; B is folded into the reduction signature.
	batch := SignedBatch{
		Prepares:             prepares,
		IndividualSignatures: []*crypto.Signature{&reqA.Signature, nil},
		ReductionSignature:   crypto.Aggregate(reqB.Signature),
	}

	assignments := map[account.ID]signup.Assignment{idA: assignmentA, idB: assignmentB}
	require.NoError(t, batch.Verify(assignments))
}

func TestSignedBatchVerifyReportsEveryStructuralDefect(t *testing.T) {
	members, v := newCommittee(t, 4)

	clientA, err := crypto.GenerateSecretKey()
	require.NoError(t, err)
	clientB, err := crypto.GenerateSecretKey()
	require.NoError(t, err)

	idA, idB := ids.GenerateTestID(), ids.GenerateTestID()
	if idA.Compare(idB) > 0 {
		idA, idB = idB, idA
		clientA, clientB = clientB, clientA
	}

	assignmentA := newAssignment(t, clientA, v, idA, members)

	reqA := NewRequest(clientA, assignmentA, 1, crypto.HashOf([]byte("a")))
	prepB := Prepare{ID: idB, Height: 1, Commitment: crypto.HashOf([]byte("b"))}
	reqB := Request{Prepare: prepB, Signature: crypto.Sign(clientB, prepB)}

	// Out of order, and idB has no assignment at all: two independent
	// structural defects that a single early return would only surface
	// one at a time.
	batch := SignedBatch{
		Prepares:             []Prepare{reqB.Prepare, reqA.Prepare},
		IndividualSignatures: []*crypto.Signature{&reqB.Signature, &reqA.Signature},
	}

	assignments := map[account.ID]signup.Assignment{idA: assignmentA}
	err = batch.Verify(assignments)
	require.Error(t, err)
	require.Contains(t, err.Error(), "2 errors occurred")
}
