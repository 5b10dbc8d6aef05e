// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package quorum

import (
	"testing"

	"github.com/luxfi/carbon/crypto"
	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"
)

type fakeStatement struct {
	payload []byte
}

func (fakeStatement) Header() crypto.Header { return crypto.HeaderWitness }
func (s fakeStatement) Encode() []byte      { return s.payload }

func newCommittee(t *testing.T, n int) (map[ids.ID]crypto.PublicKey, map[ids.ID]*crypto.SecretKey) {
	t.Helper()

	members := make(map[ids.ID]crypto.PublicKey, n)
	secrets := make(map[ids.ID]*crypto.SecretKey, n)

	for i := 0; i < n; i++ {
		sk, err := crypto.GenerateSecretKey()
		require.NoError(t, err)

		identity := ids.GenerateTestID()
		members[identity] = sk.PublicKey()
		secrets[identity] = sk
	}

	return members, secrets
}

func TestAggregatorFinalizesAtThreshold(t *testing.T) {
	members, secrets := newCommittee(t, 4)
	threshold := Quorum(len(members))

	statement := fakeStatement{payload: []byte("carbon-witness")}
	agg := NewAggregator(statement, members, threshold)

	var ready bool
	i := 0
	for signer, sk := range secrets {
		sig := crypto.Multisign(sk, statement)
		var err error
		ready, err = agg.Add(signer, sig)
		require.NoError(t, err)

		i++
		if i < threshold {
			require.False(t, ready)
			require.False(t, agg.Ready())
		}
	}

	require.True(t, ready)
	require.True(t, agg.Ready())
	require.Equal(t, threshold, agg.Count())

	cert, ok := agg.Finalize()
	require.True(t, ok)
	require.Len(t, cert.Signers, threshold)
	require.NoError(t, cert.VerifyQuorum(members, statement))
}

func TestAggregatorRejectsUnknownSigner(t *testing.T) {
	members, _ := newCommittee(t, 4)
	statement := fakeStatement{payload: []byte("carbon-witness")}
	agg := NewAggregator(statement, members, Quorum(len(members)))

	sk, err := crypto.GenerateSecretKey()
	require.NoError(t, err)

	_, err = agg.Add(ids.GenerateTestID(), crypto.Multisign(sk, statement))
	require.ErrorIs(t, err, ErrUnknownSigner)
}

func TestAggregatorRejectsDuplicateSigner(t *testing.T) {
	members, secrets := newCommittee(t, 4)
	statement := fakeStatement{payload: []byte("carbon-witness")}
	agg := NewAggregator(statement, members, Quorum(len(members)))

	var signer ids.ID
	var sk *crypto.SecretKey
	for id, k := range secrets {
		signer, sk = id, k
		break
	}

	_, err := agg.Add(signer, crypto.Multisign(sk, statement))
	require.NoError(t, err)

	_, err = agg.Add(signer, crypto.Multisign(sk, statement))
	require.ErrorIs(t, err, ErrDuplicateSigner)
}

func TestCertificateVerifyRejectsShortfall(t *testing.T) {
	members, secrets := newCommittee(t, 4)
	statement := fakeStatement{payload: []byte("carbon-witness")}

	var sigs []crypto.Signature
	var signers []ids.ID
	for id, sk := range secrets {
		sigs = append(sigs, crypto.Multisign(sk, statement))
		signers = append(signers, id)
		if len(signers) == Plurality(len(members)) {
			break
		}
	}

	cert := Certificate{Signers: signers, Signature: crypto.Aggregate(sigs...)}

	require.NoError(t, cert.VerifyPlurality(members, statement))
	require.ErrorIs(t, cert.VerifyQuorum(members, statement), ErrCertificateInvalid)
}

func TestCertificateVerifyRejectsUnknownSigner(t *testing.T) {
	members, secrets := newCommittee(t, 4)
	statement := fakeStatement{payload: []byte("carbon-witness")}

	var sigs []crypto.Signature
	var signers []ids.ID
	for id, sk := range secrets {
		sigs = append(sigs, crypto.Multisign(sk, statement))
		signers = append(signers, id)
	}
	// Swap in an outsider in place of a genuine member.
	signers[0] = ids.GenerateTestID()

	cert := Certificate{Signers: signers, Signature: crypto.Aggregate(sigs...)}
	require.ErrorIs(t, cert.VerifyQuorum(members, statement), ErrCertificateInvalid)
}
