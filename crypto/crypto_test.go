// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import (
	"encoding/json"
	"testing"

	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"
)

type testStatement struct {
	value []byte
}

func (s testStatement) Header() Header { return HeaderPrepare }
func (s testStatement) Encode() []byte { return s.value }

func TestSignVerifyStatementRoundTrip(t *testing.T) {
	sk, err := GenerateSecretKey()
	require.NoError(t, err)

	stmt := testStatement{value: []byte("batch-root")}
	sig := Sign(sk, stmt)

	require.True(t, VerifyStatement(sig, sk.PublicKey(), stmt))
}

func TestAggregateRejectsMismatchedSignerCount(t *testing.T) {
	sk1, err := GenerateSecretKey()
	require.NoError(t, err)
	sk2, err := GenerateSecretKey()
	require.NoError(t, err)

	stmt := testStatement{value: []byte("witness")}
	sig1 := Multisign(sk1, stmt)
	sig2 := Multisign(sk2, stmt)

	agg := Aggregate(sig1, sig2)
	signers := []PublicKey{sk1.PublicKey(), sk2.PublicKey()}

	require.True(t, VerifyMultiStatement(agg, signers, stmt))
	require.False(t, VerifyMultiStatement(agg, signers[:1], stmt))
}

func TestPublicKeyJSONRoundTrip(t *testing.T) {
	sk, err := GenerateSecretKey()
	require.NoError(t, err)
	pk := sk.PublicKey()

	data, err := json.Marshal(pk)
	require.NoError(t, err)

	var decoded PublicKey
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, pk.Bytes(), decoded.Bytes())
}

func TestSignatureJSONRoundTrip(t *testing.T) {
	sk, err := GenerateSecretKey()
	require.NoError(t, err)
	sig := sk.Sign([]byte("payload"))

	data, err := json.Marshal(sig)
	require.NoError(t, err)

	var decoded Signature
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, sig.Bytes(), decoded.Bytes())
}

func TestMultiSignatureJSONRoundTripPreservesSignerCount(t *testing.T) {
	sk1, err := GenerateSecretKey()
	require.NoError(t, err)
	sk2, err := GenerateSecretKey()
	require.NoError(t, err)

	agg := Aggregate(sk1.Sign([]byte("a")), sk2.Sign([]byte("a")))

	data, err := json.Marshal(agg)
	require.NoError(t, err)

	var decoded MultiSignature
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, agg.Bytes(), decoded.Bytes())
	require.True(t, decoded.Verify([]PublicKey{sk1.PublicKey(), sk2.PublicKey()}, []byte("a")))
}

func TestKeyCardJSONRoundTrip(t *testing.T) {
	sk, err := GenerateSecretKey()
	require.NoError(t, err)
	identity := ids.GenerateTestID()
	kc := NewKeyCard(identity, sk.PublicKey())

	data, err := json.Marshal(kc)
	require.NoError(t, err)

	var decoded KeyCard
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, kc.Identity(), decoded.Identity())
	require.Equal(t, kc.PublicKey().Bytes(), decoded.PublicKey().Bytes())
}

func TestHashOfIsDeterministic(t *testing.T) {
	require.Equal(t, HashOf([]byte("a")), HashOf([]byte("a")))
	require.NotEqual(t, HashOf([]byte("a")), HashOf([]byte("b")))
}
