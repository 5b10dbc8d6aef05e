// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package account

import (
	"testing"

	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"
)

func TestEntryEncodeDeterministic(t *testing.T) {
	id := ids.GenerateTestID()
	a := Entry{ID: id, Height: 3}
	b := Entry{ID: id, Height: 3}
	require.Equal(t, a.Encode(), b.Encode())

	c := Entry{ID: id, Height: 4}
	require.NotEqual(t, a.Encode(), c.Encode())
}

func TestOperationIdentifierDistinguishesKind(t *testing.T) {
	recipient := ids.GenerateTestID()
	withdraw := Withdraw{Amount: 10, Recipient: recipient, Slot: 1}

	require.Equal(t, OperationWithdraw, withdraw.Kind())
	require.Equal(t, OperationDeposit, Deposit{}.Kind())
	require.Equal(t, OperationSupport, Support{}.Kind())
	require.Equal(t, OperationAbandon, Abandon{}.Kind())

	// Same kind tag, different payload: identifiers differ.
	other := Withdraw{Amount: 11, Recipient: recipient, Slot: 1}
	require.NotEqual(t, Identifier(withdraw), Identifier(other))

	// Different kind, empty payload: identifiers never collide even
	// though Deposit/Support/Abandon all encode to nil.
	require.NotEqual(t, Identifier(Deposit{}), Identifier(Support{}))
	require.NotEqual(t, Identifier(Support{}), Identifier(Abandon{}))
	require.NotEqual(t, Identifier(Deposit{}), Identifier(Abandon{}))
}
