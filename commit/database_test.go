// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commit

import (
	"testing"

	"github.com/luxfi/carbon/account"
	"github.com/luxfi/carbon/crypto"
	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"
)

func TestDatabaseApplyOrdersByIDThenHeight(t *testing.T) {
	db := NewDatabase()

	idA := ids.GenerateTestID()
	payload1 := Payload{Entry: account.Entry{ID: idA, Height: 1}, Operation: account.Support{}}
	payload2 := Payload{Entry: account.Entry{ID: idA, Height: 2}, Operation: account.Support{}}

	// Submitted out of order; Apply must sort before applying.
	commits := []Commit{
		{Payload: payload2},
		{Payload: payload1},
	}

	applied, missing, err := db.Apply(commits, nil)
	require.NoError(t, err)
	require.Empty(t, missing)
	require.Equal(t, []Payload{payload1, payload2}, applied)
	require.Equal(t, uint64(2), db.Applied[idA])
}

func TestDatabaseApplyRejectsOutOfOrderHeight(t *testing.T) {
	db := NewDatabase()

	id := ids.GenerateTestID()
	// Height 2 with nothing applied at height 1 yet.
	commits := []Commit{{Payload: Payload{Entry: account.Entry{ID: id, Height: 2}, Operation: account.Support{}}}}

	_, _, err := db.Apply(commits, nil)
	require.ErrorIs(t, err, ErrCommitOutOfOrder)
}

func TestDatabaseApplyResolvesDependency(t *testing.T) {
	db := NewDatabase()

	withdrawer := ids.GenerateTestID()
	recipient := ids.GenerateTestID()

	withdrawEntry := account.Entry{ID: withdrawer, Height: 1}
	withdraw := Payload{
		Entry:     withdrawEntry,
		Operation: account.Withdraw{Amount: 10, Recipient: recipient, Slot: 1},
	}

	deposit := Payload{
		Entry:      account.Entry{ID: recipient, Height: 1},
		Operation:  account.Deposit{},
		Dependency: &Dependency{Entry: withdrawEntry},
	}

	completedWithdraw := Completion{Payload: withdraw}
	dependencies := map[account.ID]Completion{withdrawer: completedWithdraw}

	applied, missing, err := db.Apply([]Commit{{Payload: deposit}}, dependencies)
	require.NoError(t, err)
	require.Empty(t, missing)
	require.Equal(t, []Payload{deposit}, applied)
}

func TestDatabaseApplyReportsMissingDependency(t *testing.T) {
	db := NewDatabase()

	withdrawer := ids.GenerateTestID()
	recipient := ids.GenerateTestID()
	withdrawEntry := account.Entry{ID: withdrawer, Height: 1}

	deposit := Payload{
		Entry:      account.Entry{ID: recipient, Height: 1},
		Operation:  account.Deposit{},
		Dependency: &Dependency{Entry: withdrawEntry},
	}

	applied, missing, err := db.Apply([]Commit{{Payload: deposit}}, nil)
	require.NoError(t, err)
	require.Empty(t, applied)
	require.Equal(t, []account.Entry{deposit.Entry}, missing)
}

func TestDatabaseApplyRejectsMismatchedDependency(t *testing.T) {
	db := NewDatabase()

	withdrawer := ids.GenerateTestID()
	recipient := ids.GenerateTestID()
	withdrawEntry := account.Entry{ID: withdrawer, Height: 1}

	deposit := Payload{
		Entry:      account.Entry{ID: recipient, Height: 1},
		Operation:  account.Deposit{},
		Dependency: &Dependency{Entry: withdrawEntry},
	}

	mismatched := Completion{Payload: Payload{Entry: account.Entry{ID: withdrawer, Height: 2}}}
	dependencies := map[account.ID]Completion{withdrawer: mismatched}

	_, _, err := db.Apply([]Commit{{Payload: deposit}}, dependencies)
	require.ErrorIs(t, err, ErrCommitDependencyMismatch)
}

func TestNewMissingDependencyShardSignsStatement(t *testing.T) {
	sk, err := crypto.GenerateSecretKey()
	require.NoError(t, err)

	view := crypto.HashOf([]byte("view"))
	entry := account.Entry{ID: ids.GenerateTestID(), Height: 1}

	sig := NewMissingDependencyShard(sk, view, entry)

	statement := MissingDependencyStatement{View: view, Entry: crypto.HashOf(entry.Encode())}
	require.True(t, crypto.VerifyStatement(sig, sk.PublicKey(), statement))
}
