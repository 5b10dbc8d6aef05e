// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prepare

import (
	"testing"

	"github.com/luxfi/carbon/crypto"
	"github.com/luxfi/carbon/view"
	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"
)

func TestRequestValidateAcceptsWellFormedRequest(t *testing.T) {
	members, v := newCommittee(t, 4)
	store := view.NewStore(v)

	client, err := crypto.GenerateSecretKey()
	require.NoError(t, err)

	id := ids.GenerateTestID()
	assignment := newAssignment(t, client, v, id, members)

	req := NewRequest(client, assignment, 1, crypto.HashOf([]byte("a")))
	require.NoError(t, req.Validate(store))
}

func TestRequestValidateRejectsUnknownView(t *testing.T) {
	members, v := newCommittee(t, 4)
	store := view.NewStore(view.Genesis(map[ids.ID]crypto.KeyCard{}))

	client, err := crypto.GenerateSecretKey()
	require.NoError(t, err)

	id := ids.GenerateTestID()
	assignment := newAssignment(t, client, v, id, members)

	req := NewRequest(client, assignment, 1, crypto.HashOf([]byte("a")))
	require.ErrorIs(t, req.Validate(store), ErrRequestAssignmentInvalid)
}
