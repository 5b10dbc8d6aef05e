// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package networkmock

import (
	"testing"

	"github.com/luxfi/carbon/commit"
	"github.com/luxfi/carbon/network"
	"github.com/luxfi/carbon/wire"
	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMockSenderRecordsExpectedCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockSender(ctrl)

	a, b := network.Pipe(ids.GenerateTestID(), ids.GenerateTestID())
	defer b.Close()

	env, err := wire.EncodeCommitResponse(commit.PongMessage{})
	require.NoError(t, err)

	mock.EXPECT().Send(a, env, network.AckStrong).Return(nil)

	require.NoError(t, mock.Send(a, env, network.AckStrong))
}
