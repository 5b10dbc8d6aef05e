// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package networkmock provides a gomock-style mock of network.Sender, in
// the shape mockgen would generate for it — grounded on
// validator/validatorsmock's NewState/ctrl/recorder/EXPECT() convention,
// hand-written here since this module runs no code-generation step.
package networkmock

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"

	"github.com/luxfi/carbon/network"
	"github.com/luxfi/carbon/wire"
)

// MockSender is a mock of the network.Sender interface.
type MockSender struct {
	ctrl     *gomock.Controller
	recorder *MockSenderMockRecorder
}

// MockSenderMockRecorder is the mock recorder for MockSender.
type MockSenderMockRecorder struct {
	mock *MockSender
}

// NewMockSender builds a new mock instance.
func NewMockSender(ctrl *gomock.Controller) *MockSender {
	mock := &MockSender{ctrl: ctrl}
	mock.recorder = &MockSenderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSender) EXPECT() *MockSenderMockRecorder {
	return m.recorder
}

// Send mocks network.Sender's Send method.
func (m *MockSender) Send(session network.Session, env wire.Envelope, level network.AckLevel) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Send", session, env, level)
	ret0, _ := ret[0].(error)
	return ret0
}

// Send indicates an expected call of Send.
func (mr *MockSenderMockRecorder) Send(session, env, level interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Send", reflect.TypeOf((*network.Sender)(nil).Send), session, env, level)
}
