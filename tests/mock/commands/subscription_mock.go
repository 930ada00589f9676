// Code generated by MockGen. DO NOT EDIT.
// Source: subscription.go
//
// Generated by this command:
//
//	mockgen -source=subscription.go -destination=../../../tests/mock/commands/subscription_mock.go -package=commandsmock
//

// Package commandsmock is a generated GoMock package.
package commandsmock

import (
	context "context"
	jwt "nagoyameshi/internal/pkg/jwt"
	commands "nagoyameshi/internal/usecase/commands"
	shared "nagoyameshi/internal/usecase/shared"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockSubscriptionCommands is a mock of SubscriptionCommands interface.
type MockSubscriptionCommands struct {
	ctrl     *gomock.Controller
	recorder *MockSubscriptionCommandsMockRecorder
	isgomock struct{}
}

// MockSubscriptionCommandsMockRecorder is the mock recorder for MockSubscriptionCommands.
type MockSubscriptionCommandsMockRecorder struct {
	mock *MockSubscriptionCommands
}

// NewMockSubscriptionCommands creates a new mock instance.
func NewMockSubscriptionCommands(ctrl *gomock.Controller) *MockSubscriptionCommands {
	mock := &MockSubscriptionCommands{ctrl: ctrl}
	mock.recorder = &MockSubscriptionCommandsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSubscriptionCommands) EXPECT() *MockSubscriptionCommandsMockRecorder {
	return m.recorder
}

// Cancel mocks base method.
func (m *MockSubscriptionCommands) Cancel(ctx context.Context, actor shared.Actor) (*jwt.TokenPair, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Cancel", ctx, actor)
	ret0, _ := ret[0].(*jwt.TokenPair)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Cancel indicates an expected call of Cancel.
func (mr *MockSubscriptionCommandsMockRecorder) Cancel(ctx, actor any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Cancel", reflect.TypeOf((*MockSubscriptionCommands)(nil).Cancel), ctx, actor)
}

// PaymentMethod mocks base method.
func (m *MockSubscriptionCommands) PaymentMethod(ctx context.Context, actor shared.Actor) (*commands.PaymentMethodSummary, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PaymentMethod", ctx, actor)
	ret0, _ := ret[0].(*commands.PaymentMethodSummary)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PaymentMethod indicates an expected call of PaymentMethod.
func (mr *MockSubscriptionCommandsMockRecorder) PaymentMethod(ctx, actor any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PaymentMethod", reflect.TypeOf((*MockSubscriptionCommands)(nil).PaymentMethod), ctx, actor)
}

// Subscribe mocks base method.
func (m *MockSubscriptionCommands) Subscribe(ctx context.Context, actor shared.Actor, paymentMethodID string) (*jwt.TokenPair, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Subscribe", ctx, actor, paymentMethodID)
	ret0, _ := ret[0].(*jwt.TokenPair)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Subscribe indicates an expected call of Subscribe.
func (mr *MockSubscriptionCommandsMockRecorder) Subscribe(ctx, actor, paymentMethodID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Subscribe", reflect.TypeOf((*MockSubscriptionCommands)(nil).Subscribe), ctx, actor, paymentMethodID)
}

// UpdatePaymentMethod mocks base method.
func (m *MockSubscriptionCommands) UpdatePaymentMethod(ctx context.Context, actor shared.Actor, paymentMethodID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdatePaymentMethod", ctx, actor, paymentMethodID)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdatePaymentMethod indicates an expected call of UpdatePaymentMethod.
func (mr *MockSubscriptionCommandsMockRecorder) UpdatePaymentMethod(ctx, actor, paymentMethodID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdatePaymentMethod", reflect.TypeOf((*MockSubscriptionCommands)(nil).UpdatePaymentMethod), ctx, actor, paymentMethodID)
}
