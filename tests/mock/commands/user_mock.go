// Code generated by MockGen. DO NOT EDIT.
// Source: user.go
//
// Generated by this command:
//
//	mockgen -source=user.go -destination=../../../tests/mock/commands/user_mock.go -package=commandsmock
//

// Package commandsmock is a generated GoMock package.
package commandsmock

import (
	context "context"
	user "nagoyameshi/internal/domain/user"
	shared "nagoyameshi/internal/usecase/shared"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockUserCommands is a mock of UserCommands interface.
type MockUserCommands struct {
	ctrl     *gomock.Controller
	recorder *MockUserCommandsMockRecorder
	isgomock struct{}
}

// MockUserCommandsMockRecorder is the mock recorder for MockUserCommands.
type MockUserCommandsMockRecorder struct {
	mock *MockUserCommands
}

// NewMockUserCommands creates a new mock instance.
func NewMockUserCommands(ctrl *gomock.Controller) *MockUserCommands {
	mock := &MockUserCommands{ctrl: ctrl}
	mock.recorder = &MockUserCommandsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockUserCommands) EXPECT() *MockUserCommandsMockRecorder {
	return m.recorder
}

// UpdateProfile mocks base method.
func (m *MockUserCommands) UpdateProfile(ctx context.Context, actor shared.Actor, in user.ProfileInput) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateProfile", ctx, actor, in)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateProfile indicates an expected call of UpdateProfile.
func (mr *MockUserCommandsMockRecorder) UpdateProfile(ctx, actor, in any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateProfile", reflect.TypeOf((*MockUserCommands)(nil).UpdateProfile), ctx, actor, in)
}
