// Code generated by MockGen. DO NOT EDIT.
// Source: auth.go
//
// Generated by this command:
//
//	mockgen -source=auth.go -destination=../../../tests/mock/commands/auth_mock.go -package=commandsmock
//

// Package commandsmock is a generated GoMock package.
package commandsmock

import (
	context "context"
	user "nagoyameshi/internal/domain/user"
	jwt "nagoyameshi/internal/pkg/jwt"
	commands "nagoyameshi/internal/usecase/commands"
	shared "nagoyameshi/internal/usecase/shared"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockAuthCommands is a mock of AuthCommands interface.
type MockAuthCommands struct {
	ctrl     *gomock.Controller
	recorder *MockAuthCommandsMockRecorder
	isgomock struct{}
}

// MockAuthCommandsMockRecorder is the mock recorder for MockAuthCommands.
type MockAuthCommandsMockRecorder struct {
	mock *MockAuthCommands
}

// NewMockAuthCommands creates a new mock instance.
func NewMockAuthCommands(ctrl *gomock.Controller) *MockAuthCommands {
	mock := &MockAuthCommands{ctrl: ctrl}
	mock.recorder = &MockAuthCommandsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAuthCommands) EXPECT() *MockAuthCommandsMockRecorder {
	return m.recorder
}

// Login mocks base method.
func (m *MockAuthCommands) Login(ctx context.Context, req commands.LoginRequest) (*commands.LoginResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Login", ctx, req)
	ret0, _ := ret[0].(*commands.LoginResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Login indicates an expected call of Login.
func (mr *MockAuthCommandsMockRecorder) Login(ctx, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Login", reflect.TypeOf((*MockAuthCommands)(nil).Login), ctx, req)
}

// Logout mocks base method.
func (m *MockAuthCommands) Logout(ctx context.Context, actor shared.Actor) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Logout", ctx, actor)
	ret0, _ := ret[0].(error)
	return ret0
}

// Logout indicates an expected call of Logout.
func (mr *MockAuthCommandsMockRecorder) Logout(ctx, actor any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Logout", reflect.TypeOf((*MockAuthCommands)(nil).Logout), ctx, actor)
}

// RefreshToken mocks base method.
func (m *MockAuthCommands) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RefreshToken", ctx, refreshToken)
	ret0, _ := ret[0].(*jwt.TokenPair)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RefreshToken indicates an expected call of RefreshToken.
func (mr *MockAuthCommandsMockRecorder) RefreshToken(ctx, refreshToken any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RefreshToken", reflect.TypeOf((*MockAuthCommands)(nil).RefreshToken), ctx, refreshToken)
}

// Signup mocks base method.
func (m *MockAuthCommands) Signup(ctx context.Context, in user.SignupInput) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Signup", ctx, in)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Signup indicates an expected call of Signup.
func (mr *MockAuthCommandsMockRecorder) Signup(ctx, in any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Signup", reflect.TypeOf((*MockAuthCommands)(nil).Signup), ctx, in)
}
