// Code generated by MockGen. DO NOT EDIT.
// Source: content.go
//
// Generated by this command:
//
//	mockgen -source=content.go -destination=../../../tests/mock/commands/content_mock.go -package=commandsmock
//

// Package commandsmock is a generated GoMock package.
package commandsmock

import (
	context "context"
	content "nagoyameshi/internal/domain/content"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockContentCommands is a mock of ContentCommands interface.
type MockContentCommands struct {
	ctrl     *gomock.Controller
	recorder *MockContentCommandsMockRecorder
	isgomock struct{}
}

// MockContentCommandsMockRecorder is the mock recorder for MockContentCommands.
type MockContentCommandsMockRecorder struct {
	mock *MockContentCommands
}

// NewMockContentCommands creates a new mock instance.
func NewMockContentCommands(ctrl *gomock.Controller) *MockContentCommands {
	mock := &MockContentCommands{ctrl: ctrl}
	mock.recorder = &MockContentCommandsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockContentCommands) EXPECT() *MockContentCommandsMockRecorder {
	return m.recorder
}

// UpdateCompany mocks base method.
func (m *MockContentCommands) UpdateCompany(ctx context.Context, c content.Company) (*content.Company, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateCompany", ctx, c)
	ret0, _ := ret[0].(*content.Company)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateCompany indicates an expected call of UpdateCompany.
func (mr *MockContentCommandsMockRecorder) UpdateCompany(ctx, c any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateCompany", reflect.TypeOf((*MockContentCommands)(nil).UpdateCompany), ctx, c)
}

// UpdateTerm mocks base method.
func (m *MockContentCommands) UpdateTerm(ctx context.Context, body string) (*content.Term, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateTerm", ctx, body)
	ret0, _ := ret[0].(*content.Term)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateTerm indicates an expected call of UpdateTerm.
func (mr *MockContentCommandsMockRecorder) UpdateTerm(ctx, body any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateTerm", reflect.TypeOf((*MockContentCommands)(nil).UpdateTerm), ctx, body)
}
