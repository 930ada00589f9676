// Code generated by MockGen. DO NOT EDIT.
// Source: home.go
//
// Generated by this command:
//
//	mockgen -source=home.go -destination=../../../tests/mock/queries/home_mock.go -package=queriesmock
//

// Package queriesmock is a generated GoMock package.
package queriesmock

import (
	context "context"
	queries "nagoyameshi/internal/usecase/queries"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockHomeQueries is a mock of HomeQueries interface.
type MockHomeQueries struct {
	ctrl     *gomock.Controller
	recorder *MockHomeQueriesMockRecorder
	isgomock struct{}
}

// MockHomeQueriesMockRecorder is the mock recorder for MockHomeQueries.
type MockHomeQueriesMockRecorder struct {
	mock *MockHomeQueries
}

// NewMockHomeQueries creates a new mock instance.
func NewMockHomeQueries(ctrl *gomock.Controller) *MockHomeQueries {
	mock := &MockHomeQueries{ctrl: ctrl}
	mock.recorder = &MockHomeQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockHomeQueries) EXPECT() *MockHomeQueriesMockRecorder {
	return m.recorder
}

// Home mocks base method.
func (m *MockHomeQueries) Home(ctx context.Context) (*queries.HomeView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Home", ctx)
	ret0, _ := ret[0].(*queries.HomeView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Home indicates an expected call of Home.
func (mr *MockHomeQueriesMockRecorder) Home(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Home", reflect.TypeOf((*MockHomeQueries)(nil).Home), ctx)
}
