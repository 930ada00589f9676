// Code generated by MockGen. DO NOT EDIT.
// Source: admin.go
//
// Generated by this command:
//
//	mockgen -source=admin.go -destination=../../../tests/mock/queries/admin_mock.go -package=queriesmock
//

// Package queriesmock is a generated GoMock package.
package queriesmock

import (
	context "context"
	queries "nagoyameshi/internal/usecase/queries"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockDashboardQueries is a mock of DashboardQueries interface.
type MockDashboardQueries struct {
	ctrl     *gomock.Controller
	recorder *MockDashboardQueriesMockRecorder
	isgomock struct{}
}

// MockDashboardQueriesMockRecorder is the mock recorder for MockDashboardQueries.
type MockDashboardQueriesMockRecorder struct {
	mock *MockDashboardQueries
}

// NewMockDashboardQueries creates a new mock instance.
func NewMockDashboardQueries(ctrl *gomock.Controller) *MockDashboardQueries {
	mock := &MockDashboardQueries{ctrl: ctrl}
	mock.recorder = &MockDashboardQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDashboardQueries) EXPECT() *MockDashboardQueriesMockRecorder {
	return m.recorder
}

// Dashboard mocks base method.
func (m *MockDashboardQueries) Dashboard(ctx context.Context) (*queries.Dashboard, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Dashboard", ctx)
	ret0, _ := ret[0].(*queries.Dashboard)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Dashboard indicates an expected call of Dashboard.
func (mr *MockDashboardQueriesMockRecorder) Dashboard(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Dashboard", reflect.TypeOf((*MockDashboardQueries)(nil).Dashboard), ctx)
}
