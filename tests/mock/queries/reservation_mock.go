// Code generated by MockGen. DO NOT EDIT.
// Source: reservation.go
//
// Generated by this command:
//
//	mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation_mock.go -package=queriesmock
//

// Package queriesmock is a generated GoMock package.
package queriesmock

import (
	context "context"
	queries "nagoyameshi/internal/usecase/queries"
	shared "nagoyameshi/internal/usecase/shared"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockReservationReadStore is a mock of ReservationReadStore interface.
type MockReservationReadStore struct {
	ctrl     *gomock.Controller
	recorder *MockReservationReadStoreMockRecorder
	isgomock struct{}
}

// MockReservationReadStoreMockRecorder is the mock recorder for MockReservationReadStore.
type MockReservationReadStoreMockRecorder struct {
	mock *MockReservationReadStore
}

// NewMockReservationReadStore creates a new mock instance.
func NewMockReservationReadStore(ctrl *gomock.Controller) *MockReservationReadStore {
	mock := &MockReservationReadStore{ctrl: ctrl}
	mock.recorder = &MockReservationReadStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReservationReadStore) EXPECT() *MockReservationReadStoreMockRecorder {
	return m.recorder
}

// Count mocks base method.
func (m *MockReservationReadStore) Count(ctx context.Context) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Count", ctx)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Count indicates an expected call of Count.
func (mr *MockReservationReadStoreMockRecorder) Count(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Count", reflect.TypeOf((*MockReservationReadStore)(nil).Count), ctx)
}

// ListByUser mocks base method.
func (m *MockReservationReadStore) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*queries.ReservationView, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByUser", ctx, userID, limit, offset)
	ret0, _ := ret[0].([]*queries.ReservationView)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// ListByUser indicates an expected call of ListByUser.
func (mr *MockReservationReadStoreMockRecorder) ListByUser(ctx, userID, limit, offset any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByUser", reflect.TypeOf((*MockReservationReadStore)(nil).ListByUser), ctx, userID, limit, offset)
}

// MockReservationQueries is a mock of ReservationQueries interface.
type MockReservationQueries struct {
	ctrl     *gomock.Controller
	recorder *MockReservationQueriesMockRecorder
	isgomock struct{}
}

// MockReservationQueriesMockRecorder is the mock recorder for MockReservationQueries.
type MockReservationQueriesMockRecorder struct {
	mock *MockReservationQueries
}

// NewMockReservationQueries creates a new mock instance.
func NewMockReservationQueries(ctrl *gomock.Controller) *MockReservationQueries {
	mock := &MockReservationQueries{ctrl: ctrl}
	mock.recorder = &MockReservationQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReservationQueries) EXPECT() *MockReservationQueriesMockRecorder {
	return m.recorder
}

// ListOwn mocks base method.
func (m *MockReservationQueries) ListOwn(ctx context.Context, actor shared.Actor, page queries.PageRequest) (queries.Page[*queries.ReservationView], error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListOwn", ctx, actor, page)
	ret0, _ := ret[0].(queries.Page[*queries.ReservationView])
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListOwn indicates an expected call of ListOwn.
func (mr *MockReservationQueriesMockRecorder) ListOwn(ctx, actor, page any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListOwn", reflect.TypeOf((*MockReservationQueries)(nil).ListOwn), ctx, actor, page)
}
