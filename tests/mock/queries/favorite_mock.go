// Code generated by MockGen. DO NOT EDIT.
// Source: favorite.go
//
// Generated by this command:
//
//	mockgen -source=favorite.go -destination=../../../tests/mock/queries/favorite_mock.go -package=queriesmock
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

// MockFavoriteReadStore is a mock of FavoriteReadStore interface.
type MockFavoriteReadStore struct {
	ctrl     *gomock.Controller
	recorder *MockFavoriteReadStoreMockRecorder
	isgomock struct{}
}

// MockFavoriteReadStoreMockRecorder is the mock recorder for MockFavoriteReadStore.
type MockFavoriteReadStoreMockRecorder struct {
	mock *MockFavoriteReadStore
}

// NewMockFavoriteReadStore creates a new mock instance.
func NewMockFavoriteReadStore(ctrl *gomock.Controller) *MockFavoriteReadStore {
	mock := &MockFavoriteReadStore{ctrl: ctrl}
	mock.recorder = &MockFavoriteReadStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockFavoriteReadStore) EXPECT() *MockFavoriteReadStoreMockRecorder {
	return m.recorder
}

// FindFor mocks base method.
func (m *MockFavoriteReadStore) FindFor(ctx context.Context, userID, restaurantID int64) (*queries.FavoriteView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindFor", ctx, userID, restaurantID)
	ret0, _ := ret[0].(*queries.FavoriteView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindFor indicates an expected call of FindFor.
func (mr *MockFavoriteReadStoreMockRecorder) FindFor(ctx, userID, restaurantID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindFor", reflect.TypeOf((*MockFavoriteReadStore)(nil).FindFor), ctx, userID, restaurantID)
}

// ListByUser mocks base method.
func (m *MockFavoriteReadStore) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*queries.FavoriteView, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByUser", ctx, userID, limit, offset)
	ret0, _ := ret[0].([]*queries.FavoriteView)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// ListByUser indicates an expected call of ListByUser.
func (mr *MockFavoriteReadStoreMockRecorder) ListByUser(ctx, userID, limit, offset any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByUser", reflect.TypeOf((*MockFavoriteReadStore)(nil).ListByUser), ctx, userID, limit, offset)
}

// MockFavoriteQueries is a mock of FavoriteQueries interface.
type MockFavoriteQueries struct {
	ctrl     *gomock.Controller
	recorder *MockFavoriteQueriesMockRecorder
	isgomock struct{}
}

// MockFavoriteQueriesMockRecorder is the mock recorder for MockFavoriteQueries.
type MockFavoriteQueriesMockRecorder struct {
	mock *MockFavoriteQueries
}

// NewMockFavoriteQueries creates a new mock instance.
func NewMockFavoriteQueries(ctrl *gomock.Controller) *MockFavoriteQueries {
	mock := &MockFavoriteQueries{ctrl: ctrl}
	mock.recorder = &MockFavoriteQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockFavoriteQueries) EXPECT() *MockFavoriteQueriesMockRecorder {
	return m.recorder
}

// ListOwn mocks base method.
func (m *MockFavoriteQueries) ListOwn(ctx context.Context, actor shared.Actor, page queries.PageRequest) (queries.Page[*queries.FavoriteView], error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListOwn", ctx, actor, page)
	ret0, _ := ret[0].(queries.Page[*queries.FavoriteView])
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListOwn indicates an expected call of ListOwn.
func (mr *MockFavoriteQueriesMockRecorder) ListOwn(ctx, actor, page any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListOwn", reflect.TypeOf((*MockFavoriteQueries)(nil).ListOwn), ctx, actor, page)
}
