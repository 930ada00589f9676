// Code generated by MockGen. DO NOT EDIT.
// Source: restaurant.go
//
// Generated by this command:
//
//	mockgen -source=restaurant.go -destination=../../../tests/mock/queries/restaurant_mock.go -package=queriesmock
//

// Package queriesmock is a generated GoMock package.
package queriesmock

import (
	context "context"
	queries "nagoyameshi/internal/usecase/queries"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockRestaurantReadStore is a mock of RestaurantReadStore interface.
type MockRestaurantReadStore struct {
	ctrl     *gomock.Controller
	recorder *MockRestaurantReadStoreMockRecorder
	isgomock struct{}
}

// MockRestaurantReadStoreMockRecorder is the mock recorder for MockRestaurantReadStore.
type MockRestaurantReadStoreMockRecorder struct {
	mock *MockRestaurantReadStore
}

// NewMockRestaurantReadStore creates a new mock instance.
func NewMockRestaurantReadStore(ctrl *gomock.Controller) *MockRestaurantReadStore {
	mock := &MockRestaurantReadStore{ctrl: ctrl}
	mock.recorder = &MockRestaurantReadStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRestaurantReadStore) EXPECT() *MockRestaurantReadStoreMockRecorder {
	return m.recorder
}

// CategoryNames mocks base method.
func (m *MockRestaurantReadStore) CategoryNames(ctx context.Context, restaurantIDs []int64) (map[int64][]string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CategoryNames", ctx, restaurantIDs)
	ret0, _ := ret[0].(map[int64][]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CategoryNames indicates an expected call of CategoryNames.
func (mr *MockRestaurantReadStoreMockRecorder) CategoryNames(ctx, restaurantIDs any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CategoryNames", reflect.TypeOf((*MockRestaurantReadStore)(nil).CategoryNames), ctx, restaurantIDs)
}

// Count mocks base method.
func (m *MockRestaurantReadStore) Count(ctx context.Context) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Count", ctx)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Count indicates an expected call of Count.
func (mr *MockRestaurantReadStoreMockRecorder) Count(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Count", reflect.TypeOf((*MockRestaurantReadStore)(nil).Count), ctx)
}

// FindByID mocks base method.
func (m *MockRestaurantReadStore) FindByID(ctx context.Context, id int64) (*queries.RestaurantDetail, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByID", ctx, id)
	ret0, _ := ret[0].(*queries.RestaurantDetail)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByID indicates an expected call of FindByID.
func (mr *MockRestaurantReadStoreMockRecorder) FindByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByID", reflect.TypeOf((*MockRestaurantReadStore)(nil).FindByID), ctx, id)
}

// Search mocks base method.
func (m *MockRestaurantReadStore) Search(ctx context.Context, f queries.RestaurantFilter, order queries.RestaurantOrder, limit, offset int) ([]*queries.RestaurantListItem, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Search", ctx, f, order, limit, offset)
	ret0, _ := ret[0].([]*queries.RestaurantListItem)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// Search indicates an expected call of Search.
func (mr *MockRestaurantReadStoreMockRecorder) Search(ctx, f, order, limit, offset any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Search", reflect.TypeOf((*MockRestaurantReadStore)(nil).Search), ctx, f, order, limit, offset)
}

// MockRestaurantQueries is a mock of RestaurantQueries interface.
type MockRestaurantQueries struct {
	ctrl     *gomock.Controller
	recorder *MockRestaurantQueriesMockRecorder
	isgomock struct{}
}

// MockRestaurantQueriesMockRecorder is the mock recorder for MockRestaurantQueries.
type MockRestaurantQueriesMockRecorder struct {
	mock *MockRestaurantQueries
}

// NewMockRestaurantQueries creates a new mock instance.
func NewMockRestaurantQueries(ctrl *gomock.Controller) *MockRestaurantQueries {
	mock := &MockRestaurantQueries{ctrl: ctrl}
	mock.recorder = &MockRestaurantQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRestaurantQueries) EXPECT() *MockRestaurantQueriesMockRecorder {
	return m.recorder
}

// Get mocks base method.
func (m *MockRestaurantQueries) Get(ctx context.Context, id int64, viewerID *int64) (*queries.RestaurantDetail, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, id, viewerID)
	ret0, _ := ret[0].(*queries.RestaurantDetail)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockRestaurantQueriesMockRecorder) Get(ctx, id, viewerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockRestaurantQueries)(nil).Get), ctx, id, viewerID)
}

// HighlyRated mocks base method.
func (m *MockRestaurantQueries) HighlyRated(ctx context.Context, limit int) ([]*queries.RestaurantListItem, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HighlyRated", ctx, limit)
	ret0, _ := ret[0].([]*queries.RestaurantListItem)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HighlyRated indicates an expected call of HighlyRated.
func (mr *MockRestaurantQueriesMockRecorder) HighlyRated(ctx, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HighlyRated", reflect.TypeOf((*MockRestaurantQueries)(nil).HighlyRated), ctx, limit)
}

// Newest mocks base method.
func (m *MockRestaurantQueries) Newest(ctx context.Context, limit int) ([]*queries.RestaurantListItem, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Newest", ctx, limit)
	ret0, _ := ret[0].([]*queries.RestaurantListItem)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Newest indicates an expected call of Newest.
func (mr *MockRestaurantQueriesMockRecorder) Newest(ctx, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Newest", reflect.TypeOf((*MockRestaurantQueries)(nil).Newest), ctx, limit)
}

// Search mocks base method.
func (m *MockRestaurantQueries) Search(ctx context.Context, s queries.RestaurantSearch) (queries.Page[*queries.RestaurantListItem], error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Search", ctx, s)
	ret0, _ := ret[0].(queries.Page[*queries.RestaurantListItem])
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Search indicates an expected call of Search.
func (mr *MockRestaurantQueriesMockRecorder) Search(ctx, s any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Search", reflect.TypeOf((*MockRestaurantQueries)(nil).Search), ctx, s)
}
