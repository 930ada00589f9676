// Code generated by MockGen. DO NOT EDIT.
// Source: category.go
//
// Generated by this command:
//
//	mockgen -source=category.go -destination=../../../tests/mock/queries/category_mock.go -package=queriesmock
//

// Package queriesmock is a generated GoMock package.
package queriesmock

import (
	context "context"
	category "nagoyameshi/internal/domain/category"
	queries "nagoyameshi/internal/usecase/queries"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockCategoryReadStore is a mock of CategoryReadStore interface.
type MockCategoryReadStore struct {
	ctrl     *gomock.Controller
	recorder *MockCategoryReadStoreMockRecorder
	isgomock struct{}
}

// MockCategoryReadStoreMockRecorder is the mock recorder for MockCategoryReadStore.
type MockCategoryReadStoreMockRecorder struct {
	mock *MockCategoryReadStore
}

// NewMockCategoryReadStore creates a new mock instance.
func NewMockCategoryReadStore(ctrl *gomock.Controller) *MockCategoryReadStore {
	mock := &MockCategoryReadStore{ctrl: ctrl}
	mock.recorder = &MockCategoryReadStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCategoryReadStore) EXPECT() *MockCategoryReadStoreMockRecorder {
	return m.recorder
}

// All mocks base method.
func (m *MockCategoryReadStore) All(ctx context.Context) ([]queries.CategoryView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "All", ctx)
	ret0, _ := ret[0].([]queries.CategoryView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// All indicates an expected call of All.
func (mr *MockCategoryReadStoreMockRecorder) All(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "All", reflect.TypeOf((*MockCategoryReadStore)(nil).All), ctx)
}

// FindByID mocks base method.
func (m *MockCategoryReadStore) FindByID(ctx context.Context, id int64) (*queries.CategoryView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByID", ctx, id)
	ret0, _ := ret[0].(*queries.CategoryView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByID indicates an expected call of FindByID.
func (mr *MockCategoryReadStoreMockRecorder) FindByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByID", reflect.TypeOf((*MockCategoryReadStore)(nil).FindByID), ctx, id)
}

// Holidays mocks base method.
func (m *MockCategoryReadStore) Holidays(ctx context.Context) ([]category.RegularHoliday, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Holidays", ctx)
	ret0, _ := ret[0].([]category.RegularHoliday)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Holidays indicates an expected call of Holidays.
func (mr *MockCategoryReadStoreMockRecorder) Holidays(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Holidays", reflect.TypeOf((*MockCategoryReadStore)(nil).Holidays), ctx)
}

// Search mocks base method.
func (m *MockCategoryReadStore) Search(ctx context.Context, keyword string, limit, offset int) ([]queries.CategoryView, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Search", ctx, keyword, limit, offset)
	ret0, _ := ret[0].([]queries.CategoryView)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// Search indicates an expected call of Search.
func (mr *MockCategoryReadStoreMockRecorder) Search(ctx, keyword, limit, offset any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Search", reflect.TypeOf((*MockCategoryReadStore)(nil).Search), ctx, keyword, limit, offset)
}

// MockCategoryQueries is a mock of CategoryQueries interface.
type MockCategoryQueries struct {
	ctrl     *gomock.Controller
	recorder *MockCategoryQueriesMockRecorder
	isgomock struct{}
}

// MockCategoryQueriesMockRecorder is the mock recorder for MockCategoryQueries.
type MockCategoryQueriesMockRecorder struct {
	mock *MockCategoryQueries
}

// NewMockCategoryQueries creates a new mock instance.
func NewMockCategoryQueries(ctrl *gomock.Controller) *MockCategoryQueries {
	mock := &MockCategoryQueries{ctrl: ctrl}
	mock.recorder = &MockCategoryQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCategoryQueries) EXPECT() *MockCategoryQueriesMockRecorder {
	return m.recorder
}

// AdminSearch mocks base method.
func (m *MockCategoryQueries) AdminSearch(ctx context.Context, keyword string, page queries.PageRequest) (queries.Page[queries.CategoryView], error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AdminSearch", ctx, keyword, page)
	ret0, _ := ret[0].(queries.Page[queries.CategoryView])
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AdminSearch indicates an expected call of AdminSearch.
func (mr *MockCategoryQueriesMockRecorder) AdminSearch(ctx, keyword, page any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AdminSearch", reflect.TypeOf((*MockCategoryQueries)(nil).AdminSearch), ctx, keyword, page)
}

// Get mocks base method.
func (m *MockCategoryQueries) Get(ctx context.Context, id int64) (*queries.CategoryView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, id)
	ret0, _ := ret[0].(*queries.CategoryView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockCategoryQueriesMockRecorder) Get(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockCategoryQueries)(nil).Get), ctx, id)
}

// Holidays mocks base method.
func (m *MockCategoryQueries) Holidays(ctx context.Context) ([]category.RegularHoliday, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Holidays", ctx)
	ret0, _ := ret[0].([]category.RegularHoliday)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Holidays indicates an expected call of Holidays.
func (mr *MockCategoryQueriesMockRecorder) Holidays(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Holidays", reflect.TypeOf((*MockCategoryQueries)(nil).Holidays), ctx)
}

// List mocks base method.
func (m *MockCategoryQueries) List(ctx context.Context) ([]queries.CategoryView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx)
	ret0, _ := ret[0].([]queries.CategoryView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockCategoryQueriesMockRecorder) List(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockCategoryQueries)(nil).List), ctx)
}
