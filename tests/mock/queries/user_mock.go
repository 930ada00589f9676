// Code generated by MockGen. DO NOT EDIT.
// Source: user.go
//
// Generated by this command:
//
//	mockgen -source=user.go -destination=../../../tests/mock/queries/user_mock.go -package=queriesmock
//

// Package queriesmock is a generated GoMock package.
package queriesmock

import (
	context "context"
	user "nagoyameshi/internal/domain/user"
	queries "nagoyameshi/internal/usecase/queries"
	shared "nagoyameshi/internal/usecase/shared"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockUserReadStore is a mock of UserReadStore interface.
type MockUserReadStore struct {
	ctrl     *gomock.Controller
	recorder *MockUserReadStoreMockRecorder
	isgomock struct{}
}

// MockUserReadStoreMockRecorder is the mock recorder for MockUserReadStore.
type MockUserReadStoreMockRecorder struct {
	mock *MockUserReadStore
}

// NewMockUserReadStore creates a new mock instance.
func NewMockUserReadStore(ctrl *gomock.Controller) *MockUserReadStore {
	mock := &MockUserReadStore{ctrl: ctrl}
	mock.recorder = &MockUserReadStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockUserReadStore) EXPECT() *MockUserReadStoreMockRecorder {
	return m.recorder
}

// CountByRole mocks base method.
func (m *MockUserReadStore) CountByRole(ctx context.Context, role user.Role) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountByRole", ctx, role)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountByRole indicates an expected call of CountByRole.
func (mr *MockUserReadStoreMockRecorder) CountByRole(ctx, role any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountByRole", reflect.TypeOf((*MockUserReadStore)(nil).CountByRole), ctx, role)
}

// FindByID mocks base method.
func (m *MockUserReadStore) FindByID(ctx context.Context, id int64) (*queries.UserView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByID", ctx, id)
	ret0, _ := ret[0].(*queries.UserView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByID indicates an expected call of FindByID.
func (mr *MockUserReadStoreMockRecorder) FindByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByID", reflect.TypeOf((*MockUserReadStore)(nil).FindByID), ctx, id)
}

// Search mocks base method.
func (m *MockUserReadStore) Search(ctx context.Context, keyword string, limit, offset int) ([]*queries.UserView, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Search", ctx, keyword, limit, offset)
	ret0, _ := ret[0].([]*queries.UserView)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// Search indicates an expected call of Search.
func (mr *MockUserReadStoreMockRecorder) Search(ctx, keyword, limit, offset any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Search", reflect.TypeOf((*MockUserReadStore)(nil).Search), ctx, keyword, limit, offset)
}

// MockUserQueries is a mock of UserQueries interface.
type MockUserQueries struct {
	ctrl     *gomock.Controller
	recorder *MockUserQueriesMockRecorder
	isgomock struct{}
}

// MockUserQueriesMockRecorder is the mock recorder for MockUserQueries.
type MockUserQueriesMockRecorder struct {
	mock *MockUserQueries
}

// NewMockUserQueries creates a new mock instance.
func NewMockUserQueries(ctrl *gomock.Controller) *MockUserQueries {
	mock := &MockUserQueries{ctrl: ctrl}
	mock.recorder = &MockUserQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockUserQueries) EXPECT() *MockUserQueriesMockRecorder {
	return m.recorder
}

// AdminGet mocks base method.
func (m *MockUserQueries) AdminGet(ctx context.Context, id int64) (*queries.UserView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AdminGet", ctx, id)
	ret0, _ := ret[0].(*queries.UserView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AdminGet indicates an expected call of AdminGet.
func (mr *MockUserQueriesMockRecorder) AdminGet(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AdminGet", reflect.TypeOf((*MockUserQueries)(nil).AdminGet), ctx, id)
}

// AdminSearch mocks base method.
func (m *MockUserQueries) AdminSearch(ctx context.Context, keyword string, page queries.PageRequest) (queries.Page[*queries.UserView], error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AdminSearch", ctx, keyword, page)
	ret0, _ := ret[0].(queries.Page[*queries.UserView])
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AdminSearch indicates an expected call of AdminSearch.
func (mr *MockUserQueriesMockRecorder) AdminSearch(ctx, keyword, page any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AdminSearch", reflect.TypeOf((*MockUserQueries)(nil).AdminSearch), ctx, keyword, page)
}

// Me mocks base method.
func (m *MockUserQueries) Me(ctx context.Context, actor shared.Actor) (*queries.UserView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Me", ctx, actor)
	ret0, _ := ret[0].(*queries.UserView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Me indicates an expected call of Me.
func (mr *MockUserQueriesMockRecorder) Me(ctx, actor any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Me", reflect.TypeOf((*MockUserQueries)(nil).Me), ctx, actor)
}
