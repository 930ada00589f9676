// Code generated by MockGen. DO NOT EDIT.
// Source: category.go
//
// Generated by this command:
//
//	mockgen -source=category.go -destination=../../../tests/mock/commands/category_mock.go -package=commandsmock
//

// Package commandsmock is a generated GoMock package.
package commandsmock

import (
	context "context"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockCategoryCommands is a mock of CategoryCommands interface.
type MockCategoryCommands struct {
	ctrl     *gomock.Controller
	recorder *MockCategoryCommandsMockRecorder
	isgomock struct{}
}

// MockCategoryCommandsMockRecorder is the mock recorder for MockCategoryCommands.
type MockCategoryCommandsMockRecorder struct {
	mock *MockCategoryCommands
}

// NewMockCategoryCommands creates a new mock instance.
func NewMockCategoryCommands(ctrl *gomock.Controller) *MockCategoryCommands {
	mock := &MockCategoryCommands{ctrl: ctrl}
	mock.recorder = &MockCategoryCommandsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCategoryCommands) EXPECT() *MockCategoryCommandsMockRecorder {
	return m.recorder
}

// CreateCategory mocks base method.
func (m *MockCategoryCommands) CreateCategory(ctx context.Context, name string) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateCategory", ctx, name)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateCategory indicates an expected call of CreateCategory.
func (mr *MockCategoryCommandsMockRecorder) CreateCategory(ctx, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateCategory", reflect.TypeOf((*MockCategoryCommands)(nil).CreateCategory), ctx, name)
}

// DeleteCategory mocks base method.
func (m *MockCategoryCommands) DeleteCategory(ctx context.Context, id int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteCategory", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteCategory indicates an expected call of DeleteCategory.
func (mr *MockCategoryCommandsMockRecorder) DeleteCategory(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteCategory", reflect.TypeOf((*MockCategoryCommands)(nil).DeleteCategory), ctx, id)
}

// UpdateCategory mocks base method.
func (m *MockCategoryCommands) UpdateCategory(ctx context.Context, id int64, name string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateCategory", ctx, id, name)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateCategory indicates an expected call of UpdateCategory.
func (mr *MockCategoryCommandsMockRecorder) UpdateCategory(ctx, id, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateCategory", reflect.TypeOf((*MockCategoryCommands)(nil).UpdateCategory), ctx, id, name)
}
