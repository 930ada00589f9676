// Code generated by MockGen. DO NOT EDIT.
// Source: favorite.go
//
// Generated by this command:
//
//	mockgen -source=favorite.go -destination=../../../tests/mock/commands/favorite_mock.go -package=commandsmock
//

// Package commandsmock is a generated GoMock package.
package commandsmock

import (
	context "context"
	shared "nagoyameshi/internal/usecase/shared"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockFavoriteCommands is a mock of FavoriteCommands interface.
type MockFavoriteCommands struct {
	ctrl     *gomock.Controller
	recorder *MockFavoriteCommandsMockRecorder
	isgomock struct{}
}

// MockFavoriteCommandsMockRecorder is the mock recorder for MockFavoriteCommands.
type MockFavoriteCommandsMockRecorder struct {
	mock *MockFavoriteCommands
}

// NewMockFavoriteCommands creates a new mock instance.
func NewMockFavoriteCommands(ctrl *gomock.Controller) *MockFavoriteCommands {
	mock := &MockFavoriteCommands{ctrl: ctrl}
	mock.recorder = &MockFavoriteCommandsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockFavoriteCommands) EXPECT() *MockFavoriteCommandsMockRecorder {
	return m.recorder
}

// AddFavorite mocks base method.
func (m *MockFavoriteCommands) AddFavorite(ctx context.Context, actor shared.Actor, restaurantID int64) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddFavorite", ctx, actor, restaurantID)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AddFavorite indicates an expected call of AddFavorite.
func (mr *MockFavoriteCommandsMockRecorder) AddFavorite(ctx, actor, restaurantID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddFavorite", reflect.TypeOf((*MockFavoriteCommands)(nil).AddFavorite), ctx, actor, restaurantID)
}

// RemoveFavorite mocks base method.
func (m *MockFavoriteCommands) RemoveFavorite(ctx context.Context, actor shared.Actor, favoriteID int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RemoveFavorite", ctx, actor, favoriteID)
	ret0, _ := ret[0].(error)
	return ret0
}

// RemoveFavorite indicates an expected call of RemoveFavorite.
func (mr *MockFavoriteCommandsMockRecorder) RemoveFavorite(ctx, actor, favoriteID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemoveFavorite", reflect.TypeOf((*MockFavoriteCommands)(nil).RemoveFavorite), ctx, actor, favoriteID)
}
