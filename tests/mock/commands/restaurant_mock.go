// Code generated by MockGen. DO NOT EDIT.
// Source: restaurant.go
//
// Generated by this command:
//
//	mockgen -source=restaurant.go -destination=../../../tests/mock/commands/restaurant_mock.go -package=commandsmock
//

// Package commandsmock is a generated GoMock package.
package commandsmock

import (
	context "context"
	commands "nagoyameshi/internal/usecase/commands"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockRestaurantCommands is a mock of RestaurantCommands interface.
type MockRestaurantCommands struct {
	ctrl     *gomock.Controller
	recorder *MockRestaurantCommandsMockRecorder
	isgomock struct{}
}

// MockRestaurantCommandsMockRecorder is the mock recorder for MockRestaurantCommands.
type MockRestaurantCommandsMockRecorder struct {
	mock *MockRestaurantCommands
}

// NewMockRestaurantCommands creates a new mock instance.
func NewMockRestaurantCommands(ctrl *gomock.Controller) *MockRestaurantCommands {
	mock := &MockRestaurantCommands{ctrl: ctrl}
	mock.recorder = &MockRestaurantCommandsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRestaurantCommands) EXPECT() *MockRestaurantCommandsMockRecorder {
	return m.recorder
}

// CreateRestaurant mocks base method.
func (m *MockRestaurantCommands) CreateRestaurant(ctx context.Context, in commands.RestaurantInput) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateRestaurant", ctx, in)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateRestaurant indicates an expected call of CreateRestaurant.
func (mr *MockRestaurantCommandsMockRecorder) CreateRestaurant(ctx, in any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateRestaurant", reflect.TypeOf((*MockRestaurantCommands)(nil).CreateRestaurant), ctx, in)
}

// DeleteRestaurant mocks base method.
func (m *MockRestaurantCommands) DeleteRestaurant(ctx context.Context, id int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteRestaurant", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteRestaurant indicates an expected call of DeleteRestaurant.
func (mr *MockRestaurantCommandsMockRecorder) DeleteRestaurant(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteRestaurant", reflect.TypeOf((*MockRestaurantCommands)(nil).DeleteRestaurant), ctx, id)
}

// UpdateRestaurant mocks base method.
func (m *MockRestaurantCommands) UpdateRestaurant(ctx context.Context, id int64, in commands.RestaurantInput) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateRestaurant", ctx, id, in)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateRestaurant indicates an expected call of UpdateRestaurant.
func (mr *MockRestaurantCommandsMockRecorder) UpdateRestaurant(ctx, id, in any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateRestaurant", reflect.TypeOf((*MockRestaurantCommands)(nil).UpdateRestaurant), ctx, id, in)
}
