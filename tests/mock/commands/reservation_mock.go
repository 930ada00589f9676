// Code generated by MockGen. DO NOT EDIT.
// Source: reservation.go
//
// Generated by this command:
//
//	mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation_mock.go -package=commandsmock
//

// Package commandsmock is a generated GoMock package.
package commandsmock

import (
	context "context"
	commands "nagoyameshi/internal/usecase/commands"
	shared "nagoyameshi/internal/usecase/shared"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockReservationCommands is a mock of ReservationCommands interface.
type MockReservationCommands struct {
	ctrl     *gomock.Controller
	recorder *MockReservationCommandsMockRecorder
	isgomock struct{}
}

// MockReservationCommandsMockRecorder is the mock recorder for MockReservationCommands.
type MockReservationCommandsMockRecorder struct {
	mock *MockReservationCommands
}

// NewMockReservationCommands creates a new mock instance.
func NewMockReservationCommands(ctrl *gomock.Controller) *MockReservationCommands {
	mock := &MockReservationCommands{ctrl: ctrl}
	mock.recorder = &MockReservationCommandsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReservationCommands) EXPECT() *MockReservationCommandsMockRecorder {
	return m.recorder
}

// CancelReservation mocks base method.
func (m *MockReservationCommands) CancelReservation(ctx context.Context, actor shared.Actor, reservationID int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CancelReservation", ctx, actor, reservationID)
	ret0, _ := ret[0].(error)
	return ret0
}

// CancelReservation indicates an expected call of CancelReservation.
func (mr *MockReservationCommandsMockRecorder) CancelReservation(ctx, actor, reservationID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CancelReservation", reflect.TypeOf((*MockReservationCommands)(nil).CancelReservation), ctx, actor, reservationID)
}

// CreateReservation mocks base method.
func (m *MockReservationCommands) CreateReservation(ctx context.Context, actor shared.Actor, req commands.CreateReservationRequest) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateReservation", ctx, actor, req)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateReservation indicates an expected call of CreateReservation.
func (mr *MockReservationCommandsMockRecorder) CreateReservation(ctx, actor, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateReservation", reflect.TypeOf((*MockReservationCommands)(nil).CreateReservation), ctx, actor, req)
}
