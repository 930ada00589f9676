// Code generated by MockGen. DO NOT EDIT.
// Source: review.go
//
// Generated by this command:
//
//	mockgen -source=review.go -destination=../../../tests/mock/commands/review_mock.go -package=commandsmock
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

// MockReviewCommands is a mock of ReviewCommands interface.
type MockReviewCommands struct {
	ctrl     *gomock.Controller
	recorder *MockReviewCommandsMockRecorder
	isgomock struct{}
}

// MockReviewCommandsMockRecorder is the mock recorder for MockReviewCommands.
type MockReviewCommandsMockRecorder struct {
	mock *MockReviewCommands
}

// NewMockReviewCommands creates a new mock instance.
func NewMockReviewCommands(ctrl *gomock.Controller) *MockReviewCommands {
	mock := &MockReviewCommands{ctrl: ctrl}
	mock.recorder = &MockReviewCommandsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReviewCommands) EXPECT() *MockReviewCommandsMockRecorder {
	return m.recorder
}

// CreateReview mocks base method.
func (m *MockReviewCommands) CreateReview(ctx context.Context, actor shared.Actor, restaurantID int64, req commands.ReviewRequest) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateReview", ctx, actor, restaurantID, req)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateReview indicates an expected call of CreateReview.
func (mr *MockReviewCommandsMockRecorder) CreateReview(ctx, actor, restaurantID, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateReview", reflect.TypeOf((*MockReviewCommands)(nil).CreateReview), ctx, actor, restaurantID, req)
}

// DeleteReview mocks base method.
func (m *MockReviewCommands) DeleteReview(ctx context.Context, actor shared.Actor, reviewID int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteReview", ctx, actor, reviewID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteReview indicates an expected call of DeleteReview.
func (mr *MockReviewCommandsMockRecorder) DeleteReview(ctx, actor, reviewID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteReview", reflect.TypeOf((*MockReviewCommands)(nil).DeleteReview), ctx, actor, reviewID)
}

// UpdateReview mocks base method.
func (m *MockReviewCommands) UpdateReview(ctx context.Context, actor shared.Actor, reviewID int64, req commands.ReviewRequest) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateReview", ctx, actor, reviewID, req)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateReview indicates an expected call of UpdateReview.
func (mr *MockReviewCommandsMockRecorder) UpdateReview(ctx, actor, reviewID, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateReview", reflect.TypeOf((*MockReviewCommands)(nil).UpdateReview), ctx, actor, reviewID, req)
}
