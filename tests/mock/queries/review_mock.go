// Code generated by MockGen. DO NOT EDIT.
// Source: review.go
//
// Generated by this command:
//
//	mockgen -source=review.go -destination=../../../tests/mock/queries/review_mock.go -package=queriesmock
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

// MockReviewReadStore is a mock of ReviewReadStore interface.
type MockReviewReadStore struct {
	ctrl     *gomock.Controller
	recorder *MockReviewReadStoreMockRecorder
	isgomock struct{}
}

// MockReviewReadStoreMockRecorder is the mock recorder for MockReviewReadStore.
type MockReviewReadStoreMockRecorder struct {
	mock *MockReviewReadStore
}

// NewMockReviewReadStore creates a new mock instance.
func NewMockReviewReadStore(ctrl *gomock.Controller) *MockReviewReadStore {
	mock := &MockReviewReadStore{ctrl: ctrl}
	mock.recorder = &MockReviewReadStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReviewReadStore) EXPECT() *MockReviewReadStoreMockRecorder {
	return m.recorder
}

// Exists mocks base method.
func (m *MockReviewReadStore) Exists(ctx context.Context, userID, restaurantID int64) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Exists", ctx, userID, restaurantID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Exists indicates an expected call of Exists.
func (mr *MockReviewReadStoreMockRecorder) Exists(ctx, userID, restaurantID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Exists", reflect.TypeOf((*MockReviewReadStore)(nil).Exists), ctx, userID, restaurantID)
}

// FindByID mocks base method.
func (m *MockReviewReadStore) FindByID(ctx context.Context, id int64) (*queries.ReviewView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByID", ctx, id)
	ret0, _ := ret[0].(*queries.ReviewView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByID indicates an expected call of FindByID.
func (mr *MockReviewReadStoreMockRecorder) FindByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByID", reflect.TypeOf((*MockReviewReadStore)(nil).FindByID), ctx, id)
}

// ListByRestaurant mocks base method.
func (m *MockReviewReadStore) ListByRestaurant(ctx context.Context, restaurantID int64, limit, offset int) ([]*queries.ReviewView, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByRestaurant", ctx, restaurantID, limit, offset)
	ret0, _ := ret[0].([]*queries.ReviewView)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// ListByRestaurant indicates an expected call of ListByRestaurant.
func (mr *MockReviewReadStoreMockRecorder) ListByRestaurant(ctx, restaurantID, limit, offset any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByRestaurant", reflect.TypeOf((*MockReviewReadStore)(nil).ListByRestaurant), ctx, restaurantID, limit, offset)
}

// RestaurantExists mocks base method.
func (m *MockReviewReadStore) RestaurantExists(ctx context.Context, restaurantID int64) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RestaurantExists", ctx, restaurantID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RestaurantExists indicates an expected call of RestaurantExists.
func (mr *MockReviewReadStoreMockRecorder) RestaurantExists(ctx, restaurantID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RestaurantExists", reflect.TypeOf((*MockReviewReadStore)(nil).RestaurantExists), ctx, restaurantID)
}

// MockReviewQueries is a mock of ReviewQueries interface.
type MockReviewQueries struct {
	ctrl     *gomock.Controller
	recorder *MockReviewQueriesMockRecorder
	isgomock struct{}
}

// MockReviewQueriesMockRecorder is the mock recorder for MockReviewQueries.
type MockReviewQueriesMockRecorder struct {
	mock *MockReviewQueries
}

// NewMockReviewQueries creates a new mock instance.
func NewMockReviewQueries(ctrl *gomock.Controller) *MockReviewQueries {
	mock := &MockReviewQueries{ctrl: ctrl}
	mock.recorder = &MockReviewQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReviewQueries) EXPECT() *MockReviewQueriesMockRecorder {
	return m.recorder
}

// GetOwn mocks base method.
func (m *MockReviewQueries) GetOwn(ctx context.Context, actor shared.Actor, reviewID int64) (*queries.ReviewView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetOwn", ctx, actor, reviewID)
	ret0, _ := ret[0].(*queries.ReviewView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetOwn indicates an expected call of GetOwn.
func (mr *MockReviewQueriesMockRecorder) GetOwn(ctx, actor, reviewID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetOwn", reflect.TypeOf((*MockReviewQueries)(nil).GetOwn), ctx, actor, reviewID)
}

// ListForRestaurant mocks base method.
func (m *MockReviewQueries) ListForRestaurant(ctx context.Context, actor shared.Actor, restaurantID int64, page queries.PageRequest) (queries.Page[*queries.ReviewView], error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListForRestaurant", ctx, actor, restaurantID, page)
	ret0, _ := ret[0].(queries.Page[*queries.ReviewView])
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListForRestaurant indicates an expected call of ListForRestaurant.
func (mr *MockReviewQueriesMockRecorder) ListForRestaurant(ctx, actor, restaurantID, page any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListForRestaurant", reflect.TypeOf((*MockReviewQueries)(nil).ListForRestaurant), ctx, actor, restaurantID, page)
}
