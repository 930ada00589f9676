// Code generated by MockGen. DO NOT EDIT.
// Source: content.go
//
// Generated by this command:
//
//	mockgen -source=content.go -destination=../../../tests/mock/queries/content_mock.go -package=queriesmock
//

// Package queriesmock is a generated GoMock package.
package queriesmock

import (
	context "context"
	content "nagoyameshi/internal/domain/content"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockContentReadStore is a mock of ContentReadStore interface.
type MockContentReadStore struct {
	ctrl     *gomock.Controller
	recorder *MockContentReadStoreMockRecorder
	isgomock struct{}
}

// MockContentReadStoreMockRecorder is the mock recorder for MockContentReadStore.
type MockContentReadStoreMockRecorder struct {
	mock *MockContentReadStore
}

// NewMockContentReadStore creates a new mock instance.
func NewMockContentReadStore(ctrl *gomock.Controller) *MockContentReadStore {
	mock := &MockContentReadStore{ctrl: ctrl}
	mock.recorder = &MockContentReadStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockContentReadStore) EXPECT() *MockContentReadStoreMockRecorder {
	return m.recorder
}

// LatestCompany mocks base method.
func (m *MockContentReadStore) LatestCompany(ctx context.Context) (*content.Company, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LatestCompany", ctx)
	ret0, _ := ret[0].(*content.Company)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// LatestCompany indicates an expected call of LatestCompany.
func (mr *MockContentReadStoreMockRecorder) LatestCompany(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LatestCompany", reflect.TypeOf((*MockContentReadStore)(nil).LatestCompany), ctx)
}

// LatestTerm mocks base method.
func (m *MockContentReadStore) LatestTerm(ctx context.Context) (*content.Term, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LatestTerm", ctx)
	ret0, _ := ret[0].(*content.Term)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// LatestTerm indicates an expected call of LatestTerm.
func (mr *MockContentReadStoreMockRecorder) LatestTerm(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LatestTerm", reflect.TypeOf((*MockContentReadStore)(nil).LatestTerm), ctx)
}

// MockContentQueries is a mock of ContentQueries interface.
type MockContentQueries struct {
	ctrl     *gomock.Controller
	recorder *MockContentQueriesMockRecorder
	isgomock struct{}
}

// MockContentQueriesMockRecorder is the mock recorder for MockContentQueries.
type MockContentQueriesMockRecorder struct {
	mock *MockContentQueries
}

// NewMockContentQueries creates a new mock instance.
func NewMockContentQueries(ctrl *gomock.Controller) *MockContentQueries {
	mock := &MockContentQueries{ctrl: ctrl}
	mock.recorder = &MockContentQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockContentQueries) EXPECT() *MockContentQueriesMockRecorder {
	return m.recorder
}

// Company mocks base method.
func (m *MockContentQueries) Company(ctx context.Context) (*content.Company, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Company", ctx)
	ret0, _ := ret[0].(*content.Company)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Company indicates an expected call of Company.
func (mr *MockContentQueriesMockRecorder) Company(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Company", reflect.TypeOf((*MockContentQueries)(nil).Company), ctx)
}

// Term mocks base method.
func (m *MockContentQueries) Term(ctx context.Context) (*content.Term, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Term", ctx)
	ret0, _ := ret[0].(*content.Term)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Term indicates an expected call of Term.
func (mr *MockContentQueriesMockRecorder) Term(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Term", reflect.TypeOf((*MockContentQueries)(nil).Term), ctx)
}
