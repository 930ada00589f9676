// Code generated by MockGen. DO NOT EDIT.
// Source: uow.go
//
// Generated by this command:
//
//	mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock
//

// Package sharedmock is a generated GoMock package.
package sharedmock

import (
	context "context"
	association "nagoyameshi/internal/domain/association"
	category "nagoyameshi/internal/domain/category"
	content "nagoyameshi/internal/domain/content"
	favorite "nagoyameshi/internal/domain/favorite"
	reservation "nagoyameshi/internal/domain/reservation"
	restaurant "nagoyameshi/internal/domain/restaurant"
	review "nagoyameshi/internal/domain/review"
	user "nagoyameshi/internal/domain/user"
	infra "nagoyameshi/internal/infra"
	shared "nagoyameshi/internal/usecase/shared"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockUnitOfWork is a mock of UnitOfWork interface.
type MockUnitOfWork struct {
	ctrl     *gomock.Controller
	recorder *MockUnitOfWorkMockRecorder
	isgomock struct{}
}

// MockUnitOfWorkMockRecorder is the mock recorder for MockUnitOfWork.
type MockUnitOfWorkMockRecorder struct {
	mock *MockUnitOfWork
}

// NewMockUnitOfWork creates a new mock instance.
func NewMockUnitOfWork(ctrl *gomock.Controller) *MockUnitOfWork {
	mock := &MockUnitOfWork{ctrl: ctrl}
	mock.recorder = &MockUnitOfWorkMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockUnitOfWork) EXPECT() *MockUnitOfWorkMockRecorder {
	return m.recorder
}

// CommandReads mocks base method.
func (m *MockUnitOfWork) CommandReads() shared.CommandReads {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CommandReads")
	ret0, _ := ret[0].(shared.CommandReads)
	return ret0
}

// CommandReads indicates an expected call of CommandReads.
func (mr *MockUnitOfWorkMockRecorder) CommandReads() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CommandReads", reflect.TypeOf((*MockUnitOfWork)(nil).CommandReads))
}

// Within mocks base method.
func (m *MockUnitOfWork) Within(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Within", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// Within indicates an expected call of Within.
func (mr *MockUnitOfWorkMockRecorder) Within(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Within", reflect.TypeOf((*MockUnitOfWork)(nil).Within), ctx, fn)
}

// WithinReadOnly mocks base method.
func (m *MockUnitOfWork) WithinReadOnly(ctx context.Context, fn func(context.Context, infra.DBTX) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WithinReadOnly", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// WithinReadOnly indicates an expected call of WithinReadOnly.
func (mr *MockUnitOfWorkMockRecorder) WithinReadOnly(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WithinReadOnly", reflect.TypeOf((*MockUnitOfWork)(nil).WithinReadOnly), ctx, fn)
}

// MockTx is a mock of Tx interface.
type MockTx struct {
	ctrl     *gomock.Controller
	recorder *MockTxMockRecorder
	isgomock struct{}
}

// MockTxMockRecorder is the mock recorder for MockTx.
type MockTxMockRecorder struct {
	mock *MockTx
}

// NewMockTx creates a new mock instance.
func NewMockTx(ctrl *gomock.Controller) *MockTx {
	mock := &MockTx{ctrl: ctrl}
	mock.recorder = &MockTxMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTx) EXPECT() *MockTxMockRecorder {
	return m.recorder
}

// Categories mocks base method.
func (m *MockTx) Categories() shared.CategoryRepository {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Categories")
	ret0, _ := ret[0].(shared.CategoryRepository)
	return ret0
}

// Categories indicates an expected call of Categories.
func (mr *MockTxMockRecorder) Categories() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Categories", reflect.TypeOf((*MockTx)(nil).Categories))
}

// Contents mocks base method.
func (m *MockTx) Contents() shared.ContentRepository {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Contents")
	ret0, _ := ret[0].(shared.ContentRepository)
	return ret0
}

// Contents indicates an expected call of Contents.
func (mr *MockTxMockRecorder) Contents() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Contents", reflect.TypeOf((*MockTx)(nil).Contents))
}

// Favorites mocks base method.
func (m *MockTx) Favorites() shared.FavoriteRepository {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Favorites")
	ret0, _ := ret[0].(shared.FavoriteRepository)
	return ret0
}

// Favorites indicates an expected call of Favorites.
func (mr *MockTxMockRecorder) Favorites() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Favorites", reflect.TypeOf((*MockTx)(nil).Favorites))
}

// Reads mocks base method.
func (m *MockTx) Reads() shared.CommandReads {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Reads")
	ret0, _ := ret[0].(shared.CommandReads)
	return ret0
}

// Reads indicates an expected call of Reads.
func (mr *MockTxMockRecorder) Reads() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Reads", reflect.TypeOf((*MockTx)(nil).Reads))
}

// Reservations mocks base method.
func (m *MockTx) Reservations() shared.ReservationRepository {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Reservations")
	ret0, _ := ret[0].(shared.ReservationRepository)
	return ret0
}

// Reservations indicates an expected call of Reservations.
func (mr *MockTxMockRecorder) Reservations() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Reservations", reflect.TypeOf((*MockTx)(nil).Reservations))
}

// Restaurants mocks base method.
func (m *MockTx) Restaurants() shared.RestaurantRepository {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Restaurants")
	ret0, _ := ret[0].(shared.RestaurantRepository)
	return ret0
}

// Restaurants indicates an expected call of Restaurants.
func (mr *MockTxMockRecorder) Restaurants() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Restaurants", reflect.TypeOf((*MockTx)(nil).Restaurants))
}

// Reviews mocks base method.
func (m *MockTx) Reviews() shared.ReviewRepository {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Reviews")
	ret0, _ := ret[0].(shared.ReviewRepository)
	return ret0
}

// Reviews indicates an expected call of Reviews.
func (mr *MockTxMockRecorder) Reviews() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Reviews", reflect.TypeOf((*MockTx)(nil).Reviews))
}

// Users mocks base method.
func (m *MockTx) Users() shared.UserRepository {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Users")
	ret0, _ := ret[0].(shared.UserRepository)
	return ret0
}

// Users indicates an expected call of Users.
func (mr *MockTxMockRecorder) Users() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Users", reflect.TypeOf((*MockTx)(nil).Users))
}

// MockCommandReads is a mock of CommandReads interface.
type MockCommandReads struct {
	ctrl     *gomock.Controller
	recorder *MockCommandReadsMockRecorder
	isgomock struct{}
}

// MockCommandReadsMockRecorder is the mock recorder for MockCommandReads.
type MockCommandReadsMockRecorder struct {
	mock *MockCommandReads
}

// NewMockCommandReads creates a new mock instance.
func NewMockCommandReads(ctrl *gomock.Controller) *MockCommandReads {
	mock := &MockCommandReads{ctrl: ctrl}
	mock.recorder = &MockCommandReadsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCommandReads) EXPECT() *MockCommandReadsMockRecorder {
	return m.recorder
}

// CategoryByID mocks base method.
func (m *MockCommandReads) CategoryByID(ctx context.Context, id int64) (*category.Category, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CategoryByID", ctx, id)
	ret0, _ := ret[0].(*category.Category)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CategoryByID indicates an expected call of CategoryByID.
func (mr *MockCommandReadsMockRecorder) CategoryByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CategoryByID", reflect.TypeOf((*MockCommandReads)(nil).CategoryByID), ctx, id)
}

// CategoryNameTaken mocks base method.
func (m *MockCommandReads) CategoryNameTaken(ctx context.Context, name string, excludeID int64) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CategoryNameTaken", ctx, name, excludeID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CategoryNameTaken indicates an expected call of CategoryNameTaken.
func (mr *MockCommandReadsMockRecorder) CategoryNameTaken(ctx, name, excludeID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CategoryNameTaken", reflect.TypeOf((*MockCommandReads)(nil).CategoryNameTaken), ctx, name, excludeID)
}

// EmailTaken mocks base method.
func (m *MockCommandReads) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "EmailTaken", ctx, email, excludeID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// EmailTaken indicates an expected call of EmailTaken.
func (mr *MockCommandReadsMockRecorder) EmailTaken(ctx, email, excludeID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EmailTaken", reflect.TypeOf((*MockCommandReads)(nil).EmailTaken), ctx, email, excludeID)
}

// FavoriteByID mocks base method.
func (m *MockCommandReads) FavoriteByID(ctx context.Context, id int64) (*favorite.Favorite, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FavoriteByID", ctx, id)
	ret0, _ := ret[0].(*favorite.Favorite)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FavoriteByID indicates an expected call of FavoriteByID.
func (mr *MockCommandReadsMockRecorder) FavoriteByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FavoriteByID", reflect.TypeOf((*MockCommandReads)(nil).FavoriteByID), ctx, id)
}

// FavoriteFor mocks base method.
func (m *MockCommandReads) FavoriteFor(ctx context.Context, userID, restaurantID int64) (*favorite.Favorite, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FavoriteFor", ctx, userID, restaurantID)
	ret0, _ := ret[0].(*favorite.Favorite)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FavoriteFor indicates an expected call of FavoriteFor.
func (mr *MockCommandReadsMockRecorder) FavoriteFor(ctx, userID, restaurantID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FavoriteFor", reflect.TypeOf((*MockCommandReads)(nil).FavoriteFor), ctx, userID, restaurantID)
}

// KnownCategoryIDs mocks base method.
func (m *MockCommandReads) KnownCategoryIDs(ctx context.Context, ids []int64) (association.IDSet, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "KnownCategoryIDs", ctx, ids)
	ret0, _ := ret[0].(association.IDSet)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// KnownCategoryIDs indicates an expected call of KnownCategoryIDs.
func (mr *MockCommandReadsMockRecorder) KnownCategoryIDs(ctx, ids any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "KnownCategoryIDs", reflect.TypeOf((*MockCommandReads)(nil).KnownCategoryIDs), ctx, ids)
}

// KnownHolidayIDs mocks base method.
func (m *MockCommandReads) KnownHolidayIDs(ctx context.Context, ids []int64) (association.IDSet, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "KnownHolidayIDs", ctx, ids)
	ret0, _ := ret[0].(association.IDSet)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// KnownHolidayIDs indicates an expected call of KnownHolidayIDs.
func (mr *MockCommandReadsMockRecorder) KnownHolidayIDs(ctx, ids any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "KnownHolidayIDs", reflect.TypeOf((*MockCommandReads)(nil).KnownHolidayIDs), ctx, ids)
}

// ReservationByID mocks base method.
func (m *MockCommandReads) ReservationByID(ctx context.Context, id int64) (*shared.ReservationSnapshot, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReservationByID", ctx, id)
	ret0, _ := ret[0].(*shared.ReservationSnapshot)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ReservationByID indicates an expected call of ReservationByID.
func (mr *MockCommandReadsMockRecorder) ReservationByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReservationByID", reflect.TypeOf((*MockCommandReads)(nil).ReservationByID), ctx, id)
}

// RestaurantByID mocks base method.
func (m *MockCommandReads) RestaurantByID(ctx context.Context, id int64) (*restaurant.Restaurant, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RestaurantByID", ctx, id)
	ret0, _ := ret[0].(*restaurant.Restaurant)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RestaurantByID indicates an expected call of RestaurantByID.
func (mr *MockCommandReadsMockRecorder) RestaurantByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RestaurantByID", reflect.TypeOf((*MockCommandReads)(nil).RestaurantByID), ctx, id)
}

// ReviewByID mocks base method.
func (m *MockCommandReads) ReviewByID(ctx context.Context, id int64) (*review.Review, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReviewByID", ctx, id)
	ret0, _ := ret[0].(*review.Review)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ReviewByID indicates an expected call of ReviewByID.
func (mr *MockCommandReadsMockRecorder) ReviewByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReviewByID", reflect.TypeOf((*MockCommandReads)(nil).ReviewByID), ctx, id)
}

// ReviewExists mocks base method.
func (m *MockCommandReads) ReviewExists(ctx context.Context, userID, restaurantID int64) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReviewExists", ctx, userID, restaurantID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ReviewExists indicates an expected call of ReviewExists.
func (mr *MockCommandReadsMockRecorder) ReviewExists(ctx, userID, restaurantID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReviewExists", reflect.TypeOf((*MockCommandReads)(nil).ReviewExists), ctx, userID, restaurantID)
}

// UserByEmail mocks base method.
func (m *MockCommandReads) UserByEmail(ctx context.Context, email string) (*user.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UserByEmail", ctx, email)
	ret0, _ := ret[0].(*user.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UserByEmail indicates an expected call of UserByEmail.
func (mr *MockCommandReadsMockRecorder) UserByEmail(ctx, email any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UserByEmail", reflect.TypeOf((*MockCommandReads)(nil).UserByEmail), ctx, email)
}

// UserByID mocks base method.
func (m *MockCommandReads) UserByID(ctx context.Context, id int64) (*user.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UserByID", ctx, id)
	ret0, _ := ret[0].(*user.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UserByID indicates an expected call of UserByID.
func (mr *MockCommandReadsMockRecorder) UserByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UserByID", reflect.TypeOf((*MockCommandReads)(nil).UserByID), ctx, id)
}

// MockRestaurantRepository is a mock of RestaurantRepository interface.
type MockRestaurantRepository struct {
	ctrl     *gomock.Controller
	recorder *MockRestaurantRepositoryMockRecorder
	isgomock struct{}
}

// MockRestaurantRepositoryMockRecorder is the mock recorder for MockRestaurantRepository.
type MockRestaurantRepositoryMockRecorder struct {
	mock *MockRestaurantRepository
}

// NewMockRestaurantRepository creates a new mock instance.
func NewMockRestaurantRepository(ctrl *gomock.Controller) *MockRestaurantRepository {
	mock := &MockRestaurantRepository{ctrl: ctrl}
	mock.recorder = &MockRestaurantRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRestaurantRepository) EXPECT() *MockRestaurantRepositoryMockRecorder {
	return m.recorder
}

// CategoryLinks mocks base method.
func (m *MockRestaurantRepository) CategoryLinks(ctx context.Context, restaurantID int64) ([]association.Link, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CategoryLinks", ctx, restaurantID)
	ret0, _ := ret[0].([]association.Link)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CategoryLinks indicates an expected call of CategoryLinks.
func (mr *MockRestaurantRepositoryMockRecorder) CategoryLinks(ctx, restaurantID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CategoryLinks", reflect.TypeOf((*MockRestaurantRepository)(nil).CategoryLinks), ctx, restaurantID)
}

// Create mocks base method.
func (m *MockRestaurantRepository) Create(ctx context.Context, r *restaurant.Restaurant) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, r)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockRestaurantRepositoryMockRecorder) Create(ctx, r any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockRestaurantRepository)(nil).Create), ctx, r)
}

// Delete mocks base method.
func (m *MockRestaurantRepository) Delete(ctx context.Context, id int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockRestaurantRepositoryMockRecorder) Delete(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockRestaurantRepository)(nil).Delete), ctx, id)
}

// DeleteCategoryLinks mocks base method.
func (m *MockRestaurantRepository) DeleteCategoryLinks(ctx context.Context, linkIDs []int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteCategoryLinks", ctx, linkIDs)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteCategoryLinks indicates an expected call of DeleteCategoryLinks.
func (mr *MockRestaurantRepositoryMockRecorder) DeleteCategoryLinks(ctx, linkIDs any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteCategoryLinks", reflect.TypeOf((*MockRestaurantRepository)(nil).DeleteCategoryLinks), ctx, linkIDs)
}

// DeleteHolidayLinks mocks base method.
func (m *MockRestaurantRepository) DeleteHolidayLinks(ctx context.Context, linkIDs []int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteHolidayLinks", ctx, linkIDs)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteHolidayLinks indicates an expected call of DeleteHolidayLinks.
func (mr *MockRestaurantRepositoryMockRecorder) DeleteHolidayLinks(ctx, linkIDs any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteHolidayLinks", reflect.TypeOf((*MockRestaurantRepository)(nil).DeleteHolidayLinks), ctx, linkIDs)
}

// HolidayLinks mocks base method.
func (m *MockRestaurantRepository) HolidayLinks(ctx context.Context, restaurantID int64) ([]association.Link, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HolidayLinks", ctx, restaurantID)
	ret0, _ := ret[0].([]association.Link)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HolidayLinks indicates an expected call of HolidayLinks.
func (mr *MockRestaurantRepositoryMockRecorder) HolidayLinks(ctx, restaurantID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HolidayLinks", reflect.TypeOf((*MockRestaurantRepository)(nil).HolidayLinks), ctx, restaurantID)
}

// InsertCategoryLinks mocks base method.
func (m *MockRestaurantRepository) InsertCategoryLinks(ctx context.Context, restaurantID int64, categoryIDs []int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InsertCategoryLinks", ctx, restaurantID, categoryIDs)
	ret0, _ := ret[0].(error)
	return ret0
}

// InsertCategoryLinks indicates an expected call of InsertCategoryLinks.
func (mr *MockRestaurantRepositoryMockRecorder) InsertCategoryLinks(ctx, restaurantID, categoryIDs any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InsertCategoryLinks", reflect.TypeOf((*MockRestaurantRepository)(nil).InsertCategoryLinks), ctx, restaurantID, categoryIDs)
}

// InsertHolidayLinks mocks base method.
func (m *MockRestaurantRepository) InsertHolidayLinks(ctx context.Context, restaurantID int64, holidayIDs []int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InsertHolidayLinks", ctx, restaurantID, holidayIDs)
	ret0, _ := ret[0].(error)
	return ret0
}

// InsertHolidayLinks indicates an expected call of InsertHolidayLinks.
func (mr *MockRestaurantRepositoryMockRecorder) InsertHolidayLinks(ctx, restaurantID, holidayIDs any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InsertHolidayLinks", reflect.TypeOf((*MockRestaurantRepository)(nil).InsertHolidayLinks), ctx, restaurantID, holidayIDs)
}

// Update mocks base method.
func (m *MockRestaurantRepository) Update(ctx context.Context, r *restaurant.Restaurant) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, r)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockRestaurantRepositoryMockRecorder) Update(ctx, r any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockRestaurantRepository)(nil).Update), ctx, r)
}

// MockCategoryRepository is a mock of CategoryRepository interface.
type MockCategoryRepository struct {
	ctrl     *gomock.Controller
	recorder *MockCategoryRepositoryMockRecorder
	isgomock struct{}
}

// MockCategoryRepositoryMockRecorder is the mock recorder for MockCategoryRepository.
type MockCategoryRepositoryMockRecorder struct {
	mock *MockCategoryRepository
}

// NewMockCategoryRepository creates a new mock instance.
func NewMockCategoryRepository(ctrl *gomock.Controller) *MockCategoryRepository {
	mock := &MockCategoryRepository{ctrl: ctrl}
	mock.recorder = &MockCategoryRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCategoryRepository) EXPECT() *MockCategoryRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockCategoryRepository) Create(ctx context.Context, c *category.Category) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, c)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockCategoryRepositoryMockRecorder) Create(ctx, c any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockCategoryRepository)(nil).Create), ctx, c)
}

// Delete mocks base method.
func (m *MockCategoryRepository) Delete(ctx context.Context, id int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockCategoryRepositoryMockRecorder) Delete(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockCategoryRepository)(nil).Delete), ctx, id)
}

// Update mocks base method.
func (m *MockCategoryRepository) Update(ctx context.Context, c *category.Category) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, c)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockCategoryRepositoryMockRecorder) Update(ctx, c any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockCategoryRepository)(nil).Update), ctx, c)
}

// MockReservationRepository is a mock of ReservationRepository interface.
type MockReservationRepository struct {
	ctrl     *gomock.Controller
	recorder *MockReservationRepositoryMockRecorder
	isgomock struct{}
}

// MockReservationRepositoryMockRecorder is the mock recorder for MockReservationRepository.
type MockReservationRepositoryMockRecorder struct {
	mock *MockReservationRepository
}

// NewMockReservationRepository creates a new mock instance.
func NewMockReservationRepository(ctrl *gomock.Controller) *MockReservationRepository {
	mock := &MockReservationRepository{ctrl: ctrl}
	mock.recorder = &MockReservationRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReservationRepository) EXPECT() *MockReservationRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockReservationRepository) Create(ctx context.Context, r *reservation.Reservation) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, r)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockReservationRepositoryMockRecorder) Create(ctx, r any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockReservationRepository)(nil).Create), ctx, r)
}

// Delete mocks base method.
func (m *MockReservationRepository) Delete(ctx context.Context, id int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockReservationRepositoryMockRecorder) Delete(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockReservationRepository)(nil).Delete), ctx, id)
}

// MockReviewRepository is a mock of ReviewRepository interface.
type MockReviewRepository struct {
	ctrl     *gomock.Controller
	recorder *MockReviewRepositoryMockRecorder
	isgomock struct{}
}

// MockReviewRepositoryMockRecorder is the mock recorder for MockReviewRepository.
type MockReviewRepositoryMockRecorder struct {
	mock *MockReviewRepository
}

// NewMockReviewRepository creates a new mock instance.
func NewMockReviewRepository(ctrl *gomock.Controller) *MockReviewRepository {
	mock := &MockReviewRepository{ctrl: ctrl}
	mock.recorder = &MockReviewRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReviewRepository) EXPECT() *MockReviewRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockReviewRepository) Create(ctx context.Context, r *review.Review) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, r)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockReviewRepositoryMockRecorder) Create(ctx, r any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockReviewRepository)(nil).Create), ctx, r)
}

// Delete mocks base method.
func (m *MockReviewRepository) Delete(ctx context.Context, id int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockReviewRepositoryMockRecorder) Delete(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockReviewRepository)(nil).Delete), ctx, id)
}

// Update mocks base method.
func (m *MockReviewRepository) Update(ctx context.Context, r *review.Review) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, r)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockReviewRepositoryMockRecorder) Update(ctx, r any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockReviewRepository)(nil).Update), ctx, r)
}

// MockFavoriteRepository is a mock of FavoriteRepository interface.
type MockFavoriteRepository struct {
	ctrl     *gomock.Controller
	recorder *MockFavoriteRepositoryMockRecorder
	isgomock struct{}
}

// MockFavoriteRepositoryMockRecorder is the mock recorder for MockFavoriteRepository.
type MockFavoriteRepositoryMockRecorder struct {
	mock *MockFavoriteRepository
}

// NewMockFavoriteRepository creates a new mock instance.
func NewMockFavoriteRepository(ctrl *gomock.Controller) *MockFavoriteRepository {
	mock := &MockFavoriteRepository{ctrl: ctrl}
	mock.recorder = &MockFavoriteRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockFavoriteRepository) EXPECT() *MockFavoriteRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockFavoriteRepository) Create(ctx context.Context, f *favorite.Favorite) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, f)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockFavoriteRepositoryMockRecorder) Create(ctx, f any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockFavoriteRepository)(nil).Create), ctx, f)
}

// Delete mocks base method.
func (m *MockFavoriteRepository) Delete(ctx context.Context, id int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockFavoriteRepositoryMockRecorder) Delete(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockFavoriteRepository)(nil).Delete), ctx, id)
}

// MockUserRepository is a mock of UserRepository interface.
type MockUserRepository struct {
	ctrl     *gomock.Controller
	recorder *MockUserRepositoryMockRecorder
	isgomock struct{}
}

// MockUserRepositoryMockRecorder is the mock recorder for MockUserRepository.
type MockUserRepositoryMockRecorder struct {
	mock *MockUserRepository
}

// NewMockUserRepository creates a new mock instance.
func NewMockUserRepository(ctrl *gomock.Controller) *MockUserRepository {
	mock := &MockUserRepository{ctrl: ctrl}
	mock.recorder = &MockUserRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockUserRepository) EXPECT() *MockUserRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockUserRepository) Create(ctx context.Context, u *user.User) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, u)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockUserRepositoryMockRecorder) Create(ctx, u any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockUserRepository)(nil).Create), ctx, u)
}

// SetBillingCustomerID mocks base method.
func (m *MockUserRepository) SetBillingCustomerID(ctx context.Context, userID int64, customerID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetBillingCustomerID", ctx, userID, customerID)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetBillingCustomerID indicates an expected call of SetBillingCustomerID.
func (mr *MockUserRepositoryMockRecorder) SetBillingCustomerID(ctx, userID, customerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetBillingCustomerID", reflect.TypeOf((*MockUserRepository)(nil).SetBillingCustomerID), ctx, userID, customerID)
}

// UpdateProfile mocks base method.
func (m *MockUserRepository) UpdateProfile(ctx context.Context, u *user.User) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateProfile", ctx, u)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateProfile indicates an expected call of UpdateProfile.
func (mr *MockUserRepositoryMockRecorder) UpdateProfile(ctx, u any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateProfile", reflect.TypeOf((*MockUserRepository)(nil).UpdateProfile), ctx, u)
}

// UpdateRole mocks base method.
func (m *MockUserRepository) UpdateRole(ctx context.Context, userID int64, role user.Role) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateRole", ctx, userID, role)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateRole indicates an expected call of UpdateRole.
func (mr *MockUserRepositoryMockRecorder) UpdateRole(ctx, userID, role any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateRole", reflect.TypeOf((*MockUserRepository)(nil).UpdateRole), ctx, userID, role)
}

// MockContentRepository is a mock of ContentRepository interface.
type MockContentRepository struct {
	ctrl     *gomock.Controller
	recorder *MockContentRepositoryMockRecorder
	isgomock struct{}
}

// MockContentRepositoryMockRecorder is the mock recorder for MockContentRepository.
type MockContentRepositoryMockRecorder struct {
	mock *MockContentRepository
}

// NewMockContentRepository creates a new mock instance.
func NewMockContentRepository(ctrl *gomock.Controller) *MockContentRepository {
	mock := &MockContentRepository{ctrl: ctrl}
	mock.recorder = &MockContentRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockContentRepository) EXPECT() *MockContentRepositoryMockRecorder {
	return m.recorder
}

// SaveCompany mocks base method.
func (m *MockContentRepository) SaveCompany(ctx context.Context, c content.Company) (*content.Company, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SaveCompany", ctx, c)
	ret0, _ := ret[0].(*content.Company)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SaveCompany indicates an expected call of SaveCompany.
func (mr *MockContentRepositoryMockRecorder) SaveCompany(ctx, c any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SaveCompany", reflect.TypeOf((*MockContentRepository)(nil).SaveCompany), ctx, c)
}

// SaveTerm mocks base method.
func (m *MockContentRepository) SaveTerm(ctx context.Context, body string) (*content.Term, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SaveTerm", ctx, body)
	ret0, _ := ret[0].(*content.Term)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SaveTerm indicates an expected call of SaveTerm.
func (mr *MockContentRepositoryMockRecorder) SaveTerm(ctx, body any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SaveTerm", reflect.TypeOf((*MockContentRepository)(nil).SaveTerm), ctx, body)
}
