// Code generated by MockGen. DO NOT EDIT.
// Source: ports.go
//
// Generated by this command:
//
//	mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock
//

// Package commandsmock is a generated GoMock package.
package commandsmock

import (
	context "context"
	io "io"
	user "nagoyameshi/internal/domain/user"
	jwt "nagoyameshi/internal/pkg/jwt"
	commands "nagoyameshi/internal/usecase/commands"
	reflect "reflect"
	time "time"

	gomock "go.uber.org/mock/gomock"
)

// MockBillingGateway is a mock of BillingGateway interface.
type MockBillingGateway struct {
	ctrl     *gomock.Controller
	recorder *MockBillingGatewayMockRecorder
	isgomock struct{}
}

// MockBillingGatewayMockRecorder is the mock recorder for MockBillingGateway.
type MockBillingGatewayMockRecorder struct {
	mock *MockBillingGateway
}

// NewMockBillingGateway creates a new mock instance.
func NewMockBillingGateway(ctrl *gomock.Controller) *MockBillingGateway {
	mock := &MockBillingGateway{ctrl: ctrl}
	mock.recorder = &MockBillingGatewayMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBillingGateway) EXPECT() *MockBillingGatewayMockRecorder {
	return m.recorder
}

// AttachPaymentMethod mocks base method.
func (m *MockBillingGateway) AttachPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AttachPaymentMethod", ctx, customerID, paymentMethodID)
	ret0, _ := ret[0].(error)
	return ret0
}

// AttachPaymentMethod indicates an expected call of AttachPaymentMethod.
func (mr *MockBillingGatewayMockRecorder) AttachPaymentMethod(ctx, customerID, paymentMethodID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AttachPaymentMethod", reflect.TypeOf((*MockBillingGateway)(nil).AttachPaymentMethod), ctx, customerID, paymentMethodID)
}

// CancelSubscription mocks base method.
func (m *MockBillingGateway) CancelSubscription(ctx context.Context, subscriptionID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CancelSubscription", ctx, subscriptionID)
	ret0, _ := ret[0].(error)
	return ret0
}

// CancelSubscription indicates an expected call of CancelSubscription.
func (mr *MockBillingGatewayMockRecorder) CancelSubscription(ctx, subscriptionID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CancelSubscription", reflect.TypeOf((*MockBillingGateway)(nil).CancelSubscription), ctx, subscriptionID)
}

// CreateCustomer mocks base method.
func (m *MockBillingGateway) CreateCustomer(ctx context.Context, email, name string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateCustomer", ctx, email, name)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateCustomer indicates an expected call of CreateCustomer.
func (mr *MockBillingGatewayMockRecorder) CreateCustomer(ctx, email, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateCustomer", reflect.TypeOf((*MockBillingGateway)(nil).CreateCustomer), ctx, email, name)
}

// CreateSubscription mocks base method.
func (m *MockBillingGateway) CreateSubscription(ctx context.Context, customerID, priceID string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateSubscription", ctx, customerID, priceID)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateSubscription indicates an expected call of CreateSubscription.
func (mr *MockBillingGatewayMockRecorder) CreateSubscription(ctx, customerID, priceID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateSubscription", reflect.TypeOf((*MockBillingGateway)(nil).CreateSubscription), ctx, customerID, priceID)
}

// DefaultPaymentMethod mocks base method.
func (m *MockBillingGateway) DefaultPaymentMethod(ctx context.Context, customerID string) (*commands.PaymentMethodSummary, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DefaultPaymentMethod", ctx, customerID)
	ret0, _ := ret[0].(*commands.PaymentMethodSummary)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DefaultPaymentMethod indicates an expected call of DefaultPaymentMethod.
func (mr *MockBillingGatewayMockRecorder) DefaultPaymentMethod(ctx, customerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DefaultPaymentMethod", reflect.TypeOf((*MockBillingGateway)(nil).DefaultPaymentMethod), ctx, customerID)
}

// DetachPaymentMethod mocks base method.
func (m *MockBillingGateway) DetachPaymentMethod(ctx context.Context, paymentMethodID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DetachPaymentMethod", ctx, paymentMethodID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DetachPaymentMethod indicates an expected call of DetachPaymentMethod.
func (mr *MockBillingGatewayMockRecorder) DetachPaymentMethod(ctx, paymentMethodID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DetachPaymentMethod", reflect.TypeOf((*MockBillingGateway)(nil).DetachPaymentMethod), ctx, paymentMethodID)
}

// ListActiveSubscriptions mocks base method.
func (m *MockBillingGateway) ListActiveSubscriptions(ctx context.Context, customerID string) ([]string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListActiveSubscriptions", ctx, customerID)
	ret0, _ := ret[0].([]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListActiveSubscriptions indicates an expected call of ListActiveSubscriptions.
func (mr *MockBillingGatewayMockRecorder) ListActiveSubscriptions(ctx, customerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListActiveSubscriptions", reflect.TypeOf((*MockBillingGateway)(nil).ListActiveSubscriptions), ctx, customerID)
}

// SetDefaultPaymentMethod mocks base method.
func (m *MockBillingGateway) SetDefaultPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetDefaultPaymentMethod", ctx, customerID, paymentMethodID)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetDefaultPaymentMethod indicates an expected call of SetDefaultPaymentMethod.
func (mr *MockBillingGatewayMockRecorder) SetDefaultPaymentMethod(ctx, customerID, paymentMethodID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetDefaultPaymentMethod", reflect.TypeOf((*MockBillingGateway)(nil).SetDefaultPaymentMethod), ctx, customerID, paymentMethodID)
}

// MockImageStore is a mock of ImageStore interface.
type MockImageStore struct {
	ctrl     *gomock.Controller
	recorder *MockImageStoreMockRecorder
	isgomock struct{}
}

// MockImageStoreMockRecorder is the mock recorder for MockImageStore.
type MockImageStoreMockRecorder struct {
	mock *MockImageStore
}

// NewMockImageStore creates a new mock instance.
func NewMockImageStore(ctrl *gomock.Controller) *MockImageStore {
	mock := &MockImageStore{ctrl: ctrl}
	mock.recorder = &MockImageStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockImageStore) EXPECT() *MockImageStoreMockRecorder {
	return m.recorder
}

// Save mocks base method.
func (m *MockImageStore) Save(ctx context.Context, originalFilename, contentType string, body io.Reader) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Save", ctx, originalFilename, contentType, body)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Save indicates an expected call of Save.
func (mr *MockImageStoreMockRecorder) Save(ctx, originalFilename, contentType, body any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Save", reflect.TypeOf((*MockImageStore)(nil).Save), ctx, originalFilename, contentType, body)
}

// MockTokenRevoker is a mock of TokenRevoker interface.
type MockTokenRevoker struct {
	ctrl     *gomock.Controller
	recorder *MockTokenRevokerMockRecorder
	isgomock struct{}
}

// MockTokenRevokerMockRecorder is the mock recorder for MockTokenRevoker.
type MockTokenRevokerMockRecorder struct {
	mock *MockTokenRevoker
}

// NewMockTokenRevoker creates a new mock instance.
func NewMockTokenRevoker(ctrl *gomock.Controller) *MockTokenRevoker {
	mock := &MockTokenRevoker{ctrl: ctrl}
	mock.recorder = &MockTokenRevokerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTokenRevoker) EXPECT() *MockTokenRevokerMockRecorder {
	return m.recorder
}

// IsRevoked mocks base method.
func (m *MockTokenRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsRevoked", ctx, tokenID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// IsRevoked indicates an expected call of IsRevoked.
func (mr *MockTokenRevokerMockRecorder) IsRevoked(ctx, tokenID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsRevoked", reflect.TypeOf((*MockTokenRevoker)(nil).IsRevoked), ctx, tokenID)
}

// IssuedBeforeCutoff mocks base method.
func (m *MockTokenRevoker) IssuedBeforeCutoff(ctx context.Context, userID int64, issuedAt time.Time) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IssuedBeforeCutoff", ctx, userID, issuedAt)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// IssuedBeforeCutoff indicates an expected call of IssuedBeforeCutoff.
func (mr *MockTokenRevokerMockRecorder) IssuedBeforeCutoff(ctx, userID, issuedAt any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IssuedBeforeCutoff", reflect.TypeOf((*MockTokenRevoker)(nil).IssuedBeforeCutoff), ctx, userID, issuedAt)
}

// Revoke mocks base method.
func (m *MockTokenRevoker) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Revoke", ctx, tokenID, until)
	ret0, _ := ret[0].(error)
	return ret0
}

// Revoke indicates an expected call of Revoke.
func (mr *MockTokenRevokerMockRecorder) Revoke(ctx, tokenID, until any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Revoke", reflect.TypeOf((*MockTokenRevoker)(nil).Revoke), ctx, tokenID, until)
}

// RevokeIssuedBefore mocks base method.
func (m *MockTokenRevoker) RevokeIssuedBefore(ctx context.Context, userID int64, cutoff, until time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RevokeIssuedBefore", ctx, userID, cutoff, until)
	ret0, _ := ret[0].(error)
	return ret0
}

// RevokeIssuedBefore indicates an expected call of RevokeIssuedBefore.
func (mr *MockTokenRevokerMockRecorder) RevokeIssuedBefore(ctx, userID, cutoff, until any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RevokeIssuedBefore", reflect.TypeOf((*MockTokenRevoker)(nil).RevokeIssuedBefore), ctx, userID, cutoff, until)
}

// MockTokenIssuer is a mock of TokenIssuer interface.
type MockTokenIssuer struct {
	ctrl     *gomock.Controller
	recorder *MockTokenIssuerMockRecorder
	isgomock struct{}
}

// MockTokenIssuerMockRecorder is the mock recorder for MockTokenIssuer.
type MockTokenIssuerMockRecorder struct {
	mock *MockTokenIssuer
}

// NewMockTokenIssuer creates a new mock instance.
func NewMockTokenIssuer(ctrl *gomock.Controller) *MockTokenIssuer {
	mock := &MockTokenIssuer{ctrl: ctrl}
	mock.recorder = &MockTokenIssuerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTokenIssuer) EXPECT() *MockTokenIssuerMockRecorder {
	return m.recorder
}

// GenerateTokenPair mocks base method.
func (m *MockTokenIssuer) GenerateTokenPair(userID int64, role user.Role) (jwt.TokenPair, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GenerateTokenPair", userID, role)
	ret0, _ := ret[0].(jwt.TokenPair)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GenerateTokenPair indicates an expected call of GenerateTokenPair.
func (mr *MockTokenIssuerMockRecorder) GenerateTokenPair(userID, role any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GenerateTokenPair", reflect.TypeOf((*MockTokenIssuer)(nil).GenerateTokenPair), userID, role)
}

// ValidateTyped mocks base method.
func (m *MockTokenIssuer) ValidateTyped(token string, typ jwt.TokenType) (*jwt.Claims, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ValidateTyped", token, typ)
	ret0, _ := ret[0].(*jwt.Claims)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ValidateTyped indicates an expected call of ValidateTyped.
func (mr *MockTokenIssuerMockRecorder) ValidateTyped(token, typ any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ValidateTyped", reflect.TypeOf((*MockTokenIssuer)(nil).ValidateTyped), token, typ)
}
