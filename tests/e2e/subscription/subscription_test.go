//go:build e2e

package subscription_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"nagoyameshi/internal/domain/user"
	"nagoyameshi/internal/handler/dto/request"
	resdto "nagoyameshi/internal/handler/dto/response"
	"nagoyameshi/internal/handler/middleware"
	"nagoyameshi/internal/usecase/queries"
	"nagoyameshi/tests/common/authtest"
	"nagoyameshi/tests/common/dbtest"
	"nagoyameshi/tests/common/httptest"
	"nagoyameshi/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	subscriptionURL  = "/api/subscription"
	paymentMethodURL = "/api/subscription/payment-method"
	meURL            = "/api/auth/me"
)

type subscriptionSuite struct {
	e2e.SharedSuite
}

func TestSubscriptionSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(subscriptionSuite))
}

func (s *subscriptionSuite) role(t *testing.T, userID int64) string {
	t.Helper()
	var role string
	require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT role FROM users WHERE id = $1", userID).Scan(&role))
	return role
}

func (s *subscriptionSuite) subscribe(t *testing.T, token, paymentMethodID string) resdto.TokenResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, subscriptionURL,
		request.PaymentMethodRequest{PaymentMethodID: paymentMethodID}, token)
	var tokens resdto.TokenResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &tokens)
	return tokens
}

func (s *subscriptionSuite) TestLifecycle() {
	s.Run("無料会員が登録し、カードを替え、解約する", func() {
		t := s.T()
		userID, token := authtest.CreateAndLogin(t, s.DB, s.Router, "free@example.com", user.RoleFreeMember)

		tokens := s.subscribe(t, token, "pm_first")
		require.Equal(t, string(user.RolePaidMember), s.role(t, userID))

		var customerID *string
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT billing_customer_id FROM users WHERE id = $1", userID).Scan(&customerID))
		require.NotNil(t, customerID)

		// the pre-upgrade token is revoked; the reissued one carries the paid role
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertRedirect(t, w, middleware.LoginPath)

		paid := tokens.AccessToken
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, paid)
		var me queries.UserView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &me)
		require.Equal(t, user.RolePaidMember, me.Role)

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, paymentMethodURL,
			request.PaymentMethodRequest{PaymentMethodID: "pm_second"}, paid)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
		require.Equal(t, []string{"pm_first"}, s.Billing.Detached)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, subscriptionURL, nil, paid)
		var summary resdto.SubscriptionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &summary)
		require.NotNil(t, summary.PaymentMethod)
		require.Equal(t, "pm_second", summary.PaymentMethod.ID)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, subscriptionURL, nil, paid)
		var downgraded resdto.TokenResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &downgraded)
		require.Equal(t, string(user.RoleFreeMember), s.role(t, userID))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, subscriptionURL, nil, downgraded.AccessToken)
		httptest.AssertRedirect(t, w, middleware.SubscriptionRegisterPath)
	})
}

func (s *subscriptionSuite) TestCancelRetiresOtherSessions() {
	s.Run("解約すると別端末の有料トークンも使えなくなる", func() {
		t := s.T()
		userID, laptop := authtest.CreateAndLogin(t, s.DB, s.Router, "paid@example.com", user.RolePaidMember)
		dbtest.SetBillingCustomer(t, s.DB, userID, "cus_paid")
		phone := authtest.LoginUser(t, s.Router, "paid@example.com", dbtest.TestPassword)

		// iat has second precision; the cutoff must land in a later second
		time.Sleep(1100 * time.Millisecond)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, subscriptionURL, nil, laptop)
		var downgraded resdto.TokenResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &downgraded)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, subscriptionURL, nil, phone)
		httptest.AssertRedirect(t, w, middleware.LoginPath)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, downgraded.AccessToken)
		var me queries.UserView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &me)
		require.Equal(t, user.RoleFreeMember, me.Role)
	})
}

func (s *subscriptionSuite) TestSubscribeFailures() {
	s.Run("決済失敗時はロールが変わらない", func() {
		t := s.T()
		userID, token := authtest.CreateAndLogin(t, s.DB, s.Router, "free@example.com", user.RoleFreeMember)
		s.Billing.FailNextCall(errors.New("card_declined"))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, subscriptionURL,
			request.PaymentMethodRequest{PaymentMethodID: "pm_declined"}, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadGateway, "")
		require.Equal(t, string(user.RoleFreeMember), s.role(t, userID))

		// the original token still works
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("有料会員は再登録できない", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "paid@example.com", user.RolePaidMember)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, subscriptionURL,
			request.PaymentMethodRequest{PaymentMethodID: "pm_first"}, token)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("支払い方法IDは必須", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "free@example.com", user.RoleFreeMember)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, subscriptionURL,
			request.PaymentMethodRequest{}, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})
}
