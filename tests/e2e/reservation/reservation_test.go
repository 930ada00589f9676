//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"nagoyameshi/internal/domain/user"
	"nagoyameshi/internal/handler/dto/request"
	"nagoyameshi/internal/handler/dto/response"
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
	restaurantReservationsURL = "/api/restaurants/%d/reservations"
	reservationsURL           = "/api/reservations"
	reservationURL            = "/api/reservations/%d"
)

type ReservationSuite struct {
	e2e.SharedSuite
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

func (s *ReservationSuite) TestCreateReservation() {
	s.Run("Normal case: paid member books and sees it listed", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "paid@example.com", user.RolePaidMember)
		rid := dbtest.CreateTestRestaurant(t, s.DB, dbtest.RestaurantRow{Name: "世界の山ちゃん"})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(restaurantReservationsURL, rid),
			request.CreateReservationRequest{ReservationDate: "2050-01-01", ReservationTime: "19:00", NumberOfPeople: 4}, token)
		var created response.IDResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, token)
		var page queries.Page[*queries.ReservationView]
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Len(t, page.Items, 1)
		require.Equal(t, created.ID, page.Items[0].ID)
		require.Equal(t, "世界の山ちゃん", page.Items[0].RestaurantName)
		require.Equal(t, 4, page.Items[0].NumberOfPeople)
	})

	s.Run("Error case: a slot in the past is rejected", func() {
		t := s.T()
		userID, token := authtest.CreateAndLogin(t, s.DB, s.Router, "paid@example.com", user.RolePaidMember)
		rid := dbtest.CreateTestRestaurant(t, s.DB, dbtest.RestaurantRow{Name: "風来坊"})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(restaurantReservationsURL, rid),
			request.CreateReservationRequest{ReservationDate: "2020-01-01", ReservationTime: "19:00", NumberOfPeople: 2}, token)

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
		require.Zero(t, dbtest.Count(t, s.DB, "SELECT COUNT(*) FROM reservations WHERE user_id = $1", userID))
	})

	s.Run("Error case: free member is sent to subscribe", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "free@example.com", user.RoleFreeMember)
		rid := dbtest.CreateTestRestaurant(t, s.DB, dbtest.RestaurantRow{Name: "コメダ"})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(restaurantReservationsURL, rid),
			request.CreateReservationRequest{ReservationDate: "2050-01-01", ReservationTime: "19:00", NumberOfPeople: 2}, token)

		httptest.AssertRedirect(t, w, middleware.SubscriptionRegisterPath)
	})

	s.Run("Error case: unknown restaurant redirects to the list", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "paid@example.com", user.RolePaidMember)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(restaurantReservationsURL, 999999),
			request.CreateReservationRequest{ReservationDate: "2050-01-01", ReservationTime: "19:00", NumberOfPeople: 2}, token)

		httptest.AssertRedirect(t, w, "/restaurants")
	})
}

func (s *ReservationSuite) TestCancelReservation() {
	s.Run("Normal case: owner cancels", func() {
		t := s.T()
		userID, token := authtest.CreateAndLogin(t, s.DB, s.Router, "paid@example.com", user.RolePaidMember)
		rid := dbtest.CreateTestRestaurant(t, s.DB, dbtest.RestaurantRow{Name: "あつた蓬莱軒"})
		resID := dbtest.CreateTestReservation(t, s.DB, rid, userID, time.Now().Add(72*time.Hour))

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(reservationURL, resID), nil, token)

		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
		require.Zero(t, dbtest.Count(t, s.DB, "SELECT COUNT(*) FROM reservations WHERE id = $1", resID))
	})

	s.Run("Error case: another member's reservation answers like a missing one", func() {
		t := s.T()
		ownerID := dbtest.CreateTestUser(t, s.DB, "owner@example.com", user.RolePaidMember)
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", user.RolePaidMember)
		rid := dbtest.CreateTestRestaurant(t, s.DB, dbtest.RestaurantRow{Name: "しら河"})
		resID := dbtest.CreateTestReservation(t, s.DB, rid, ownerID, time.Now().Add(72*time.Hour))

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(reservationURL, resID), nil, token)

		httptest.AssertRedirect(t, w, "/reservations")
		require.Equal(t, 1, dbtest.Count(t, s.DB, "SELECT COUNT(*) FROM reservations WHERE id = $1", resID))
	})
}
