//go:build e2e

package restaurant_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	nethttptest "net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"nagoyameshi/internal/domain/user"
	resdto "nagoyameshi/internal/handler/dto/response"
	"nagoyameshi/internal/usecase/queries"
	"nagoyameshi/tests/common/authtest"
	"nagoyameshi/tests/common/builder"
	"nagoyameshi/tests/common/dbtest"
	"nagoyameshi/tests/common/httptest"
	"nagoyameshi/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	restaurantsURL      = "/api/restaurants"
	adminRestaurantsURL = "/api/admin/restaurants"
)

type restaurantSuite struct {
	e2e.SharedSuite
}

func TestRestaurantSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(restaurantSuite))
}

func (s *restaurantSuite) names(items []*queries.RestaurantListItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func (s *restaurantSuite) TestList() {
	s.Run("評価順では未評価の店舗が最後になる", func() {
		t := s.T()
		reviewer := dbtest.CreateTestUser(t, s.DB, "paid@example.com", user.RolePaidMember)
		other := dbtest.CreateTestUser(t, s.DB, "paid2@example.com", user.RolePaidMember)

		unrated := dbtest.CreateTestRestaurant(t, s.DB, dbtest.RestaurantRow{Name: "未評価"})
		mid := dbtest.CreateTestRestaurant(t, s.DB, dbtest.RestaurantRow{Name: "普通"})
		top := dbtest.CreateTestRestaurant(t, s.DB, dbtest.RestaurantRow{Name: "人気"})
		dbtest.CreateTestReview(t, s.DB, mid, reviewer, 3)
		dbtest.CreateTestReview(t, s.DB, top, reviewer, 5)
		dbtest.CreateTestReview(t, s.DB, top, other, 4)
		require.NotZero(t, unrated)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, restaurantsURL+"?order=ratingDesc", nil, "")
		var page queries.Page[*queries.RestaurantListItem]
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)

		require.Equal(t, []string{"人気", "普通", "未評価"}, s.names(page.Items))
		require.NotNil(t, page.Items[0].AverageScore)
		require.InDelta(t, 4.5, *page.Items[0].AverageScore, 0.001)
		require.Equal(t, int64(2), page.Items[0].ReviewCount)
		require.Nil(t, page.Items[2].AverageScore)
	})

	s.Run("既定は新着順", func() {
		t := s.T()
		base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		dbtest.CreateTestRestaurant(t, s.DB, dbtest.RestaurantRow{Name: "古い", CreatedAt: base})
		dbtest.CreateTestRestaurant(t, s.DB, dbtest.RestaurantRow{Name: "新しい", CreatedAt: base.Add(time.Hour)})

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, restaurantsURL, nil, "")
		var page queries.Page[*queries.RestaurantListItem]
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)

		require.Equal(t, []string{"新しい", "古い"}, s.names(page.Items))
	})

	s.Run("予算とカテゴリで絞り込める", func() {
		t := s.T()
		cheap := dbtest.CreateTestRestaurant(t, s.DB, dbtest.RestaurantRow{Name: "手頃", LowestPrice: 800, HighestPrice: 1500})
		dbtest.CreateTestRestaurant(t, s.DB, dbtest.RestaurantRow{Name: "高級", LowestPrice: 5000, HighestPrice: 12000})
		udon := dbtest.CreateTestCategory(t, s.DB, "味噌煮込みうどん")
		dbtest.LinkCategory(t, s.DB, cheap, udon)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, restaurantsURL+"?price=2000", nil, "")
		var byPrice queries.Page[*queries.RestaurantListItem]
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &byPrice)
		require.Equal(t, []string{"手頃"}, s.names(byPrice.Items))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			restaurantsURL+"?category_id="+strconv.FormatInt(udon, 10), nil, "")
		var byCategory queries.Page[*queries.RestaurantListItem]
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &byCategory)
		require.Equal(t, []string{"手頃"}, s.names(byCategory.Items))
		require.Equal(t, []string{"味噌煮込みうどん"}, byCategory.Items[0].CategoryNames)
	})

	s.Run("桁外れのページ番号は空のページになる", func() {
		t := s.T()
		dbtest.CreateTestRestaurant(t, s.DB, dbtest.RestaurantRow{Name: "一軒目"})

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, restaurantsURL+"?page=700000000000000000", nil, "")
		var page queries.Page[*queries.RestaurantListItem]
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)

		require.Empty(t, page.Items)
		require.Equal(t, int64(1), page.TotalItems)
		require.Equal(t, queries.MaxPage, page.Page)
	})
}

func (s *restaurantSuite) TestAdminCreateAndUpdate() {
	s.Run("作成時にカテゴリと定休日が紐づき、更新で差分だけ反映される", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", user.RoleAdmin)
		miso := dbtest.CreateTestCategory(t, s.DB, "味噌カツ")
		tebasaki := dbtest.CreateTestCategory(t, s.DB, "手羽先")
		monday := dbtest.HolidayID(t, s.DB, 0)
		sunday := dbtest.HolidayID(t, s.DB, 6)

		form := restaurantForm(builder.NewRestaurantBuilder())
		form["category_ids"] = ids(miso, tebasaki, 99999)
		form["regular_holiday_ids"] = ids(monday, sunday)

		w := s.multipart(http.MethodPost, adminRestaurantsURL, form, "menu.jpg", token)
		var created resdto.IDResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		rid := created.ID
		require.Equal(t, 2, dbtest.Count(t, s.DB, "SELECT count(*) FROM restaurant_categories WHERE restaurant_id = $1", rid))
		require.Equal(t, 2, dbtest.Count(t, s.DB, "SELECT count(*) FROM restaurant_regular_holidays WHERE restaurant_id = $1", rid))

		var image string
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT image_name FROM restaurants WHERE id = $1", rid).Scan(&image))
		require.Equal(t, "img1.jpg", image)

		var mondayLink int64
		require.NoError(t, s.DB.QueryRow(t.Context(),
			"SELECT id FROM restaurant_regular_holidays WHERE restaurant_id = $1 AND regular_holiday_id = $2", rid, monday).Scan(&mondayLink))

		form = restaurantForm(builder.NewRestaurantBuilder().WithName("味噌カツ 本店"))
		form["category_ids"] = ids(tebasaki)
		form["regular_holiday_ids"] = ids(monday)

		w = s.multipart(http.MethodPut, adminRestaurantsURL+"/"+strconv.FormatInt(rid, 10), form, "", token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		var name string
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT name, image_name FROM restaurants WHERE id = $1", rid).Scan(&name, &image))
		require.Equal(t, "味噌カツ 本店", name)
		require.Equal(t, "img1.jpg", image, "画像なしの更新では既存の画像を保持する")

		require.Equal(t, 1, dbtest.Count(t, s.DB,
			"SELECT count(*) FROM restaurant_categories WHERE restaurant_id = $1 AND category_id = $2", rid, tebasaki))
		require.Equal(t, 1, dbtest.Count(t, s.DB, "SELECT count(*) FROM restaurant_categories WHERE restaurant_id = $1", rid))
		// the surviving holiday keeps its original link row
		require.Equal(t, 1, dbtest.Count(t, s.DB,
			"SELECT count(*) FROM restaurant_regular_holidays WHERE id = $1", mondayLink))
		require.Equal(t, 1, dbtest.Count(t, s.DB, "SELECT count(*) FROM restaurant_regular_holidays WHERE restaurant_id = $1", rid))
	})

	s.Run("価格帯が逆転していると作成されない", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", user.RoleAdmin)

		form := restaurantForm(builder.NewRestaurantBuilder().WithPrices(5000, 1000))
		w := s.multipart(http.MethodPost, adminRestaurantsURL, form, "menu.jpg", token)

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
		require.Equal(t, 0, dbtest.Count(t, s.DB, "SELECT count(*) FROM restaurants"))
		require.Empty(t, s.Images.Saved)
	})

	s.Run("有料会員は管理画面に入れない", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "paid@example.com", user.RolePaidMember)

		w := s.multipart(http.MethodPost, adminRestaurantsURL, restaurantForm(builder.NewRestaurantBuilder()), "", token)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

func (s *restaurantSuite) TestAdminDelete() {
	s.Run("店舗削除で関連データも消える", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", user.RoleAdmin)
		member := dbtest.CreateTestUser(t, s.DB, "paid@example.com", user.RolePaidMember)
		rid := dbtest.CreateTestRestaurant(t, s.DB, dbtest.RestaurantRow{Name: "閉店"})
		dbtest.LinkCategory(t, s.DB, rid, dbtest.CreateTestCategory(t, s.DB, "ひつまぶし"))
		dbtest.CreateTestReview(t, s.DB, rid, member, 4)
		_, err := s.DB.Exec(t.Context(), "INSERT INTO favorites (restaurant_id, user_id) VALUES ($1, $2)", rid, member)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			adminRestaurantsURL+"/"+strconv.FormatInt(rid, 10), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		require.Equal(t, 0, dbtest.Count(t, s.DB, "SELECT count(*) FROM restaurants WHERE id = $1", rid))
		require.Equal(t, 0, dbtest.Count(t, s.DB, "SELECT count(*) FROM reviews WHERE restaurant_id = $1", rid))
		require.Equal(t, 0, dbtest.Count(t, s.DB, "SELECT count(*) FROM favorites WHERE restaurant_id = $1", rid))
		require.Equal(t, 0, dbtest.Count(t, s.DB, "SELECT count(*) FROM restaurant_categories WHERE restaurant_id = $1", rid))
		require.Equal(t, 1, dbtest.Count(t, s.DB, "SELECT count(*) FROM categories"))
	})

	s.Run("存在しない店舗は一覧へリダイレクト", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, adminRestaurantsURL+"/404", nil, token)
		httptest.AssertRedirect(t, w, "/admin/restaurants")
	})
}

func restaurantForm(b *builder.RestaurantBuilder) url.Values {
	return url.Values{
		"name":             {b.Name},
		"description":      {b.Description},
		"lowest_price":     {strconv.Itoa(b.LowestPrice)},
		"highest_price":    {strconv.Itoa(b.HighestPrice)},
		"postal_code":      {b.PostalCode},
		"address":          {b.Address},
		"opening_time":     {b.OpeningTime},
		"closing_time":     {b.ClosingTime},
		"seating_capacity": {strconv.Itoa(b.SeatingCapacity)},
	}
}

func ids(vs ...int64) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, strconv.FormatInt(v, 10))
	}
	return out
}

// multipart sends the admin form; an empty filename omits the image part.
func (s *restaurantSuite) multipart(method, path string, form url.Values, filename, token string) *nethttptest.ResponseRecorder {
	t := s.T()
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for key, values := range form {
		for _, v := range values {
			require.NoError(t, mw.WriteField(key, v))
		}
	}
	if filename != "" {
		part, err := mw.CreateFormFile("image", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("\xff\xd8\xff\xe0fake-jpeg"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req, err := http.NewRequestWithContext(t.Context(), method, path, &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := nethttptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}
