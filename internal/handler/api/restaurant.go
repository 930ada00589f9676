package api

import (
	"net/http"

	reqdto "nagoyameshi/internal/handler/dto/request"
	"nagoyameshi/internal/handler/middleware"
	"nagoyameshi/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RestaurantHandler struct {
	q queries.RestaurantQueries
}

func NewRestaurantHandler(q queries.RestaurantQueries) *RestaurantHandler {
	return &RestaurantHandler{q: q}
}

// @Summary Search restaurants
// @Description Filters are exclusive with precedence keyword > category_id > price
// @Tags restaurants
// @Produce json
// @Param keyword query string false "Matches name, address or category name"
// @Param category_id query int false "Category ID"
// @Param price query int false "Budget; matches lowest_price <= price"
// @Param order query string false "createdAtDesc | lowestPriceAsc | ratingDesc"
// @Param page query int false "0-based page"
// @Param size query int false "Page size (default 15, max 200)"
// @Success 200 {object} queries.Page[queries.RestaurantListItem]
// @Failure 400 {object} httperr.Response
// @Router /api/restaurants [get]
func (h *RestaurantHandler) List(c *gin.Context) {
	var q reqdto.RestaurantSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	page, err := h.q.Search(c.Request.Context(), q.ToSearch())
	if err != nil {
		respondError(c, err, restaurantsPath)
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Summary Restaurant detail
// @Description Includes favorite and review flags when the caller is signed in
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} queries.RestaurantDetail
// @Failure 303 {object} httperr.Response
// @Router /api/restaurants/{id} [get]
func (h *RestaurantHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var viewerID *int64
	if uid, ok := middleware.GetUserID(c); ok {
		viewerID = &uid
	}
	detail, err := h.q.Get(c.Request.Context(), id, viewerID)
	if err != nil {
		respondError(c, err, restaurantsPath)
		return
	}
	c.JSON(http.StatusOK, detail)
}
