package api

import (
	"net/http"

	"nagoyameshi/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	q queries.CategoryQueries
}

func NewCategoryHandler(q queries.CategoryQueries) *CategoryHandler {
	return &CategoryHandler{q: q}
}

// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} queries.CategoryView
// @Router /api/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context())
	if err != nil {
		respondError(c, err, restaurantsPath)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary List regular holidays
// @Tags categories
// @Produce json
// @Success 200 {array} category.RegularHoliday
// @Router /api/holidays [get]
func (h *CategoryHandler) Holidays(c *gin.Context) {
	items, err := h.q.Holidays(c.Request.Context())
	if err != nil {
		respondError(c, err, restaurantsPath)
		return
	}
	c.JSON(http.StatusOK, items)
}
