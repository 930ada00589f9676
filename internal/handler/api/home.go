package api

import (
	"net/http"

	"nagoyameshi/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HomeHandler struct {
	q queries.HomeQueries
}

func NewHomeHandler(q queries.HomeQueries) *HomeHandler {
	return &HomeHandler{q: q}
}

// @Summary Home page
// @Description Highly rated and newest restaurants plus all categories
// @Tags home
// @Produce json
// @Success 200 {object} queries.HomeView
// @Router /api/home [get]
func (h *HomeHandler) Home(c *gin.Context) {
	view, err := h.q.Home(c.Request.Context())
	if err != nil {
		respondError(c, err, restaurantsPath)
		return
	}
	c.JSON(http.StatusOK, view)
}
