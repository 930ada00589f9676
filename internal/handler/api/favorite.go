package api

import (
	"net/http"

	reqdto "nagoyameshi/internal/handler/dto/request"
	resdto "nagoyameshi/internal/handler/dto/response"
	"nagoyameshi/internal/usecase/commands"
	"nagoyameshi/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	cmds commands.FavoriteCommands
	q    queries.FavoriteQueries
}

func NewFavoriteHandler(cmds commands.FavoriteCommands, q queries.FavoriteQueries) *FavoriteHandler {
	return &FavoriteHandler{cmds: cmds, q: q}
}

// @Summary List own favorites
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param page query int false "0-based page"
// @Success 200 {object} queries.Page[queries.FavoriteView]
// @Router /api/favorites [get]
func (h *FavoriteHandler) ListOwn(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var pq reqdto.PageQuery
	if err := c.ShouldBindQuery(&pq); err != nil {
		badRequest(c, err)
		return
	}
	page, err := h.q.ListOwn(c.Request.Context(), actor, pq.PageRequest())
	if err != nil {
		respondError(c, err, favoritesPath)
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Summary Add favorite
// @Description Idempotent; repeating returns the existing favorite id
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param id path int true "Restaurant ID"
// @Success 201 {object} resdto.IDResponse
// @Failure 303 {object} httperr.Response
// @Router /api/restaurants/{id}/favorites [post]
func (h *FavoriteHandler) Add(c *gin.Context) {
	restaurantID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, err := h.cmds.AddFavorite(c.Request.Context(), actor, restaurantID)
	if err != nil {
		respondError(c, err, restaurantsPath)
		return
	}
	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}

// @Summary Remove favorite
// @Tags favorites
// @Security BearerAuth
// @Param id path int true "Favorite ID"
// @Success 204 "No Content"
// @Failure 303 {object} httperr.Response
// @Router /api/favorites/{id} [delete]
func (h *FavoriteHandler) Remove(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.cmds.RemoveFavorite(c.Request.Context(), actor, id); err != nil {
		respondError(c, err, favoritesPath)
		return
	}
	c.Status(http.StatusNoContent)
}
