package api

import (
	"net/http"

	reqdto "nagoyameshi/internal/handler/dto/request"
	resdto "nagoyameshi/internal/handler/dto/response"
	"nagoyameshi/internal/usecase/commands"
	"nagoyameshi/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary List restaurant reviews
// @Description Free members see the newest 3; paid members page through 5 at a time
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Restaurant ID"
// @Param page query int false "0-based page (paid members only)"
// @Success 200 {object} queries.Page[queries.ReviewView]
// @Failure 303 {object} httperr.Response
// @Router /api/restaurants/{id}/reviews [get]
func (h *ReviewHandler) ListForRestaurant(c *gin.Context) {
	restaurantID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var pq reqdto.PageQuery
	if err := c.ShouldBindQuery(&pq); err != nil {
		badRequest(c, err)
		return
	}
	page, err := h.q.ListForRestaurant(c.Request.Context(), actor, restaurantID, pq.PageRequest())
	if err != nil {
		respondError(c, err, restaurantsPath)
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Summary Create review
// @Description One review per member and restaurant
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Restaurant ID"
// @Param request body reqdto.ReviewRequest true "Review"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/restaurants/{id}/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	restaurantID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	id, err := h.cmds.CreateReview(c.Request.Context(), actor, restaurantID, req.ToCommand())
	if err != nil {
		respondError(c, err, restaurantsPath)
		return
	}
	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}

// @Summary Update review
// @Description Owner only; another member's review answers like a missing one
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Param request body reqdto.ReviewRequest true "Review"
// @Success 200 {object} queries.ReviewView
// @Failure 400 {object} httperr.Response
// @Failure 303 {object} httperr.Response
// @Router /api/reviews/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.cmds.UpdateReview(c.Request.Context(), actor, id, req.ToCommand()); err != nil {
		respondError(c, err, restaurantsPath)
		return
	}
	view, err := h.q.GetOwn(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err, restaurantsPath)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Delete review
// @Tags reviews
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Success 204 "No Content"
// @Failure 303 {object} httperr.Response
// @Router /api/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.cmds.DeleteReview(c.Request.Context(), actor, id); err != nil {
		respondError(c, err, restaurantsPath)
		return
	}
	c.Status(http.StatusNoContent)
}
