package api

import (
	"net/http"

	reqdto "nagoyameshi/internal/handler/dto/request"
	resdto "nagoyameshi/internal/handler/dto/response"
	"nagoyameshi/internal/usecase/commands"
	"nagoyameshi/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary List own reservations
// @Description Newest reservation time first, 15 per page
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param page query int false "0-based page"
// @Success 200 {object} queries.Page[queries.ReservationView]
// @Router /api/reservations [get]
func (h *ReservationHandler) ListOwn(c *gin.Context) {
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
		respondError(c, err, reservationsPath)
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Summary Create reservation
// @Description The slot must start at least two hours from now
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Restaurant ID"
// @Param request body reqdto.CreateReservationRequest true "Reservation"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Failure 303 {object} httperr.Response
// @Router /api/restaurants/{id}/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	restaurantID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	id, err := h.cmds.CreateReservation(c.Request.Context(), actor, req.ToCommand(restaurantID))
	if err != nil {
		respondError(c, err, restaurantsPath)
		return
	}
	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}

// @Summary Cancel reservation
// @Description Owner only; another member's reservation answers like a missing one
// @Tags reservations
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 204 "No Content"
// @Failure 303 {object} httperr.Response
// @Router /api/reservations/{id} [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.cmds.CancelReservation(c.Request.Context(), actor, id); err != nil {
		respondError(c, err, reservationsPath)
		return
	}
	c.Status(http.StatusNoContent)
}
