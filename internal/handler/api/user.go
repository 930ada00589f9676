package api

import (
	"net/http"

	reqdto "nagoyameshi/internal/handler/dto/request"
	"nagoyameshi/internal/handler/middleware"
	"nagoyameshi/internal/usecase/commands"
	"nagoyameshi/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	cmds commands.UserCommands
	q    queries.UserQueries
}

func NewUserHandler(cmds commands.UserCommands, q queries.UserQueries) *UserHandler {
	return &UserHandler{cmds: cmds, q: q}
}

// @Summary Get profile
// @Tags user
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.UserView
// @Router /api/user [get]
func (h *UserHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	view, err := h.q.Me(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, middleware.LoginPath)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Update profile
// @Description Update the caller's profile; changing the email re-checks uniqueness
// @Tags user
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ProfileRequest true "Profile"
// @Success 200 {object} queries.UserView
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/user [put]
func (h *UserHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.cmds.UpdateProfile(c.Request.Context(), actor, req.ToDomain()); err != nil {
		respondError(c, err, middleware.LoginPath)
		return
	}
	view, err := h.q.Me(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, middleware.LoginPath)
		return
	}
	c.JSON(http.StatusOK, view)
}
