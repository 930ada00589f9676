package api

import (
	"net/http"

	reqdto "nagoyameshi/internal/handler/dto/request"
	"nagoyameshi/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminUserHandler struct {
	users     queries.UserQueries
	dashboard queries.DashboardQueries
}

func NewAdminUserHandler(users queries.UserQueries, dashboard queries.DashboardQueries) *AdminUserHandler {
	return &AdminUserHandler{users: users, dashboard: dashboard}
}

// @Summary Admin user list
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param keyword query string false "Matches name or furigana"
// @Param page query int false "0-based page"
// @Success 200 {object} queries.Page[queries.UserView]
// @Router /api/admin/users [get]
func (h *AdminUserHandler) List(c *gin.Context) {
	var pq reqdto.PageQuery
	if err := c.ShouldBindQuery(&pq); err != nil {
		badRequest(c, err)
		return
	}
	page, err := h.users.AdminSearch(c.Request.Context(), pq.Keyword, pq.PageRequest())
	if err != nil {
		respondError(c, err, adminUsersPath)
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Summary Admin user detail
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} queries.UserView
// @Failure 303 {object} httperr.Response
// @Router /api/admin/users/{id} [get]
func (h *AdminUserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.users.AdminGet(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, adminUsersPath)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Admin dashboard
// @Description Member, restaurant and reservation counts plus monthly sales
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.Dashboard
// @Router /api/admin/dashboard [get]
func (h *AdminUserHandler) Dashboard(c *gin.Context) {
	view, err := h.dashboard.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err, adminUsersPath)
		return
	}
	c.JSON(http.StatusOK, view)
}
