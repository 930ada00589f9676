package api

import (
	"net/http"

	reqdto "nagoyameshi/internal/handler/dto/request"
	resdto "nagoyameshi/internal/handler/dto/response"
	"nagoyameshi/internal/usecase/commands"
	"nagoyameshi/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminCategoryHandler struct {
	cmds commands.CategoryCommands
	q    queries.CategoryQueries
}

func NewAdminCategoryHandler(cmds commands.CategoryCommands, q queries.CategoryQueries) *AdminCategoryHandler {
	return &AdminCategoryHandler{cmds: cmds, q: q}
}

// @Summary Admin category list
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param keyword query string false "Name keyword"
// @Param page query int false "0-based page"
// @Success 200 {object} queries.Page[queries.CategoryView]
// @Router /api/admin/categories [get]
func (h *AdminCategoryHandler) List(c *gin.Context) {
	var pq reqdto.PageQuery
	if err := c.ShouldBindQuery(&pq); err != nil {
		badRequest(c, err)
		return
	}
	page, err := h.q.AdminSearch(c.Request.Context(), pq.Keyword, pq.PageRequest())
	if err != nil {
		respondError(c, err, adminCategoriesPath)
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Summary Admin category detail
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} queries.CategoryView
// @Failure 303 {object} httperr.Response
// @Router /api/admin/categories/{id} [get]
func (h *AdminCategoryHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, adminCategoriesPath)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create category
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CategoryRequest true "Category"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/categories [post]
func (h *AdminCategoryHandler) Create(c *gin.Context) {
	var req reqdto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	id, err := h.cmds.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err, adminCategoriesPath)
		return
	}
	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}

// @Summary Rename category
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param request body reqdto.CategoryRequest true "Category"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/categories/{id} [put]
func (h *AdminCategoryHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.cmds.UpdateCategory(c.Request.Context(), id, req.Name); err != nil {
		respondError(c, err, adminCategoriesPath)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete category
// @Tags admin
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 204 "No Content"
// @Failure 303 {object} httperr.Response
// @Router /api/admin/categories/{id} [delete]
func (h *AdminCategoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, err, adminCategoriesPath)
		return
	}
	c.Status(http.StatusNoContent)
}
