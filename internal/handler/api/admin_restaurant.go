package api

import (
	"errors"
	"net/http"

	reqdto "nagoyameshi/internal/handler/dto/request"
	resdto "nagoyameshi/internal/handler/dto/response"
	"nagoyameshi/internal/usecase/commands"
	"nagoyameshi/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const imageFormField = "image"

type AdminRestaurantHandler struct {
	cmds commands.RestaurantCommands
	q    queries.RestaurantQueries
}

func NewAdminRestaurantHandler(cmds commands.RestaurantCommands, q queries.RestaurantQueries) *AdminRestaurantHandler {
	return &AdminRestaurantHandler{cmds: cmds, q: q}
}

// @Summary Admin restaurant list
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param keyword query string false "Name, address or category keyword"
// @Param page query int false "0-based page"
// @Success 200 {object} queries.Page[queries.RestaurantListItem]
// @Router /api/admin/restaurants [get]
func (h *AdminRestaurantHandler) List(c *gin.Context) {
	var pq reqdto.PageQuery
	if err := c.ShouldBindQuery(&pq); err != nil {
		badRequest(c, err)
		return
	}
	page, err := h.q.Search(c.Request.Context(), queries.RestaurantSearch{
		Keyword: &pq.Keyword,
		Page:    pq.Page,
		Size:    pq.Size,
	})
	if err != nil {
		respondError(c, err, adminRestaurantsPath)
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Summary Admin restaurant detail
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Restaurant ID"
// @Success 200 {object} queries.RestaurantDetail
// @Failure 303 {object} httperr.Response
// @Router /api/admin/restaurants/{id} [get]
func (h *AdminRestaurantHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	detail, err := h.q.Get(c.Request.Context(), id, nil)
	if err != nil {
		respondError(c, err, adminRestaurantsPath)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// @Summary Create restaurant
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Name"
// @Param image formData file false "Image"
// @Param category_ids formData []int false "Category IDs"
// @Param regular_holiday_ids formData []int false "Regular holiday IDs"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/restaurants [post]
func (h *AdminRestaurantHandler) Create(c *gin.Context) {
	in, cleanup, ok := h.bindInput(c)
	if !ok {
		return
	}
	defer cleanup()

	id, err := h.cmds.CreateRestaurant(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, adminRestaurantsPath)
		return
	}
	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}

// @Summary Update restaurant
// @Description Omitting the image keeps the stored one
// @Tags admin
// @Accept multipart/form-data
// @Security BearerAuth
// @Param id path int true "Restaurant ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 303 {object} httperr.Response
// @Router /api/admin/restaurants/{id} [put]
func (h *AdminRestaurantHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	in, cleanup, ok := h.bindInput(c)
	if !ok {
		return
	}
	defer cleanup()

	if err := h.cmds.UpdateRestaurant(c.Request.Context(), id, in); err != nil {
		respondError(c, err, adminRestaurantsPath)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete restaurant
// @Tags admin
// @Security BearerAuth
// @Param id path int true "Restaurant ID"
// @Success 204 "No Content"
// @Failure 303 {object} httperr.Response
// @Router /api/admin/restaurants/{id} [delete]
func (h *AdminRestaurantHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeleteRestaurant(c.Request.Context(), id); err != nil {
		respondError(c, err, adminRestaurantsPath)
		return
	}
	c.Status(http.StatusNoContent)
}

// bindInput reads the multipart form. The returned cleanup closes the image part.
func (h *AdminRestaurantHandler) bindInput(c *gin.Context) (commands.RestaurantInput, func(), bool) {
	noop := func() {}

	var form reqdto.RestaurantForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, err)
		return commands.RestaurantInput{}, noop, false
	}
	in := commands.RestaurantInput{
		Attributes:  form.Attributes(),
		CategoryIDs: form.CategoryIDs,
		HolidayIDs:  form.HolidayIDs,
	}

	fh, err := c.FormFile(imageFormField)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return in, noop, true
	}
	if err != nil {
		badRequest(c, err)
		return commands.RestaurantInput{}, noop, false
	}
	f, err := fh.Open()
	if err != nil {
		badRequest(c, err)
		return commands.RestaurantInput{}, noop, false
	}
	in.Image = &commands.ImageUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Body:        f,
	}
	return in, func() { _ = f.Close() }, true
}
