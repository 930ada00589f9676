package api

import (
	"net/http"

	reqdto "nagoyameshi/internal/handler/dto/request"
	resdto "nagoyameshi/internal/handler/dto/response"
	"nagoyameshi/internal/usecase/commands"
	"nagoyameshi/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const homePath = "/"

type ContentHandler struct {
	cmds commands.ContentCommands
	q    queries.ContentQueries
}

func NewContentHandler(cmds commands.ContentCommands, q queries.ContentQueries) *ContentHandler {
	return &ContentHandler{cmds: cmds, q: q}
}

// @Summary Terms of service
// @Tags content
// @Produce json
// @Success 200 {object} resdto.TermResponse
// @Failure 404 {object} httperr.Response
// @Router /api/terms [get]
func (h *ContentHandler) Term(c *gin.Context) {
	term, err := h.q.Term(c.Request.Context())
	if err != nil {
		respondError(c, err, homePath)
		return
	}
	res, err := resdto.FromTerm(term)
	if err != nil {
		respondError(c, err, homePath)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Company profile
// @Tags content
// @Produce json
// @Success 200 {object} resdto.CompanyResponse
// @Failure 404 {object} httperr.Response
// @Router /api/company [get]
func (h *ContentHandler) Company(c *gin.Context) {
	company, err := h.q.Company(c.Request.Context())
	if err != nil {
		respondError(c, err, homePath)
		return
	}
	res, err := resdto.FromCompany(company)
	if err != nil {
		respondError(c, err, homePath)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Update terms of service
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.TermRequest true "Terms"
// @Success 200 {object} resdto.TermResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/terms [put]
func (h *ContentHandler) UpdateTerm(c *gin.Context) {
	var req reqdto.TermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	term, err := h.cmds.UpdateTerm(c.Request.Context(), req.Content)
	if err != nil {
		respondError(c, err, homePath)
		return
	}
	res, err := resdto.FromTerm(term)
	if err != nil {
		respondError(c, err, homePath)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Update company profile
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CompanyRequest true "Company"
// @Success 200 {object} resdto.CompanyResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/company [put]
func (h *ContentHandler) UpdateCompany(c *gin.Context) {
	var req reqdto.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	in, err := req.ToDomain()
	if err != nil {
		badRequest(c, err)
		return
	}
	company, err := h.cmds.UpdateCompany(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, homePath)
		return
	}
	res, err := resdto.FromCompany(company)
	if err != nil {
		respondError(c, err, homePath)
		return
	}
	c.JSON(http.StatusOK, res)
}
