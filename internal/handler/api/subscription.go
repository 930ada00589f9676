package api

import (
	"net/http"

	reqdto "nagoyameshi/internal/handler/dto/request"
	resdto "nagoyameshi/internal/handler/dto/response"
	"nagoyameshi/internal/pkg/config"
	"nagoyameshi/internal/pkg/cookie"
	"nagoyameshi/internal/pkg/jwt"
	"nagoyameshi/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const subscriptionPath = "/subscription"

type SubscriptionHandler struct {
	cmds       commands.SubscriptionCommands
	jwtService *jwt.Service
	cookieCfg  config.CookieConfig
}

func NewSubscriptionHandler(cmds commands.SubscriptionCommands, jwtService *jwt.Service, cfg config.Config) *SubscriptionHandler {
	return &SubscriptionHandler{cmds: cmds, jwtService: jwtService, cookieCfg: cfg.Cookie}
}

// @Summary Subscribe
// @Description Upgrade a free member to paid; returns tokens carrying the new role
// @Tags subscription
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PaymentMethodRequest true "Payment method"
// @Success 200 {object} resdto.TokenResponse
// @Failure 502 {object} httperr.Response
// @Router /api/subscription [post]
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	pair, err := h.cmds.Subscribe(c.Request.Context(), actor, req.PaymentMethodID)
	if err != nil {
		respondError(c, err, subscriptionPath)
		return
	}
	h.reissue(c, *pair)
}

// @Summary Current payment method
// @Tags subscription
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SubscriptionResponse
// @Failure 502 {object} httperr.Response
// @Router /api/subscription [get]
func (h *SubscriptionHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	pm, err := h.cmds.PaymentMethod(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, subscriptionPath)
		return
	}
	res, err := resdto.FromPaymentMethod(pm)
	if err != nil {
		respondError(c, err, subscriptionPath)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Replace payment method
// @Tags subscription
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.PaymentMethodRequest true "Payment method"
// @Success 204 "No Content"
// @Failure 502 {object} httperr.Response
// @Router /api/subscription/payment-method [put]
func (h *SubscriptionHandler) UpdatePaymentMethod(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.cmds.UpdatePaymentMethod(c.Request.Context(), actor, req.PaymentMethodID); err != nil {
		respondError(c, err, subscriptionPath)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Cancel subscription
// @Description Downgrade to free once the provider side is torn down; returns fresh tokens
// @Tags subscription
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.TokenResponse
// @Failure 502 {object} httperr.Response
// @Router /api/subscription [delete]
func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	pair, err := h.cmds.Cancel(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, subscriptionPath)
		return
	}
	h.reissue(c, *pair)
}

func (h *SubscriptionHandler) reissue(c *gin.Context, pair jwt.TokenPair) {
	cookie.SetTokenCookies(c, h.cookieCfg, pair.AccessToken, pair.RefreshToken,
		h.jwtService.AccessDuration(), h.jwtService.RefreshDuration())
	c.JSON(http.StatusOK, resdto.FromTokenPair(pair))
}
