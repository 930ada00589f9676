package cookie

import (
	"net/http"
	"time"

	"nagoyameshi/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"
)

func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, accessToken, refreshToken string, accessExpiry, refreshExpiry time.Duration) {
	c.SetSameSite(sameSiteMode(cfg.SameSite))
	set(c, cfg, AccessTokenCookieName, accessToken, int(accessExpiry.Seconds()))
	set(c, cfg, RefreshTokenCookieName, refreshToken, int(refreshExpiry.Seconds()))
}

func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(sameSiteMode(cfg.SameSite))
	set(c, cfg, AccessTokenCookieName, "", -1)
	set(c, cfg, RefreshTokenCookieName, "", -1)
}

func set(c *gin.Context, cfg config.CookieConfig, name, value string, maxAge int) {
	c.SetCookie(name, value, maxAge, "/", cfg.Domain, cfg.Secure, true)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func GetRefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

func sameSiteMode(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
