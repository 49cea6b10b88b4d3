package cookie

import (
	"net/http"
	"time"

	"leather-sandals-store/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName     = "access_token"
	RefreshTokenCookieName    = "refresh_token"
	CheckoutSessionCookieName = "checkout_sid"
)

func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, accessToken, refreshToken string, accessExpiry, refreshExpiry time.Duration) {
	setCookie(c, cfg, AccessTokenCookieName, accessToken, accessExpiry)
	setCookie(c, cfg, RefreshTokenCookieName, refreshToken, refreshExpiry)
}

func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	setCookie(c, cfg, AccessTokenCookieName, "", -1)
	setCookie(c, cfg, RefreshTokenCookieName, "", -1)
}

func SetCheckoutSession(c *gin.Context, cfg config.CookieConfig, sessionID string, expiry time.Duration) {
	setCookie(c, cfg, CheckoutSessionCookieName, sessionID, expiry)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func GetRefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

func GetCheckoutSession(c *gin.Context) string {
	sid, _ := c.Cookie(CheckoutSessionCookieName)
	return sid
}

// negative expiry deletes the cookie
func setCookie(c *gin.Context, cfg config.CookieConfig, name, value string, expiry time.Duration) {
	maxAge := int(expiry.Seconds())
	if expiry < 0 {
		maxAge = -1
	}

	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(
		name,
		value,
		maxAge,
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
