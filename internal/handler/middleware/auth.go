package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"leather-sandals-store/internal/domain/user"
	"leather-sandals-store/internal/handler/httperr"
	"leather-sandals-store/internal/pkg/cookie"
	"leather-sandals-store/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"

	bearerScheme = "bearer"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{tokenValidator: tokenValidator}
}

// extractToken prefers the access_token cookie over an Authorization header.
func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	scheme, token, ok := strings.Cut(c.GetHeader("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, bearerScheme) {
		return ""
	}
	return strings.TrimSpace(token)
}

// authenticate stores the caller on the context. An empty token reports
// ok=false with a nil error.
func (m *AuthMiddleware) authenticate(c *gin.Context) (bool, error) {
	token := extractToken(c)
	if token == "" {
		return false, nil
	}
	userID, role, err := m.tokenValidator.ValidateToken(token)
	if err != nil {
		return false, err
	}
	c.Set(ctxUserIDKey, userID)
	c.Set(ctxUserRoleKey, role)
	return true, nil
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := m.authenticate(c)
		switch {
		case err != nil:
			slog.Warn("access token rejected",
				"request_id", GetRequestID(c),
				"path", c.Request.URL.Path,
				"error", err.Error(),
			)
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		case !ok:
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Access token required", nil)
			return
		}
		c.Next()
	}
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
			return
		}
		if !role.AtLeast(minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, nil, "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

// OptionalAuth lets anonymous shoppers through; a bad token is treated as none.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, _ = m.authenticate(c)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	v, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}
	role, ok := v.(user.Role)
	return role, ok
}
