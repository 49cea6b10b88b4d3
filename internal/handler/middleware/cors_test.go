//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"leather-sandals-store/internal/handler/middleware"
	"leather-sandals-store/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCORSAddsStorefrontHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(config.CORSConfig{
		AllowOrigins:     []string{"https://sandalet.example"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "content-type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}))
	r.POST("/api/orders", func(c *gin.Context) { c.Status(http.StatusCreated) })

	preflight := httptest.NewRequest(http.MethodOptions, "/api/orders", nil)
	preflight.Header.Set("Origin", "https://sandalet.example")
	preflight.Header.Set("Access-Control-Request-Method", "POST")
	preflight.Header.Set("Access-Control-Request-Headers", "idempotency-key")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, preflight)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, strings.ToLower(w.Header().Get("Access-Control-Allow-Headers")), "idempotency-key")

	req := httptest.NewRequest(http.MethodPost, "/api/orders", nil)
	req.Header.Set("Origin", "https://sandalet.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	exposed := strings.ToLower(w.Header().Get("Access-Control-Expose-Headers"))
	assert.Contains(t, exposed, "idempotent-replayed")
	assert.Contains(t, exposed, "location")
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}
