//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"leather-sandals-store/internal/handler/dto/request"
	"leather-sandals-store/internal/pkg/cookie"
	"leather-sandals-store/tests/common/dbtest"
	"leather-sandals-store/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const loginPath = "/api/auth/login"

// LoginUser logs in through the API and returns the access token cookie value.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, loginPath,
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	access := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, access, "access token cookie missing")
	require.NotEmpty(t, access.Value, "access token cookie is empty")
	require.NotNil(t, httptest.ExtractCookie(w, cookie.RefreshTokenCookieName), "refresh token cookie missing")

	return access.Value
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, role)
	return LoginUser(t, router, email, dbtest.TestPassword)
}

// LogoutUser expects the logout to succeed and both auth cookies to be cleared.
func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	for _, name := range []string{cookie.AccessTokenCookieName, cookie.RefreshTokenCookieName} {
		c := httptest.ExtractCookie(w, name)
		require.NotNil(t, c, "%s not cleared", name)
		require.Empty(t, c.Value)
	}
}
