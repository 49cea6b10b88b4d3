//go:build e2e

package e2e

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"leather-sandals-store/internal/handler/dto/request"
	"leather-sandals-store/tests/common/dbtest"
	commonhttp "leather-sandals-store/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Client replays cookies between requests the way a browser tab would.
type Client struct {
	t       *testing.T
	router  *gin.Engine
	cookies map[string]*http.Cookie
	headers map[string]string
}

func (s *SharedSuite) NewClient() *Client {
	return &Client{
		t:       s.T(),
		router:  s.Router,
		cookies: map[string]*http.Cookie{},
		headers: map[string]string{},
	}
}

// LoggedInClient creates the user and logs in through the API.
func (s *SharedSuite) LoggedInClient(email, role string) *Client {
	dbtest.CreateTestUser(s.T(), s.DB, email, role)
	c := s.NewClient()
	w := c.Do(http.MethodPost, "/api/auth/login", request.LoginRequest{Email: email, Password: "password123"})
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
	return c
}

func (c *Client) SetHeader(key, value string) *Client {
	c.headers[key] = value
	return c
}

func (c *Client) Cookie(name string) *http.Cookie {
	return c.cookies[name]
}

func (c *Client) Do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()

	jar := make([]*http.Cookie, 0, len(c.cookies))
	for _, ck := range c.cookies {
		jar = append(jar, ck)
	}
	w := commonhttp.PerformRequestWithHeaders(c.t, c.router, method, path, body, c.headers, jar)

	for _, ck := range w.Result().Cookies() {
		if ck.MaxAge < 0 || ck.Value == "" {
			delete(c.cookies, ck.Name)
			continue
		}
		c.cookies[ck.Name] = &http.Cookie{Name: ck.Name, Value: ck.Value}
	}
	return w
}

// WithHeaders sends one request with extra headers without keeping them.
func (c *Client) WithHeaders(headers map[string]string, method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()

	saved := c.headers
	merged := make(map[string]string, len(saved)+len(headers))
	for k, v := range saved {
		merged[k] = v
	}
	for k, v := range headers {
		merged[k] = v
	}
	c.headers = merged
	defer func() { c.headers = saved }()

	return c.Do(method, path, body)
}
