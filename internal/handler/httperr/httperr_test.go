//go:build unit

package httperr_test

import (
	"net/http"
	stdhttptest "net/http/httptest"
	"testing"

	"leather-sandals-store/internal/handler/httperr"
	"leather-sandals-store/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(stdhttptest.NewRecorder())
	c.Request = stdhttptest.NewRequest(http.MethodGet, "/", nil)
	return c
}

func TestAbortWithError(t *testing.T) {
	c := newContext()
	cause := errs.New("db down")

	httperr.AbortWithError(c, http.StatusInternalServerError, cause, "Internal error", nil)

	require.Len(t, c.Errors, 1)
	recorded := c.Errors[0]
	assert.True(t, recorded.IsType(gin.ErrorTypePublic))
	assert.Equal(t, cause, recorded.Err)

	resp, ok := recorded.Meta.(httperr.Response)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, resp.Status)
	assert.Equal(t, "Internal error", resp.Error.Message)

	assert.Equal(t, errs.ExtractStackLines(cause, 5), errs.ExtractStackLines(recorded.Err, 5))
	assert.True(t, c.IsAborted())
}

func TestAbortWithBody(t *testing.T) {
	c := newContext()
	cause := errs.New("coupon rejected")

	httperr.AbortWithBody(c, http.StatusBadRequest, cause, gin.H{"valid": false})

	require.Len(t, c.Errors, 1)
	assert.True(t, c.Errors[0].IsType(gin.ErrorTypePrivate))
	assert.Equal(t, cause, c.Errors[0].Err)
	assert.Equal(t, http.StatusBadRequest, c.Writer.Status())
}
