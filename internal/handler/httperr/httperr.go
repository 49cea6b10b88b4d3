package httperr

import (
	"leather-sandals-store/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	// gin keeps Type and Meta only when handed a *gin.Error.
	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithBody aborts with a caller-shaped body while still recording err
// on the context for the logging middleware.
func AbortWithBody(c *gin.Context, status int, err error, body any) {
	if err == nil {
		err = errs.New("request aborted")
	}
	_ = c.Error(&gin.Error{Err: err, Type: gin.ErrorTypePrivate})
	c.AbortWithStatusJSON(status, body)
}
