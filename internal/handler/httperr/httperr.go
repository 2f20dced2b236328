package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the wire-compatible failure body: a flat {error, details}
// object. Details is a []string for validation failures, a string otherwise,
// and is omitted when empty.
type Response struct {
	Status  int    `json:"-"`
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, details any) {
	resp := Response{
		Status:  status,
		Error:   msg,
		Details: details,
	}

	if err != nil {
		_ = c.Error(gin.Error{
			Err:  err,
			Type: gin.ErrorTypePublic,
			Meta: resp,
		})
	}
	c.AbortWithStatusJSON(status, resp)
}
