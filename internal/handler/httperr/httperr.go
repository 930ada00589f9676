package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail   any    `json:"detail,omitempty"`
	Redirect string `json:"redirect,omitempty"`
	Flash    string `json:"flash,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	abort(c, err, resp)
}

// AbortWithRedirect answers 303 See Other so the client navigates to location
// and shows flash to the user.
func AbortWithRedirect(c *gin.Context, location string, err error, flash string) {
	if err == nil {
		panic("AbortWithRedirect: err cannot be nil")
	}

	resp := Response{Status: http.StatusSeeOther, Redirect: location, Flash: flash}
	resp.Error.Message = flash

	c.Header("Location", location)
	abort(c, err, resp)
}

func abort(c *gin.Context, err error, resp Response) {
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}
