package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the body of every failed request. Detail is one of the *Detail types below.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// FieldDetail names the form field a validation failure belongs to.
type FieldDetail struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// RedirectDetail tells the client where to navigate, e.g. to the login page.
type RedirectDetail struct {
	Redirect string `json:"redirect"`
}

// RetryDetail reports whether resubmitting the same booking can succeed.
type RetryDetail struct {
	Retryable bool `json:"retryable"`
}

// AbortWithError writes resp as JSON and records err on the context for the error logger.
// err must be non-nil.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
