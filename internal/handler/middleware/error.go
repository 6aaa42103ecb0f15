package middleware

import (
	"log/slog"
	"net/http"

	"carseat-rental/internal/handler/httperr"
	"carseat-rental/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes the last public error if a handler recorded one without responding.
// Anything else is logged with its stack and answered with a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			if resp, ok := c.Errors[i].Meta.(httperr.Response); ok && c.Errors[i].IsType(gin.ErrorTypePublic) {
				c.JSON(resp.Status, resp)
				return
			}
		}

		if last := c.Errors.Last(); last != nil {
			slog.Error("Unhandled error",
				append(requestLogArgs(c),
					"error", last.Err.Error(),
					"stack", errs.ExtractStackLines(last.Err, 12))...)
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		internalError(c)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("Recovered from panic", append(requestLogArgs(c), "panic", rec)...)
				internalError(c)
				c.Abort()
			}
		}()
		c.Next()
	}
}

func internalError(c *gin.Context) {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = "Internal server error"
	c.JSON(resp.Status, resp)
}

func requestLogArgs(c *gin.Context) []any {
	args := []any{"path", c.Request.URL.Path}
	if id := GetRequestID(c); id != "" {
		args = append(args, "request_id", id)
	}
	if client, ok := GetClient(c); ok {
		args = append(args, "client_id", client.ID)
	}
	return args
}
