package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sukryu/pAdmin/pkg/errors"
)

// ErrorMiddleware renders the last error pushed with c.Error.
func ErrorMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		if e, ok := err.(*errors.StatusError); ok {
			if e.Code >= http.StatusInternalServerError {
				logger.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
			}
			c.JSON(e.Code, gin.H{"error": statusBody(e)})
			return
		}

		logger.Error("unhandled error", zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{
				"code":    http.StatusInternalServerError,
				"message": "Internal server error",
			},
		})
	}
}

func statusBody(e *errors.StatusError) gin.H {
	body := gin.H{
		"code":    e.Code,
		"message": e.Message,
	}
	if e.Reason != "" {
		body["reason"] = e.Reason
	}
	if e.RetryAfter > 0 {
		body["retryAfter"] = e.RetryAfter
	}
	return body
}

// abort stops the chain with e rendered the same way ErrorMiddleware does.
func abort(c *gin.Context, e *errors.StatusError) {
	c.AbortWithStatusJSON(e.Code, gin.H{"error": statusBody(e)})
}
