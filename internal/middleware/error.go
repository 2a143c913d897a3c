package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "bankist/internal/errors"
	"bankist/internal/logger"
)

// ErrorHandler turns errors attached with c.Error into the JSON error
// envelope, unless a response has already been written.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		WriteError(c, c.Errors.Last().Err)
	}
}

// WriteError writes err as {"error": {"code", "kind", "message"}}. AppErrors
// keep their status and code; a cancelled or timed out request maps to 503;
// anything else is logged and reported as an internal error.
func WriteError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	switch {
	case errors.As(err, &appErr):
		if appErr.Internal != nil {
			logger.Get().Debugw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": gin.H{
				"code":    "UNAVAILABLE",
				"kind":    apperrors.KindInternal,
				"message": "The session is not accepting requests",
			},
		})
		return
	default:
		logger.Get().Errorw("unexpected error",
			"error", err.Error(),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
		)
		appErr = apperrors.ErrInternalServer
	}

	c.JSON(appErr.StatusCode, gin.H{
		"error": gin.H{
			"code":    appErr.Code,
			"kind":    appErr.Kind,
			"message": appErr.Message,
		},
	})
}
