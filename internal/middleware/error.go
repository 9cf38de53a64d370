package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "financehub/internal/errors"
	"financehub/internal/logger"
)

// ErrorHandler renders the last error attached to the gin context as the
// standard {"error": {"code", "message"}} body. Binding errors become
// INVALID_INPUT; anything that is not an AppError is logged and reported as
// INTERNAL_ERROR. Responses already written by a handler are left alone.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		last := c.Errors.Last()
		appErr := toAppError(last)
		if appErr.Internal != nil || appErr == apperrors.ErrInternalServer {
			logger.Get().Errorw("request failed",
				"request_id", c.GetString(RequestIDKey),
				"code", appErr.Code,
				"error", last.Err.Error(),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			)
		}

		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
	}
}

func toAppError(ginErr *gin.Error) *apperrors.AppError {
	var appErr *apperrors.AppError
	switch {
	case errors.As(ginErr.Err, &appErr):
		return appErr
	case ginErr.IsType(gin.ErrorTypeBind):
		return apperrors.WithMessage(apperrors.ErrInvalidInput, ginErr.Err.Error())
	default:
		return apperrors.ErrInternalServer
	}
}
