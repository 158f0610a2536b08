package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bank-user-service/pkg/logger"
)

// Recovery recovers from panics in later handlers and answers with a 500.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.WithContext(c.Request.Context(), log).Error("panic recovered",
					zap.Any("panic", r),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.Stack("stack"),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, newErrorResponse(
					http.StatusInternalServerError,
					"Internal Server Error",
					"An internal error occurred",
					"InternalError",
				))
			}
		}()

		c.Next()
	}
}
