package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "bank-user-service/pkg/errors"
	"bank-user-service/pkg/logger"
)

// TimestampLayout formats ErrorResponse.Timestamp, e.g.
// "2024-05-01 02:15:04 PM CEST +0200".
const TimestampLayout = "2006-01-02 03:04:05 PM MST -0700"

// ErrorResponse is the body returned for every non-validation error.
type ErrorResponse struct {
	Title     string `json:"title"`
	Message   string `json:"message"`
	Status    int    `json:"status"`
	ErrorType string `json:"errorType"`
	Timestamp string `json:"timestamp"`
}

func newErrorResponse(status int, title, message, errorType string) ErrorResponse {
	return ErrorResponse{
		Title:     title,
		Message:   message,
		Status:    status,
		ErrorType: errorType,
		Timestamp: time.Now().Format(TimestampLayout),
	}
}

// ErrorHandler renders the last error attached to the context by a handler.
// It is the only place where application errors become HTTP responses.
func ErrorHandler(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		l := logger.WithContext(c.Request.Context(), log)

		var validationErr *apperrors.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, validationErr.Fields)
			return
		}

		var internalErr *apperrors.InternalError
		var httpErr apperrors.HTTPError
		if !errors.As(err, &internalErr) && errors.As(err, &httpErr) {
			c.JSON(httpErr.HTTPStatus(), newErrorResponse(httpErr.HTTPStatus(), httpErr.Title(), httpErr.Error(), httpErr.Kind()))
			return
		}

		l.Error("unhandled error", zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.JSON(http.StatusInternalServerError, newErrorResponse(
			http.StatusInternalServerError,
			"Internal Server Error",
			"An internal error occurred",
			"InternalError",
		))
	}
}
