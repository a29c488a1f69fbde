package middleware

import (
	"fmt"
	"net/http"

	"cng-analyzer/internal/api/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ErrorHandler recovers from panics, logs them and answers with a 500 envelope.
func ErrorHandler(logger zerolog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		message := "An unexpected error occurred"
		if s, ok := recovered.(string); ok {
			message = s
		}
		logger.Error().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("panic", fmt.Sprint(recovered)).
			Msg("recovered from panic")

		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: message,
			},
		})
	})
}
