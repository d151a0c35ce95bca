package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PanicRecoveryGin logs a recovered panic with the request context and
// answers 500 instead of dropping the connection.
func PanicRecoveryGin() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.ErrorContext(c.Request.Context(), "panic recovered",
					slog.String("event", "app.panic"),
					slog.String("path", c.Request.URL.Path),
					slog.Any("error", rec),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error":   "internal_error",
					"message": "internal server error",
				})
			}
		}()

		c.Next()
	}
}
