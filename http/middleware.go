package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LoggerMiddleware returns a gin middleware that logs one line per request.
func LoggerMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		begin := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.Info("request completed",
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"duration", time.Since(begin),
			"client_ip", c.ClientIP(),
		)
	}
}

// RecoveryMiddleware converts an unexpected panic anywhere in the request
// path into a generic 500 response so a single bad request never takes the
// process down. The panic detail stays in the logs, keyed by error ID.
func RecoveryMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		id := uuid.NewString()
		logger.Error("panic recovered",
			"error_id", id,
			"panic", recovered,
			"path", c.Request.URL.Path,
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{
			ErrorID: id,
			Message: "An unexpected error occurred.",
			Type:    "panic",
		})
	})
}
