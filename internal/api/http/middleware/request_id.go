package middleware

import (
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/GoSim-25-26J-441/observatory/internal/logging"
)

const RequestIDHeader = "X-Request-Id"

// RequestIDMiddleware ensures every request has a stable request ID.
// - Reads X-Request-Id header if present
// - Otherwise generates a new one
// - Stores it in the Gin context as "request_id"
// - Attaches a logger tagged with the id to the request context
// - Echoes it back in response header X-Request-Id
// - Logs request details (remote, method, path, status, size, latency)
func RequestIDMiddleware(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if strings.TrimSpace(rid) == "" {
			rid = uuid.NewString()
		}

		c.Set("request_id", rid)

		reqLogger := logger.With("request_id", rid)
		c.Request = c.Request.WithContext(logging.WithLogger(c.Request.Context(), reqLogger))

		c.Writer.Header().Set(RequestIDHeader, rid)

		start := time.Now()
		c.Next()

		reqLogger.Info("request",
			"remote", c.ClientIP(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"size", c.Writer.Size(),
			"latency", time.Since(start),
		)
	}
}
