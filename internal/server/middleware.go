package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/llmtxt-labs/llmtxt/internal/logger"
)

const requestIDHeader = "X-Request-ID"

// requestID tags each request with an id, reusing the client's when given,
// and attaches a logger carrying it to the request context.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)

		ctx := c.Request.Context()
		entry := logger.G(ctx).WithField("request_id", id)
		c.Request = c.Request.WithContext(logger.WithLogger(ctx, entry))
		c.Next()
	}
}

// requestLogger logs one line per request once the handler chain returns.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.G(c.Request.Context()).WithFields(map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration":    time.Since(start),
			"remote_addr": c.ClientIP(),
		}).Info("HTTP request")
	}
}
