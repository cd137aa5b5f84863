package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"restaurant-management/internal/logger"
)

// requestContext attaches a request id and an optional deadline to the
// request context and logs each completed request.
func requestContext(log *logger.Logger, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		c.Header(requestIDHeader, requestID)

		ctx := logger.WithRequestID(c.Request.Context(), requestID)
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		c.Next()

		log.Debug("request_completed", "Request completed", requestID, map[string]interface{}{
			"method":      c.Request.Method,
			"path":        c.FullPath(),
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
		})
	}
}
