package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ecomovil/platform/internal/infrastructure/monitoring"
	"github.com/ecomovil/platform/pkg/logger"
)

const requestIDHeader = "X-Request-ID"

// RequestIDMiddleware makes sure every request carries a request id, echoes
// it back to the client, and plants it in the request context for log
// correlation.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), requestID))
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Next()
	}
}

// LoggingMiddleware writes one structured access log line per request.
func LoggingMiddleware(log logger.Logger) gin.HandlerFunc {
	accessLog := log.WithComponent("http_access")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "not_found"
		}
		accessLog.Info(c.Request.Context(), "request completed", logger.Fields{
			"method":      c.Request.Method,
			"path":        path,
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"client_ip":   c.ClientIP(),
		})
	}
}

// MetricsMiddleware records request totals and latency. Route templates are
// used as the path label to keep cardinality low.
func MetricsMiddleware(metrics *monitoring.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "not_found"
		}
		metrics.RecordHTTPRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}

// RecoveryMiddleware converts handler panics into a 500 and logs them. The
// authentication filter has its own recover and never reaches this path.
func RecoveryMiddleware(log logger.Logger) gin.HandlerFunc {
	panicLog := log.WithComponent("recovery")
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				panicLog.Error(c.Request.Context(), "handler panic", nil, logger.Fields{"panic": r})
				c.AbortWithStatusJSON(500, gin.H{"message": "Internal server error"})
			}
		}()
		c.Next()
	}
}
