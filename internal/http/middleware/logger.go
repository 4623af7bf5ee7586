package middleware

import (
	"log"
	"time"

	"laundryops/internal/http/respond"

	"github.com/gin-gonic/gin"
)

// Logger prints a minimal request log line keyed by correlation id so an
// operator can go from a client-reported id to the server-side trace.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		log.Printf("[HTTP] correlation_id=%s method=%s path=%s status=%d latency_ms=%.3f ip=%s",
			respond.CorrelationID(c),
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			float64(latency.Microseconds())/1000.0,
			c.ClientIP(),
		)
	}
}
