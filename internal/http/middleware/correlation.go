package middleware

import (
	"strings"

	"laundryops/internal/http/respond"

	"github.com/gin-gonic/gin"
)

// Correlation ensures every request carries exactly one correlation ID,
// echoed in the X-Correlation-Id response header. A caller-supplied header is
// trusted and echoed verbatim so clients can trace retries end to end. This
// middleware never fails a request.
func Correlation() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(respond.Header))
		if id == "" {
			id = respond.NewCorrelationID()
		}
		respond.SetCorrelationID(c, id)
		c.Writer.Header().Set(respond.Header, id)
		c.Next()
	}
}
