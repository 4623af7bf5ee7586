package respond

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gin-gonic/gin"
)

// Header carries the correlation ID on both requests and responses.
const Header = "X-Correlation-Id"

const correlationKey = "correlation_id"

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewCorrelationID builds a req_<millis>_<random> token. Collision chance is
// acceptable at this request volume; not a cryptographic identifier.
func NewCorrelationID() string {
	return fmt.Sprintf("req_%d_%s", time.Now().UnixMilli(), randSuffix(9))
}

func randSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = base36[rand.Intn(len(base36))]
	}
	return string(b)
}

// SetCorrelationID stores the ID on the gin context for the rest of the request.
func SetCorrelationID(c *gin.Context, id string) {
	c.Set(correlationKey, id)
}

// CorrelationID returns the request's correlation ID. When the middleware did
// not run it synthesizes one and back-fills context and response header, so
// the envelope never omits the field and header/body stay equal.
func CorrelationID(c *gin.Context) string {
	if c == nil {
		return NewCorrelationID()
	}
	if id := c.GetString(correlationKey); id != "" {
		return id
	}
	id := NewCorrelationID()
	c.Set(correlationKey, id)
	if c.Writer != nil && c.Writer.Header().Get(Header) == "" {
		c.Writer.Header().Set(Header, id)
	}
	return id
}
