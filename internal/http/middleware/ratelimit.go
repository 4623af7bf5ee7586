package middleware

import (
	"laundryops/internal/http/respond"
	"laundryops/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

const loginRateMessage = "Too many login attempts from this IP, please try again after 15 minutes"

// LoginRateLimit counts login attempts per client address and rejects the
// excess with 429. Successful and failed attempts both count, so an attacker
// cannot tell valid from invalid usernames by how many tries are free.
func LoginRateLimit(l *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, retryAfter := l.Allow(c.ClientIP())
		if !ok {
			respond.RateLimited(c, loginRateMessage, retryAfter)
			return
		}
		c.Next()
	}
}
