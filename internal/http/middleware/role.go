package middleware

import (
	"net/http"

	"laundryops/internal/domain"
	"laundryops/internal/http/respond"

	"github.com/gin-gonic/gin"
)

// RequireAuth admits any request with an established role and rejects the
// rest with 401. Missing identity is always 401, never 403.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserRole(c) == "" {
			respond.AbortErr(c, http.StatusUnauthorized, "authentication required", respond.CodeAuthRequired)
			return
		}
		c.Next()
	}
}

// RequireRoles only admits requests whose role is in allowedRoles. Roles are
// explicit set membership, not a rank order. Example:
//
//	r.GET("/reports/finance", RequireRoles(domain.RoleMaster, domain.RoleAdmin), handler)
//
// Assumes Authenticate ran earlier and set the role on the context.
func RequireRoles(allowedRoles ...domain.Role) gin.HandlerFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		role := domain.ParseRole(UserRole(c))
		if role == "" {
			respond.AbortErr(c, http.StatusUnauthorized, "authentication required", respond.CodeAuthRequired)
			return
		}
		if _, ok := allowed[role]; !ok {
			respond.AbortErr(c, http.StatusForbidden, "insufficient role for this resource", respond.CodeForbidden)
			return
		}
		c.Next()
	}
}
