package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"laundryops/internal/domain"
	"laundryops/internal/http/handlers"
	"laundryops/internal/http/middleware"
	"laundryops/internal/http/respond"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// identityAs fakes an authenticated session for route tests.
func identityAs(userID int64, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if role != "" {
			middleware.SetIdentity(c, userID, role)
		}
		c.Next()
	}
}

func guardedEngine(role string) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Correlation(), identityAs(1, role))
	r.GET("/finance",
		middleware.RequireRoles(domain.RoleMaster, domain.RoleAdmin),
		func(c *gin.Context) {
			p, err := handlers.NormalizePagination(c.Request.URL.Query(), "id", "created_at")
			if err != nil {
				handlers.RespondDomainError(c, err)
				return
			}
			respond.List(c, []string{}, respond.Page{Limit: p.Limit, Offset: p.Offset})
		})
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	return body
}

func TestGuardNoRoleIs401(t *testing.T) {
	r := guardedEngine("")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/finance", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	body := decode(t, w)
	if body["success"] != false || body["code"] != respond.CodeAuthRequired {
		t.Fatalf("body = %v", body)
	}
}

func TestGuardInsufficientRoleIs403(t *testing.T) {
	r := guardedEngine("worker")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/finance", nil))

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	body := decode(t, w)
	if body["code"] != respond.CodeForbidden {
		t.Fatalf("code = %v", body["code"])
	}
}

func TestGuardSufficientRolePasses(t *testing.T) {
	r := guardedEngine("admin")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/finance", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestRequireAuthAllowsAnyRole(t *testing.T) {
	r := gin.New()
	r.Use(middleware.Correlation(), identityAs(9, "client"))
	r.GET("/me", middleware.RequireAuth(), func(c *gin.Context) {
		respond.OK(c, http.StatusOK, gin.H{"role": middleware.UserRole(c)})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

// A worker sending bad pagination to an admin-only route is denied before the
// pagination error can surface, and still gets a fresh correlation id.
func TestAuthorizationRunsBeforePagination(t *testing.T) {
	r := guardedEngine("worker")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/finance?limit=500&sort=evil_column", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403 before pagination validation", w.Code)
	}
	body := decode(t, w)
	if body["code"] == respond.CodeInvalidSortField {
		t.Fatalf("pagination error leaked through a denied request")
	}
	headerID := w.Header().Get(respond.Header)
	if !strings.HasPrefix(headerID, "req_") {
		t.Fatalf("correlation id missing on denial: %q", headerID)
	}
	meta, _ := body["_meta"].(map[string]any)
	if meta == nil || meta["correlationId"] != headerID {
		t.Fatalf("denial envelope correlation mismatch: %v vs %q", body["_meta"], headerID)
	}
}
