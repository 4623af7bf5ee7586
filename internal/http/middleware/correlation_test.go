package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"laundryops/internal/http/respond"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func correlationEngine() *gin.Engine {
	r := gin.New()
	r.Use(Correlation())
	r.GET("/ping", func(c *gin.Context) {
		respond.OK(c, http.StatusOK, gin.H{"pong": true})
	})
	return r
}

func bodyMeta(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	m, ok := body["_meta"].(map[string]any)
	if !ok {
		t.Fatalf("_meta missing: %v", body)
	}
	return m
}

func TestCorrelationGeneratedAndEqual(t *testing.T) {
	r := correlationEngine()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	headerID := w.Header().Get(respond.Header)
	if !strings.HasPrefix(headerID, "req_") {
		t.Fatalf("generated id malformed: %q", headerID)
	}
	if got := bodyMeta(t, w)["correlationId"]; got != headerID {
		t.Fatalf("header %q != _meta.correlationId %v", headerID, got)
	}
}

func TestCorrelationEchoesSuppliedHeader(t *testing.T) {
	r := correlationEngine()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(respond.Header, "req_client_retry_7")
	r.ServeHTTP(w, req)

	if got := w.Header().Get(respond.Header); got != "req_client_retry_7" {
		t.Fatalf("supplied id not echoed in header, got %q", got)
	}
	if got := bodyMeta(t, w)["correlationId"]; got != "req_client_retry_7" {
		t.Fatalf("supplied id not echoed in _meta, got %v", got)
	}
}

func TestCorrelationUniquePerRequest(t *testing.T) {
	r := correlationEngine()

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		id := w.Header().Get(respond.Header)
		if seen[id] {
			t.Fatalf("correlation id %q repeated", id)
		}
		seen[id] = true
	}
}
