package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	intconfig "laundryops/internal/config"
	"laundryops/internal/domain"
	"laundryops/internal/http/middleware"
	"laundryops/internal/http/respond"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

func clientsEngine(role string) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Correlation(), func(c *gin.Context) {
		if role != "" {
			middleware.SetIdentity(c, 1, role)
		}
		c.Next()
	})
	r.GET("/clients", middleware.RequireRoles(domain.RoleMaster, domain.RoleAdmin), GetClients)
	return r
}

func clientRows() *sqlmock.Rows {
	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "name", "phone", "email", "address", "segment", "notes", "created_at", "updated_at",
	})
	rows.AddRow(int64(1), "Sunrise Rentals", "0811", "host@example.com", "12 Shore Rd", "airbnb", "", now, now)
	rows.AddRow(int64(2), "Budi", "0822", "budi@example.com", "", "laundry", "weekly pickup", now, now)
	return rows
}

func TestGetClientsListEnvelope(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM clients").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(12)))
	mock.ExpectQuery("SELECT id, name, phone, email, address, segment, notes").
		WithArgs(2, 0).
		WillReturnRows(clientRows())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/clients?limit=2", nil)
	clientsEngine("admin").ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["success"] != true {
		t.Fatalf("success = %v", body["success"])
	}
	data, _ := body["data"].([]any)
	if len(data) != 2 {
		t.Fatalf("data length = %d, want 2", len(data))
	}
	meta, _ := body["_meta"].(map[string]any)
	if meta["total"] != float64(12) || meta["count"] != float64(2) || meta["limit"] != float64(2) {
		t.Fatalf("list meta wrong: %v", meta)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetClientsBadSortIs400(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/clients?sort=password", nil)
	clientsEngine("admin").ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["code"] != respond.CodeInvalidSortField {
		t.Fatalf("code = %v, want %s", body["code"], respond.CodeInvalidSortField)
	}
}

func TestGetClientsWorkerIs403(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	clientsEngine("worker").ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}
