package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	intconfig "laundryops/internal/config"
	"laundryops/internal/http/middleware"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func loginTestEngine() *gin.Engine {
	r := gin.New()
	r.Use(middleware.Correlation())
	r.POST("/login", Login)
	return r
}

func userRows(passwordHash string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "name", "username", "email", "phone", "password_hash", "role", "status", "created_at", "updated_at",
	}).AddRow(int64(1), "Dina", "dina", "dina@example.com", "0800", passwordHash, "admin", "active", now, now)
}

func TestLoginSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("dina@example.com", "dina@example.com").
		WillReturnRows(userRows(string(hash)))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"dina@example.com","password":"correct-horse"}`))
	req.Header.Set("Content-Type", "application/json")
	loginTestEngine().ServeHTTP(w, req)

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
	data, _ := body["data"].(map[string]any)
	if data == nil || data["token"] == "" || data["token"] == nil {
		t.Fatalf("login response missing token: %v", body)
	}
	user, _ := data["user"].(map[string]any)
	if user == nil || user["role"] != "admin" {
		t.Fatalf("login response user wrong: %v", data)
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatalf("password hash leaked in response")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnRows(userRows(string(hash)))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"dina@example.com","password":"guess"}`))
	req.Header.Set("Content-Type", "application/json")
	loginTestEngine().ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["success"] != false || body["error"] == "" {
		t.Fatalf("failure envelope wrong: %v", body)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"ghost@example.com","password":"anything"}`))
	req.Header.Set("Content-Type", "application/json")
	loginTestEngine().ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
