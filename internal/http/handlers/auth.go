package handlers

import (
	"database/sql"
	"net/http"

	intauth "laundryops/internal/auth"
	intconfig "laundryops/internal/config"
	"laundryops/internal/domain"
	"laundryops/internal/domain/models"
	"laundryops/internal/http/middleware"
	"laundryops/internal/http/respond"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	var (
		user         models.User
		passwordHash string
	)

	err := intconfig.DB.QueryRow(`
        SELECT id, name, username, email, phone, password_hash, role, status, created_at, updated_at
        FROM users
        WHERE email = ? OR username = ?
    `, req.Email, req.Email).Scan(
		&user.ID,
		&user.Name,
		&user.Username,
		&user.Email,
		&user.Phone,
		&passwordHash,
		&user.Role,
		&user.Status,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			respond.Err(c, http.StatusUnauthorized, "invalid email/username or password", "")
		} else {
			RespondDomainError(c, err)
		}
		return
	}

	if user.Status != "active" {
		respond.Err(c, http.StatusForbidden, "account is not active", respond.CodeForbidden)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
		respond.Err(c, http.StatusUnauthorized, "invalid email/username or password", "")
		return
	}

	tokenString, err := intauth.SignToken(user.ID, user.Role)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	respond.OK(c, http.StatusOK, gin.H{
		"token": tokenString,
		"user":  user.ToPublic(),
	})
}

type registerRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// POST /api/auth/register
// Public self-registration always creates a client account; staff accounts
// are created by admins through /api/users.
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	if req.Name == "" || req.Username == "" || req.Email == "" || len(req.Password) < 8 {
		respond.Err(c, http.StatusBadRequest, "name, username, email, and a password of at least 8 characters are required", respond.CodeValidation)
		return
	}

	var exists int
	err := intconfig.DB.QueryRow(`
        SELECT COUNT(*)
        FROM users
        WHERE email = ? OR username = ?
    `, req.Email, req.Username).Scan(&exists)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if exists > 0 {
		respond.Err(c, http.StatusConflict, "email or username is already registered", respond.CodeConflict)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	res, err := intconfig.DB.Exec(`
        INSERT INTO users (name, username, email, phone, password_hash, role, status, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, 'active', NOW(), NOW())
    `, req.Name, req.Username, req.Email, req.Phone, string(hash), domain.RoleClient.String())
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	id, _ := res.LastInsertId()

	respond.OK(c, http.StatusCreated, gin.H{
		"user": gin.H{
			"id":       id,
			"name":     req.Name,
			"username": req.Username,
			"email":    req.Email,
			"phone":    req.Phone,
			"role":     domain.RoleClient.String(),
			"status":   "active",
		},
	})
}

// GET /api/auth/me
func Me(c *gin.Context) {
	userID := middleware.UserID(c)

	var user models.User
	err := intconfig.DB.QueryRow(`
        SELECT id, name, username, email, phone, role, status, created_at, updated_at
        FROM users
        WHERE id = ?
    `, userID).Scan(
		&user.ID,
		&user.Name,
		&user.Username,
		&user.Email,
		&user.Phone,
		&user.Role,
		&user.Status,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			RespondDomainError(c, domain.NotFoundError{Resource: "user"})
		} else {
			RespondDomainError(c, err)
		}
		return
	}

	respond.OK(c, http.StatusOK, gin.H{"user": user.ToPublic()})
}
