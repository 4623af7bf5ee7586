package handlers

import (
	"database/sql"
	"fmt"
	"net/http"

	intconfig "laundryops/internal/config"
	"laundryops/internal/domain"
	"laundryops/internal/domain/models"
	"laundryops/internal/http/middleware"
	"laundryops/internal/http/respond"
	"laundryops/internal/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

var userSortFields = []string{"id", "name", "username", "role", "created_at"}

func actorRole(c *gin.Context) domain.Role {
	return domain.ParseRole(middleware.UserRole(c))
}

// requireManage checks the management matrix for the target role and writes
// the 400/403 itself when the check fails.
func requireManage(c *gin.Context, target domain.Role) bool {
	if !target.Valid() {
		RespondDomainError(c, domain.ValidationError{Field: "role", Msg: "must be one of master, admin, worker, client"})
		return false
	}
	actor := actorRole(c)
	if !domain.CanManage(actor, target) {
		respond.Err(c, http.StatusForbidden,
			fmt.Sprintf("role %s cannot manage %s accounts", actor, target), respond.CodeForbidden)
		return false
	}
	return true
}

// GET /api/users?role=&limit=&offset=&sort=&order=
func GetUsers(c *gin.Context) {
	p, err := NormalizePagination(c.Request.URL.Query(), userSortFields...)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	where := ""
	args := []any{}
	if role := domain.ParseRole(c.Query("role")); role != "" {
		where = " WHERE role = ?"
		args = append(args, role.String())
	}

	var total int64
	if err := intconfig.DB.QueryRow("SELECT COUNT(*) FROM users"+where, args...).Scan(&total); err != nil {
		RespondDomainError(c, err)
		return
	}

	query := `
        SELECT id, name, username, email, phone, role, status, created_at, updated_at
        FROM users` + where + " ORDER BY " + p.Sort + " " + p.Order + " LIMIT ? OFFSET ?"
	rows, err := intconfig.DB.Query(query, append(args, p.Limit, p.Offset)...)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	defer rows.Close()

	list := []models.PublicUser{}
	for rows.Next() {
		var u models.PublicUser
		if err := rows.Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt); err != nil {
			RespondDomainError(c, err)
			return
		}
		list = append(list, u)
	}
	if err := rows.Err(); err != nil {
		RespondDomainError(c, err)
		return
	}

	respond.List(c, list, p.Page(total))
}

// GET /api/users/:id
func GetUserByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	var u models.PublicUser
	err := intconfig.DB.QueryRow(`
        SELECT id, name, username, email, phone, role, status, created_at, updated_at
        FROM users WHERE id = ?
    `, id).Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			RespondDomainError(c, domain.NotFoundError{Resource: "user"})
		} else {
			RespondDomainError(c, err)
		}
		return
	}

	respond.OK(c, http.StatusOK, u)
}

type userRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

// POST /api/users
func CreateUser(c *gin.Context) {
	var req userRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	target := domain.ParseRole(req.Role)
	if !requireManage(c, target) {
		return
	}

	req.Name = utils.NormalizeSpace(req.Name)
	req.Username = utils.TrimOrEmpty(req.Username)
	req.Email = utils.TrimOrEmpty(req.Email)
	if req.Name == "" || req.Username == "" || req.Email == "" {
		RespondDomainError(c, domain.ValidationError{Msg: "name, username, and email are required"})
		return
	}
	if len(req.Password) < 8 {
		RespondDomainError(c, domain.ValidationError{Field: "password", Msg: "must be at least 8 characters"})
		return
	}
	if req.Status == "" {
		req.Status = "active"
	}

	var exists int
	if err := intconfig.DB.QueryRow(
		"SELECT COUNT(*) FROM users WHERE email = ? OR username = ?",
		req.Email, req.Username,
	).Scan(&exists); err != nil {
		RespondDomainError(c, err)
		return
	}
	if exists > 0 {
		RespondDomainError(c, domain.ConflictError{Resource: "user", Msg: "email or username already taken"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	res, err := intconfig.DB.Exec(`
        INSERT INTO users (name, username, email, phone, password_hash, role, status, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
    `, req.Name, req.Username, req.Email, req.Phone, string(hash), target.String(), req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	id, _ := res.LastInsertId()
	respond.OK(c, http.StatusCreated, gin.H{"id": id, "role": target.String()})
}

// PUT /api/users/:id
// The actor must be able to manage both the user's current role and the new
// one, so an admin can neither touch another admin nor promote anyone to one.
// Omitted fields keep their stored values.
func UpdateUser(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var req userRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	var curName, curPhone, curRole, curStatus string
	err := intconfig.DB.QueryRow(
		"SELECT name, phone, role, status FROM users WHERE id = ?", id,
	).Scan(&curName, &curPhone, &curRole, &curStatus)
	if err != nil {
		if err == sql.ErrNoRows {
			RespondDomainError(c, domain.NotFoundError{Resource: "user"})
		} else {
			RespondDomainError(c, err)
		}
		return
	}

	currentRole := domain.ParseRole(curRole)
	if !requireManage(c, currentRole) {
		return
	}

	target := currentRole
	if req.Role != "" {
		target = domain.ParseRole(req.Role)
		if !requireManage(c, target) {
			return
		}
	}

	name := utils.NormalizeSpace(req.Name)
	if name == "" {
		name = curName
	}
	phone := utils.TrimOrEmpty(req.Phone)
	if phone == "" {
		phone = curPhone
	}
	status := utils.TrimOrEmpty(req.Status)
	if status == "" {
		status = curStatus
	}

	_, err = intconfig.DB.Exec(`
        UPDATE users
        SET name = ?, phone = ?, role = ?, status = ?, updated_at = NOW()
        WHERE id = ?
    `, name, phone, target.String(), status, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	respond.OK(c, http.StatusOK, gin.H{"id": id, "role": target.String()})
}

// DELETE /api/users/:id
func DeleteUser(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if id == middleware.UserID(c) {
		RespondDomainError(c, domain.ConflictError{Resource: "user", Msg: "cannot delete your own account"})
		return
	}

	currentRole, ok := lookupUserRole(c, id)
	if !ok {
		return
	}
	if !requireManage(c, currentRole) {
		return
	}

	if _, err := intconfig.DB.Exec("DELETE FROM users WHERE id = ?", id); err != nil {
		RespondDomainError(c, err)
		return
	}

	respond.OK(c, http.StatusOK, gin.H{"deleted": id})
}

func lookupUserRole(c *gin.Context, id int64) (domain.Role, bool) {
	var raw string
	err := intconfig.DB.QueryRow("SELECT role FROM users WHERE id = ?", id).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			RespondDomainError(c, domain.NotFoundError{Resource: "user"})
		} else {
			RespondDomainError(c, err)
		}
		return "", false
	}
	return domain.ParseRole(raw), true
}
