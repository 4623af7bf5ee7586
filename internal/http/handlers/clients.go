package handlers

import (
	"database/sql"
	"net/http"
	"strings"

	intconfig "laundryops/internal/config"
	"laundryops/internal/domain"
	"laundryops/internal/domain/models"
	"laundryops/internal/http/respond"
	"laundryops/internal/utils"

	"github.com/gin-gonic/gin"
)

var clientSortFields = []string{"id", "name", "created_at"}

// GET /api/clients?q=&segment=&limit=&offset=&sort=&order=
func GetClients(c *gin.Context) {
	p, err := NormalizePagination(c.Request.URL.Query(), clientSortFields...)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	where := []string{}
	args := []any{}

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		where = append(where, "(name LIKE ? OR phone LIKE ? OR email LIKE ?)")
		like := "%" + q + "%"
		args = append(args, like, like, like)
	}
	if seg := strings.TrimSpace(c.Query("segment")); seg != "" {
		if seg != "laundry" && seg != "airbnb" {
			RespondDomainError(c, domain.ValidationError{Field: "segment", Msg: "must be laundry or airbnb"})
			return
		}
		where = append(where, "segment = ?")
		args = append(args, seg)
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err := intconfig.DB.QueryRow("SELECT COUNT(*) FROM clients"+clause, args...).Scan(&total); err != nil {
		RespondDomainError(c, err)
		return
	}

	// sort and order come from the normalizer's allow-list, safe to splice
	query := `
        SELECT id, name, phone, email, address, segment, notes, created_at, updated_at
        FROM clients` + clause + " ORDER BY " + p.Sort + " " + p.Order + " LIMIT ? OFFSET ?"
	rows, err := intconfig.DB.Query(query, append(args, p.Limit, p.Offset)...)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	defer rows.Close()

	list := []models.Client{}
	for rows.Next() {
		var cl models.Client
		if err := rows.Scan(&cl.ID, &cl.Name, &cl.Phone, &cl.Email, &cl.Address, &cl.Segment, &cl.Notes, &cl.CreatedAt, &cl.UpdatedAt); err != nil {
			RespondDomainError(c, err)
			return
		}
		list = append(list, cl)
	}
	if err := rows.Err(); err != nil {
		RespondDomainError(c, err)
		return
	}

	respond.List(c, list, p.Page(total))
}

// GET /api/clients/:id
func GetClientByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	var cl models.Client
	err := intconfig.DB.QueryRow(`
        SELECT id, name, phone, email, address, segment, notes, created_at, updated_at
        FROM clients WHERE id = ?
    `, id).Scan(&cl.ID, &cl.Name, &cl.Phone, &cl.Email, &cl.Address, &cl.Segment, &cl.Notes, &cl.CreatedAt, &cl.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			RespondDomainError(c, domain.NotFoundError{Resource: "client"})
		} else {
			RespondDomainError(c, err)
		}
		return
	}

	respond.OK(c, http.StatusOK, cl)
}

type clientRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Segment string `json:"segment"`
	Notes   string `json:"notes"`
}

func (r *clientRequest) validate() error {
	r.Name = utils.NormalizeSpace(r.Name)
	if r.Name == "" {
		return domain.ValidationError{Field: "name", Msg: "is required"}
	}
	r.Segment = utils.TrimOrEmpty(r.Segment)
	if r.Segment == "" {
		r.Segment = "laundry"
	}
	if r.Segment != "laundry" && r.Segment != "airbnb" {
		return domain.ValidationError{Field: "segment", Msg: "must be laundry or airbnb"}
	}
	return nil
}

// POST /api/clients
func CreateClient(c *gin.Context) {
	var req clientRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := req.validate(); err != nil {
		RespondDomainError(c, err)
		return
	}

	res, err := intconfig.DB.Exec(`
        INSERT INTO clients (name, phone, email, address, segment, notes, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, NOW(), NOW())
    `, req.Name, req.Phone, req.Email, req.Address, req.Segment, req.Notes)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	id, _ := res.LastInsertId()
	respond.OK(c, http.StatusCreated, gin.H{"id": id})
}

// PUT /api/clients/:id
func UpdateClient(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var req clientRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := req.validate(); err != nil {
		RespondDomainError(c, err)
		return
	}

	res, err := intconfig.DB.Exec(`
        UPDATE clients
        SET name = ?, phone = ?, email = ?, address = ?, segment = ?, notes = ?, updated_at = NOW()
        WHERE id = ?
    `, req.Name, req.Phone, req.Email, req.Address, req.Segment, req.Notes, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		RespondDomainError(c, domain.NotFoundError{Resource: "client"})
		return
	}

	respond.OK(c, http.StatusOK, gin.H{"id": id})
}

// DELETE /api/clients/:id
func DeleteClient(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	res, err := intconfig.DB.Exec("DELETE FROM clients WHERE id = ?", id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		RespondDomainError(c, domain.NotFoundError{Resource: "client"})
		return
	}

	respond.OK(c, http.StatusOK, gin.H{"deleted": id})
}
