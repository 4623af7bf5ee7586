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

var jobSortFields = []string{"id", "scheduled_at", "status"}

const jobSelect = `
    SELECT j.id, j.client_id, c.name, j.property_address, j.scheduled_at, j.status,
           j.assigned_to, COALESCE(u.name, ''), j.notes, j.created_at, j.updated_at
    FROM jobs j
    JOIN clients c ON c.id = j.client_id
    LEFT JOIN users u ON u.id = j.assigned_to`

func scanJob(row interface{ Scan(...any) error }) (models.Job, error) {
	var j models.Job
	var assigned sql.NullInt64
	err := row.Scan(
		&j.ID, &j.ClientID, &j.ClientName, &j.PropertyAddress, &j.ScheduledAt, &j.Status,
		&assigned, &j.AssignedName, &j.Notes, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return models.Job{}, err
	}
	if assigned.Valid {
		v := assigned.Int64
		j.AssignedTo = &v
	}
	return j, nil
}

// GET /api/jobs?status=&assigned_to=&limit=&offset=&sort=&order=
func GetJobs(c *gin.Context) {
	p, err := NormalizePagination(c.Request.URL.Query(), jobSortFields...)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	where := []string{}
	args := []any{}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !models.ValidJobStatus(status) {
			RespondDomainError(c, domain.ValidationError{Field: "status", Msg: "unknown status " + status})
			return
		}
		where = append(where, "j.status = ?")
		args = append(args, status)
	}
	if assigned := strings.TrimSpace(c.Query("assigned_to")); assigned != "" {
		where = append(where, "j.assigned_to = ?")
		args = append(args, assigned)
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err := intconfig.DB.QueryRow("SELECT COUNT(*) FROM jobs j"+clause, args...).Scan(&total); err != nil {
		RespondDomainError(c, err)
		return
	}

	query := jobSelect + clause + " ORDER BY j." + p.Sort + " " + p.Order + " LIMIT ? OFFSET ?"
	rows, err := intconfig.DB.Query(query, append(args, p.Limit, p.Offset)...)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	defer rows.Close()

	list := []models.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		list = append(list, j)
	}
	if err := rows.Err(); err != nil {
		RespondDomainError(c, err)
		return
	}

	respond.List(c, list, p.Page(total))
}

// GET /api/jobs/:id
func GetJobByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	j, err := scanJob(intconfig.DB.QueryRow(jobSelect+" WHERE j.id = ?", id))
	if err != nil {
		if err == sql.ErrNoRows {
			RespondDomainError(c, domain.NotFoundError{Resource: "job"})
		} else {
			RespondDomainError(c, err)
		}
		return
	}

	respond.OK(c, http.StatusOK, j)
}

type jobRequest struct {
	ClientID        int64  `json:"client_id"`
	PropertyAddress string `json:"property_address"`
	ScheduledAt     string `json:"scheduled_at"` // "YYYY-MM-DD HH:MM:SS"
	Notes           string `json:"notes"`
}

// POST /api/jobs
func CreateJob(c *gin.Context) {
	var req jobRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.ClientID <= 0 {
		RespondDomainError(c, domain.ValidationError{Field: "client_id", Msg: "is required"})
		return
	}
	if strings.TrimSpace(req.PropertyAddress) == "" {
		RespondDomainError(c, domain.ValidationError{Field: "property_address", Msg: "is required"})
		return
	}
	scheduledAt, err := utils.ParseDateTime(req.ScheduledAt)
	if err != nil {
		RespondDomainError(c, domain.ValidationError{Field: "scheduled_at", Msg: "must be YYYY-MM-DD HH:MM:SS"})
		return
	}

	res, err := intconfig.DB.Exec(`
        INSERT INTO jobs (client_id, property_address, scheduled_at, status, notes, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, NOW(), NOW())
    `, req.ClientID, req.PropertyAddress, scheduledAt, models.JobStatusScheduled, req.Notes)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	id, _ := res.LastInsertId()
	respond.OK(c, http.StatusCreated, gin.H{"id": id, "status": models.JobStatusScheduled})
}

type jobStatusRequest struct {
	Status string `json:"status"`
}

// PUT /api/jobs/:id/status — same linear flow discipline as orders.
func UpdateJobStatus(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var req jobStatusRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	var current string
	err := intconfig.DB.QueryRow("SELECT status FROM jobs WHERE id = ?", id).Scan(&current)
	if err != nil {
		if err == sql.ErrNoRows {
			RespondDomainError(c, domain.NotFoundError{Resource: "job"})
		} else {
			RespondDomainError(c, err)
		}
		return
	}

	if next := models.NextJobStatus(current); next == "" || next != req.Status {
		RespondDomainError(c, domain.ConflictError{
			Resource: "job",
			Msg:      "cannot move from " + current + " to " + req.Status,
		})
		return
	}

	if _, err := intconfig.DB.Exec(
		"UPDATE jobs SET status = ?, updated_at = NOW() WHERE id = ?",
		req.Status, id,
	); err != nil {
		RespondDomainError(c, err)
		return
	}

	respond.OK(c, http.StatusOK, gin.H{"id": id, "status": req.Status})
}

type jobAssignRequest struct {
	UserID int64 `json:"user_id"`
}

// PUT /api/jobs/:id/assign — only workers take cleaning jobs.
func AssignJob(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var req jobAssignRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	var role string
	err := intconfig.DB.QueryRow("SELECT role FROM users WHERE id = ?", req.UserID).Scan(&role)
	if err != nil {
		if err == sql.ErrNoRows {
			RespondDomainError(c, domain.NotFoundError{Resource: "user"})
		} else {
			RespondDomainError(c, err)
		}
		return
	}
	if domain.ParseRole(role) != domain.RoleWorker {
		RespondDomainError(c, domain.ValidationError{Field: "user_id", Msg: "assignee must have the worker role"})
		return
	}

	res, err := intconfig.DB.Exec(
		"UPDATE jobs SET assigned_to = ?, updated_at = NOW() WHERE id = ?",
		req.UserID, id,
	)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		RespondDomainError(c, domain.NotFoundError{Resource: "job"})
		return
	}

	respond.OK(c, http.StatusOK, gin.H{"id": id, "assigned_to": req.UserID})
}
