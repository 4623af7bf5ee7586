package handlers

import (
	"database/sql"
	"net/http"
	"strings"

	intconfig "laundryops/internal/config"
	"laundryops/internal/domain"
	"laundryops/internal/domain/models"
	"laundryops/internal/http/middleware"
	"laundryops/internal/http/respond"

	"github.com/gin-gonic/gin"
)

var timeEntrySortFields = []string{"id", "clock_in"}

type clockInRequest struct {
	JobID *int64 `json:"job_id"`
	Notes string `json:"notes"`
}

// POST /api/time-entries/clock-in
// A worker has at most one open entry; clocking in twice is a conflict.
func ClockIn(c *gin.Context) {
	var req clockInRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	userID := middleware.UserID(c)

	var open int
	err := intconfig.DB.QueryRow(
		"SELECT COUNT(*) FROM time_entries WHERE user_id = ? AND clock_out IS NULL",
		userID,
	).Scan(&open)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if open > 0 {
		RespondDomainError(c, domain.ConflictError{Resource: "time entry", Msg: "already clocked in"})
		return
	}

	if req.JobID != nil {
		var exists int
		if err := intconfig.DB.QueryRow("SELECT COUNT(*) FROM jobs WHERE id = ?", *req.JobID).Scan(&exists); err != nil {
			RespondDomainError(c, err)
			return
		}
		if exists == 0 {
			RespondDomainError(c, domain.NotFoundError{Resource: "job"})
			return
		}
	}

	res, err := intconfig.DB.Exec(`
        INSERT INTO time_entries (user_id, job_id, clock_in, notes, created_at)
        VALUES (?, ?, NOW(), ?, NOW())
    `, userID, req.JobID, req.Notes)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	id, _ := res.LastInsertId()
	respond.OK(c, http.StatusCreated, gin.H{"id": id})
}

// POST /api/time-entries/clock-out
func ClockOut(c *gin.Context) {
	userID := middleware.UserID(c)

	res, err := intconfig.DB.Exec(
		"UPDATE time_entries SET clock_out = NOW() WHERE user_id = ? AND clock_out IS NULL",
		userID,
	)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		RespondDomainError(c, domain.ConflictError{Resource: "time entry", Msg: "not clocked in"})
		return
	}

	respond.OK(c, http.StatusOK, gin.H{"clocked_out": true})
}

// GET /api/time-entries?user_id=&limit=&offset=&sort=&order=
// Workers see their own entries; admins and masters may filter by user.
func GetTimeEntries(c *gin.Context) {
	p, err := NormalizePagination(c.Request.URL.Query(), timeEntrySortFields...)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	where := []string{}
	args := []any{}

	if actorRole(c) == domain.RoleWorker {
		where = append(where, "t.user_id = ?")
		args = append(args, middleware.UserID(c))
	} else if userID := strings.TrimSpace(c.Query("user_id")); userID != "" {
		where = append(where, "t.user_id = ?")
		args = append(args, userID)
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err := intconfig.DB.QueryRow("SELECT COUNT(*) FROM time_entries t"+clause, args...).Scan(&total); err != nil {
		RespondDomainError(c, err)
		return
	}

	query := `
        SELECT t.id, t.user_id, u.name, t.job_id, t.clock_in, t.clock_out, t.notes, t.created_at
        FROM time_entries t
        JOIN users u ON u.id = t.user_id` + clause +
		" ORDER BY t." + p.Sort + " " + p.Order + " LIMIT ? OFFSET ?"
	rows, err := intconfig.DB.Query(query, append(args, p.Limit, p.Offset)...)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	defer rows.Close()

	list := []models.TimeEntry{}
	for rows.Next() {
		var e models.TimeEntry
		var jobID sql.NullInt64
		var out sql.NullTime
		if err := rows.Scan(&e.ID, &e.UserID, &e.UserName, &jobID, &e.ClockIn, &out, &e.Notes, &e.CreatedAt); err != nil {
			RespondDomainError(c, err)
			return
		}
		if jobID.Valid {
			v := jobID.Int64
			e.JobID = &v
		}
		if out.Valid {
			t := out.Time
			e.ClockOut = &t
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		RespondDomainError(c, err)
		return
	}

	respond.List(c, list, p.Page(total))
}
