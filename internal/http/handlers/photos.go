package handlers

import (
	"net/http"
	"path"
	"strings"

	intconfig "laundryops/internal/config"
	"laundryops/internal/domain"
	"laundryops/internal/domain/models"
	"laundryops/internal/http/middleware"
	"laundryops/internal/http/respond"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type photoRequest struct {
	Filename string `json:"filename"`
	Kind     string `json:"kind"`
}

// POST /api/jobs/:id/photos
// Registers photo metadata for a cleaning job. The binary goes to object
// storage separately; the object key returned here is where it belongs.
func CreateJobPhoto(c *gin.Context) {
	jobID, ok := PathID(c)
	if !ok {
		return
	}
	var req photoRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	req.Filename = strings.TrimSpace(req.Filename)
	if req.Filename == "" {
		RespondDomainError(c, domain.ValidationError{Field: "filename", Msg: "is required"})
		return
	}
	if !models.ValidPhotoKind(req.Kind) {
		RespondDomainError(c, domain.ValidationError{Field: "kind", Msg: "must be before or after"})
		return
	}

	var exists int
	if err := intconfig.DB.QueryRow("SELECT COUNT(*) FROM jobs WHERE id = ?", jobID).Scan(&exists); err != nil {
		RespondDomainError(c, err)
		return
	}
	if exists == 0 {
		RespondDomainError(c, domain.NotFoundError{Resource: "job"})
		return
	}

	objectKey := uuid.NewString() + strings.ToLower(path.Ext(req.Filename))

	res, err := intconfig.DB.Exec(`
        INSERT INTO job_photos (job_id, object_key, filename, kind, uploaded_by, created_at)
        VALUES (?, ?, ?, ?, ?, NOW())
    `, jobID, objectKey, req.Filename, req.Kind, middleware.UserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	id, _ := res.LastInsertId()
	respond.OK(c, http.StatusCreated, gin.H{"id": id, "object_key": objectKey})
}

// GET /api/jobs/:id/photos
func GetJobPhotos(c *gin.Context) {
	jobID, ok := PathID(c)
	if !ok {
		return
	}

	rows, err := intconfig.DB.Query(`
        SELECT id, job_id, object_key, filename, kind, uploaded_by, created_at
        FROM job_photos
        WHERE job_id = ?
        ORDER BY id ASC
    `, jobID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	defer rows.Close()

	list := []models.JobPhoto{}
	for rows.Next() {
		var p models.JobPhoto
		if err := rows.Scan(&p.ID, &p.JobID, &p.ObjectKey, &p.Filename, &p.Kind, &p.UploadedBy, &p.CreatedAt); err != nil {
			RespondDomainError(c, err)
			return
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		RespondDomainError(c, err)
		return
	}

	respond.List(c, list, respond.Page{Total: int64(len(list)), Limit: len(list), Offset: 0})
}

// DELETE /api/jobs/:id/photos/:photoID
func DeleteJobPhoto(c *gin.Context) {
	jobID, ok := PathID(c)
	if !ok {
		return
	}
	photoID := strings.TrimSpace(c.Param("photoID"))

	res, err := intconfig.DB.Exec(
		"DELETE FROM job_photos WHERE id = ? AND job_id = ?",
		photoID, jobID,
	)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		RespondDomainError(c, domain.NotFoundError{Resource: "photo"})
		return
	}

	respond.OK(c, http.StatusOK, gin.H{"deleted": photoID})
}
