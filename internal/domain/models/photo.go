package models

import "time"

// JobPhoto is metadata for a before/after photo attached to a cleaning job.
// The file itself lives in object storage under ObjectKey; this backend only
// records the reference.
type JobPhoto struct {
	ID         int64     `json:"id"`
	JobID      int64     `json:"job_id"`
	ObjectKey  string    `json:"object_key"`
	Filename   string    `json:"filename"`
	Kind       string    `json:"kind"` // before | after
	UploadedBy int64     `json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// ValidPhotoKind reports whether k is an accepted photo kind.
func ValidPhotoKind(k string) bool {
	return k == "before" || k == "after"
}
