package models

import "time"

const (
	JobStatusScheduled  = "scheduled"
	JobStatusInProgress = "in_progress"
	JobStatusDone       = "done"
)

// Job is an Airbnb cleaning job at a client's property.
type Job struct {
	ID              int64     `json:"id"`
	ClientID        int64     `json:"client_id"`
	ClientName      string    `json:"client_name,omitempty"`
	PropertyAddress string    `json:"property_address"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	Status          string    `json:"status"`
	AssignedTo      *int64    `json:"assigned_to,omitempty"`
	AssignedName    string    `json:"assigned_name,omitempty"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ValidJobStatus reports whether s is one of the known job statuses.
func ValidJobStatus(s string) bool {
	switch s {
	case JobStatusScheduled, JobStatusInProgress, JobStatusDone:
		return true
	}
	return false
}

// NextJobStatus mirrors the linear order flow for cleaning jobs.
func NextJobStatus(current string) string {
	switch current {
	case JobStatusScheduled:
		return JobStatusInProgress
	case JobStatusInProgress:
		return JobStatusDone
	}
	return ""
}
