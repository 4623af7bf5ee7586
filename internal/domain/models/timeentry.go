package models

import "time"

// TimeEntry tracks a worker's clocked time, optionally tied to a cleaning job.
// ClockOut is nil while the entry is open; a worker has at most one open entry.
type TimeEntry struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"user_id"`
	UserName   string     `json:"user_name,omitempty"`
	JobID      *int64     `json:"job_id,omitempty"`
	ClockIn    time.Time  `json:"clock_in"`
	ClockOut   *time.Time `json:"clock_out,omitempty"`
	Notes      string     `json:"notes"`
	CreatedAt  time.Time  `json:"created_at"`
}

// DurationMinutes returns the tracked minutes, zero while the entry is open.
func (e TimeEntry) DurationMinutes() int64 {
	if e.ClockOut == nil {
		return 0
	}
	return int64(e.ClockOut.Sub(e.ClockIn).Minutes())
}
