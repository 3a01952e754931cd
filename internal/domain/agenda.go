package domain

import "time"

// Audience is a scheduled court hearing for a process.
type Audience struct {
	ID        string
	ProcessID string
	Title     string
	Date      time.Time
	Location  *string
	Notes     *string
	CreatedAt time.Time
}

// Deadline is a dated procedural obligation for a process.
type Deadline struct {
	ID          string
	ProcessID   string
	Title       string
	Date        time.Time
	Description *string
	Done        bool
	CreatedAt   time.Time
}

// Movement is a docket entry recorded against a process.
type Movement struct {
	ID          string
	ProcessID   string
	Date        time.Time
	Description string
	CreatedAt   time.Time
}
