package models

import "time"

// StudySession records a block of study time for a subject.
type StudySession struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Subject     string    `json:"subject"`
	Date        string    `json:"date"` // YYYY-MM-DD format
	DurationMin int       `json:"duration_min"`
	Resource    string    `json:"resource,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	Completed   bool      `json:"completed"`
	GoalID      string    `json:"goal_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StudySessionPatch is a partial update; nil fields are left unchanged.
type StudySessionPatch struct {
	Title       *string
	Subject     *string
	Date        *string
	DurationMin *int
	Resource    *string
	Notes       *string
	Completed   *bool
	GoalID      *string
}
