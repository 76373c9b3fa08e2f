package models

import "time"

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Task is a single actionable item, optionally linked to a goal.
type Task struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Status       Status     `json:"status"`
	Priority     Priority   `json:"priority"`
	DueDate      string     `json:"due_date,omitempty"` // YYYY-MM-DD format
	Tags         []string   `json:"tags"`
	GoalID       string     `json:"goal_id,omitempty"`
	EstimatedMin int        `json:"estimated_min,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TaskPatch is a partial update; nil fields are left unchanged.
// CompletedAt is managed by the repository based on status transitions
// and cannot be set directly.
type TaskPatch struct {
	Title        *string
	Description  *string
	Status       *Status
	Priority     *Priority
	DueDate      *string
	Tags         []string
	GoalID       *string
	EstimatedMin *int
}
