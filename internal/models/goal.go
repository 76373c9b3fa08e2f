package models

import "time"

// Category classifies goals and habits.
type Category string

const (
	CategoryAcademic  Category = "academic"
	CategoryFitness   Category = "fitness"
	CategorySpiritual Category = "spiritual"
	CategoryPersonal  Category = "personal"
)

// Status is the lifecycle status of a goal or task.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Goal is a measurable objective tracked from an initial value to a target.
type Goal struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Title        string    `json:"title"`
	Category     Category  `json:"category"`
	Description  string    `json:"description,omitempty"`
	InitialValue float64   `json:"initial_value"`
	TargetValue  float64   `json:"target_value"`
	CurrentValue float64   `json:"current_value"`
	Status       Status    `json:"status"`
	Deadline     string    `json:"deadline,omitempty"` // YYYY-MM-DD format
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// GoalPatch is a partial update; nil fields are left unchanged.
type GoalPatch struct {
	Title        *string
	Category     *Category
	Description  *string
	InitialValue *float64
	TargetValue  *float64
	CurrentValue *float64
	Status       *Status
	Deadline     *string
}
