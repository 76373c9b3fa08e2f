package models

import "time"

// WorkoutType is the training discipline of a workout.
type WorkoutType string

const (
	WorkoutBoxing    WorkoutType = "boxing"
	WorkoutGym       WorkoutType = "gym"
	WorkoutWrestling WorkoutType = "wrestling"
	WorkoutCardio    WorkoutType = "cardio"
	WorkoutOther     WorkoutType = "other"
)

// Workout records a single training session.
type Workout struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id"`
	Title       string      `json:"title"`
	Type        WorkoutType `json:"type"`
	Date        string      `json:"date"` // YYYY-MM-DD format
	DurationMin int         `json:"duration_min"`
	Details     string      `json:"details,omitempty"`
	BodyWeight  float64     `json:"body_weight,omitempty"`
	EnergyMood  int         `json:"energy_mood"` // 1-10
	Completed   bool        `json:"completed"`
	GoalID      string      `json:"goal_id,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// WorkoutPatch is a partial update; nil fields are left unchanged.
type WorkoutPatch struct {
	Title       *string
	Type        *WorkoutType
	Date        *string
	DurationMin *int
	Details     *string
	BodyWeight  *float64
	EnergyMood  *int
	Completed   *bool
	GoalID      *string
}
