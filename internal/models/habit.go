package models

import "time"

// Habit represents a recurring practice to track. Default habits are seeded
// with an empty owner and projected onto every user at read time.
type Habit struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Name            string    `json:"name"`
	Category        Category  `json:"category"`
	TargetFrequency int       `json:"target_frequency"` // times per day, >= 1
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// HabitPatch is a partial update; nil fields are left unchanged.
type HabitPatch struct {
	Name            *string
	Category        *Category
	TargetFrequency *int
}

// HabitLog represents a single day's record of a habit. At most one log
// exists per (user, habit, day); logging again replaces the prior record.
type HabitLog struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	HabitID   string    `json:"habit_id"`
	Date      string    `json:"date"` // YYYY-MM-DD format
	Completed bool      `json:"completed"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
