package models

import "time"

// ReviewType is the cadence of a review.
type ReviewType string

const (
	ReviewDaily   ReviewType = "daily"
	ReviewWeekly  ReviewType = "weekly"
	ReviewMonthly ReviewType = "monthly"
)

// Review is a retrospective entry. HabitsCompletedPercent is captured from
// the habit completion rate at creation time and never recomputed.
type Review struct {
	ID                     string     `json:"id"`
	UserID                 string     `json:"user_id"`
	ReviewType             ReviewType `json:"review_type"`
	Date                   string     `json:"date"` // YYYY-MM-DD format
	WhatWentWell           string     `json:"what_went_well,omitempty"`
	WhatToImprove          string     `json:"what_to_improve,omitempty"`
	HabitsCompletedPercent float64    `json:"habits_completed_percent"`
	Notes                  string     `json:"notes,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

// ReviewPatch is a partial update; nil fields are left unchanged.
// HabitsCompletedPercent is fixed at creation and not patchable.
type ReviewPatch struct {
	ReviewType    *ReviewType
	Date          *string
	WhatWentWell  *string
	WhatToImprove *string
	Notes         *string
}
