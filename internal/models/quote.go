package models

import "time"

// QuoteCategory classifies quotes.
type QuoteCategory string

const (
	QuoteMotivation QuoteCategory = "motivation"
	QuoteSpiritual  QuoteCategory = "spiritual"
	QuoteAcademic   QuoteCategory = "academic"
	QuoteFitness    QuoteCategory = "fitness"
)

// Quote is a global (not user-authored) motivational quote.
type Quote struct {
	ID         string        `json:"id"`
	UserID     string        `json:"user_id"`
	Text       string        `json:"text"`
	Author     string        `json:"author,omitempty"`
	Category   QuoteCategory `json:"category"`
	IsFavorite bool          `json:"is_favorite"`
	CreatedAt  time.Time     `json:"created_at"`
}
