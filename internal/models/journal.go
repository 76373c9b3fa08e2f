package models

import "time"

// EntryType is the kind of journal entry.
type EntryType string

const (
	EntryMorningPrayer EntryType = "morning_prayer"
	EntryGratitude     EntryType = "gratitude"
	EntryReflection    EntryType = "reflection"
	EntryGeneral       EntryType = "general"
)

// JournalEntry is a dated journal record with a mood rating.
type JournalEntry struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Date             string    `json:"date"` // YYYY-MM-DD format
	EntryType        EntryType `json:"entry_type"`
	Mood             int       `json:"mood"` // 1-10
	PrayerIntentions string    `json:"prayer_intentions,omitempty"`
	GratitudeList    string    `json:"gratitude_list,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// JournalEntryPatch is a partial update; nil fields are left unchanged.
type JournalEntryPatch struct {
	Date             *string
	EntryType        *EntryType
	Mood             *int
	PrayerIntentions *string
	GratitudeList    *string
	Notes            *string
}
