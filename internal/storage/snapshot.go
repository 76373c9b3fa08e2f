package storage

import (
	"encoding/json"

	"github.com/mkhalil/studenthub/internal/logger"
	"github.com/mkhalil/studenthub/internal/models"
)

// Snapshot is the full set of entity collections for one user, persisted as
// a single opaque JSON blob. The top-level keys are the stable on-disk layout;
// a snapshot written by a different shape decodes defensively to empty
// collections per missing or invalid key.
type Snapshot struct {
	Goals          []models.Goal         `json:"goals"`
	Tasks          []models.Task         `json:"tasks"`
	StudySessions  []models.StudySession `json:"studySessions"`
	Workouts       []models.Workout      `json:"workouts"`
	JournalEntries []models.JournalEntry `json:"journalEntries"`
	Habits         []models.Habit        `json:"habits"`
	HabitLogs      []models.HabitLog     `json:"habitLogs"`
	Reviews        []models.Review       `json:"reviews"`
	Quotes         []models.Quote        `json:"quotes"`
}

// EmptySnapshot returns a snapshot with all collections present and empty.
func EmptySnapshot() Snapshot {
	s := Snapshot{}
	s.normalize()
	return s
}

func (s *Snapshot) normalize() {
	if s.Goals == nil {
		s.Goals = []models.Goal{}
	}
	if s.Tasks == nil {
		s.Tasks = []models.Task{}
	}
	if s.StudySessions == nil {
		s.StudySessions = []models.StudySession{}
	}
	if s.Workouts == nil {
		s.Workouts = []models.Workout{}
	}
	if s.JournalEntries == nil {
		s.JournalEntries = []models.JournalEntry{}
	}
	if s.Habits == nil {
		s.Habits = []models.Habit{}
	}
	if s.HabitLogs == nil {
		s.HabitLogs = []models.HabitLog{}
	}
	if s.Reviews == nil {
		s.Reviews = []models.Review{}
	}
	if s.Quotes == nil {
		s.Quotes = []models.Quote{}
	}
}

// decodeSnapshot parses a stored blob. Malformed data is recovered locally
// by substituting an empty snapshot; it is never surfaced to the caller.
func decodeSnapshot(data []byte, userID string) Snapshot {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		logger.Warn("Malformed snapshot, starting empty", "user", userID, "error", err)
		return EmptySnapshot()
	}
	s.normalize()
	return s
}

func encodeSnapshot(s Snapshot) ([]byte, error) {
	s.normalize()
	return json.MarshalIndent(s, "", "  ")
}
