package repository

import (
	"sync"
	"time"

	"github.com/mkhalil/studenthub/internal/errors"
	"github.com/mkhalil/studenthub/internal/logger"
	"github.com/mkhalil/studenthub/internal/models"
	"github.com/mkhalil/studenthub/internal/storage"
)

// Repository owns the in-memory entity collections for the currently bound
// user and mirrors every mutation to the storage adapter as a full snapshot.
// It is constructed explicitly and passed by handle; there is no package
// singleton. Default habits and the seeded quote set live outside the
// per-user collections and are merged in at read time.
type Repository struct {
	mu      sync.RWMutex
	adapter storage.Adapter
	now     func() time.Time

	userID string

	defaults []models.Habit // seeded, owner ""

	goals     []models.Goal
	tasks     []models.Task
	sessions  []models.StudySession
	workouts  []models.Workout
	entries   []models.JournalEntry
	habits    []models.Habit
	habitLogs []models.HabitLog
	reviews   []models.Review
	quotes    []models.Quote
}

// New returns a repository backed by the given adapter, with the default
// habit and quote sets seeded. No user is bound yet.
func New(adapter storage.Adapter) *Repository {
	r := &Repository{
		adapter: adapter,
		now:     time.Now,
	}
	r.defaults = defaultHabits(r.now())
	r.quotes = defaultQuotes(r.now())
	return r
}

// Bind swaps the repository to the given user: the user's snapshot is loaded
// and hydrates the collections before any operation is accepted. Binding the
// empty user id unbinds and clears all per-user state. A failed load degrades
// to empty collections for the session rather than failing the bind.
func (r *Repository) Bind(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.userID = userID
	if userID == "" {
		r.clearLocked()
		return
	}

	snap, err := r.adapter.Load(userID)
	if err != nil {
		logger.Warn("Snapshot load failed, starting empty", "user", userID, "error", err)
		snap = storage.EmptySnapshot()
	}

	r.goals = snap.Goals
	r.tasks = snap.Tasks
	r.sessions = snap.StudySessions
	r.workouts = snap.Workouts
	r.entries = snap.JournalEntries
	r.habits = snap.Habits
	r.habitLogs = snap.HabitLogs
	r.reviews = snap.Reviews
	// The quote set is global seeded content; a persisted set (which may carry
	// favorite flags) takes precedence, an absent one keeps the seeds.
	if len(snap.Quotes) > 0 {
		r.quotes = snap.Quotes
	}
}

func (r *Repository) clearLocked() {
	r.goals = nil
	r.tasks = nil
	r.sessions = nil
	r.workouts = nil
	r.entries = nil
	r.habits = nil
	r.habitLogs = nil
	r.reviews = nil
	r.quotes = defaultQuotes(r.now())
}

// BoundUser returns the currently bound user id, or "" if none.
func (r *Repository) BoundUser() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.userID
}

// requireUserLocked must be called with the lock held.
func (r *Repository) requireUserLocked() error {
	if r.userID == "" {
		return errors.ErrNotAuthenticated
	}
	return nil
}

// persistLocked writes the full snapshot for the bound user. Persistence
// failures are logged and swallowed: the session degrades to in-memory-only
// operation, it never fails the mutation that triggered the save.
func (r *Repository) persistLocked() {
	snap := storage.Snapshot{
		Goals:          r.goals,
		Tasks:          r.tasks,
		StudySessions:  r.sessions,
		Workouts:       r.workouts,
		JournalEntries: r.entries,
		Habits:         r.habits,
		HabitLogs:      r.habitLogs,
		Reviews:        r.reviews,
		Quotes:         r.quotes,
	}
	if err := r.adapter.Save(r.userID, snap); err != nil {
		logger.Warn("Snapshot save failed, continuing in memory", "user", r.userID, "error", err)
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
