package repository

import (
	"github.com/google/uuid"

	"github.com/mkhalil/studenthub/internal/errors"
	"github.com/mkhalil/studenthub/internal/models"
	"github.com/mkhalil/studenthub/internal/utils"
)

// CreateHabit assigns id, owner and timestamps, appends the habit and persists.
func (r *Repository) CreateHabit(h models.Habit) (models.Habit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireUserLocked(); err != nil {
		return models.Habit{}, err
	}

	now := r.now()
	h.ID = uuid.New().String()
	h.UserID = r.userID
	h.CreatedAt = now
	h.UpdatedAt = now

	r.habits = append(r.habits, h)
	r.persistLocked()
	return h, nil
}

// ListHabits returns the default habits followed by the bound user's own.
// Defaults are a read-time projection: the returned copies display as owned
// by the bound user, the underlying seed records keep their empty owner and
// are never mutated.
func (r *Repository) ListHabits() ([]models.Habit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if err := r.requireUserLocked(); err != nil {
		return nil, err
	}

	habits := make([]models.Habit, 0, len(r.defaults)+len(r.habits))
	for _, h := range r.defaults {
		h.UserID = r.userID
		habits = append(habits, h)
	}
	for _, h := range r.habits {
		if h.UserID == r.userID {
			habits = append(habits, h)
		}
	}
	return habits, nil
}

// UpdateHabit merges the patch into the habit with the given id owned by the
// bound user and persists. Default habits are not updatable and report
// ErrNotFound.
func (r *Repository) UpdateHabit(id string, patch models.HabitPatch) (models.Habit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireUserLocked(); err != nil {
		return models.Habit{}, err
	}

	for i := range r.habits {
		if r.habits[i].ID != id || r.habits[i].UserID != r.userID {
			continue
		}

		h := &r.habits[i]
		setString(&h.Name, patch.Name)
		if patch.Category != nil {
			h.Category = *patch.Category
		}
		setInt(&h.TargetFrequency, patch.TargetFrequency)
		h.UpdatedAt = r.now()

		r.persistLocked()
		return *h, nil
	}

	return models.Habit{}, errors.ErrNotFound
}

// DeleteHabit removes the habit with the given id owned by the bound user and
// persists. Default habits cannot be deleted. It reports whether a record was
// removed.
func (r *Repository) DeleteHabit(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireUserLocked(); err != nil {
		return false, err
	}

	for i := range r.habits {
		if r.habits[i].ID == id && r.habits[i].UserID == r.userID {
			r.habits = append(r.habits[:i], r.habits[i+1:]...)
			r.persistLocked()
			return true, nil
		}
	}
	return false, nil
}

// LogHabit records today's log for a habit as an upsert keyed by
// (user, habit, today): any existing log for that key is replaced, so at
// most one log per habit per day exists. The second call's completed and
// notes values win.
func (r *Repository) LogHabit(habitID string, completed bool, notes string) (models.HabitLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireUserLocked(); err != nil {
		return models.HabitLog{}, err
	}

	today := utils.FormatDate(r.now())

	kept := r.habitLogs[:0]
	for _, l := range r.habitLogs {
		if l.HabitID == habitID && l.Date == today && l.UserID == r.userID {
			continue
		}
		kept = append(kept, l)
	}
	r.habitLogs = kept

	log := models.HabitLog{
		ID:        uuid.New().String(),
		UserID:    r.userID,
		HabitID:   habitID,
		Date:      today,
		Completed: completed,
		Notes:     notes,
		CreatedAt: r.now(),
	}
	r.habitLogs = append(r.habitLogs, log)
	r.persistLocked()
	return log, nil
}

// ListHabitLogs returns the bound user's habit logs, filtered to an exact
// date when one is given ("" lists all).
func (r *Repository) ListHabitLogs(date string) ([]models.HabitLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if err := r.requireUserLocked(); err != nil {
		return nil, err
	}

	logs := make([]models.HabitLog, 0, len(r.habitLogs))
	for _, l := range r.habitLogs {
		if l.UserID != r.userID {
			continue
		}
		if date != "" && l.Date != date {
			continue
		}
		logs = append(logs, l)
	}
	return logs, nil
}
