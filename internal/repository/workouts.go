package repository

import (
	"github.com/google/uuid"

	"github.com/mkhalil/studenthub/internal/errors"
	"github.com/mkhalil/studenthub/internal/models"
)

// CreateWorkout assigns id, owner and timestamps, appends the workout and persists.
func (r *Repository) CreateWorkout(w models.Workout) (models.Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireUserLocked(); err != nil {
		return models.Workout{}, err
	}

	now := r.now()
	w.ID = uuid.New().String()
	w.UserID = r.userID
	w.CreatedAt = now
	w.UpdatedAt = now

	r.workouts = append(r.workouts, w)
	r.persistLocked()
	return w, nil
}

// ListWorkouts returns the bound user's workouts in insertion order.
func (r *Repository) ListWorkouts() ([]models.Workout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if err := r.requireUserLocked(); err != nil {
		return nil, err
	}

	workouts := make([]models.Workout, 0, len(r.workouts))
	for _, w := range r.workouts {
		if w.UserID == r.userID {
			workouts = append(workouts, w)
		}
	}
	return workouts, nil
}

// UpdateWorkout merges the patch into the workout with the given id owned by
// the bound user and persists.
func (r *Repository) UpdateWorkout(id string, patch models.WorkoutPatch) (models.Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireUserLocked(); err != nil {
		return models.Workout{}, err
	}

	for i := range r.workouts {
		if r.workouts[i].ID != id || r.workouts[i].UserID != r.userID {
			continue
		}

		w := &r.workouts[i]
		setString(&w.Title, patch.Title)
		if patch.Type != nil {
			w.Type = *patch.Type
		}
		setString(&w.Date, patch.Date)
		setInt(&w.DurationMin, patch.DurationMin)
		setString(&w.Details, patch.Details)
		setFloat(&w.BodyWeight, patch.BodyWeight)
		setInt(&w.EnergyMood, patch.EnergyMood)
		setBool(&w.Completed, patch.Completed)
		setString(&w.GoalID, patch.GoalID)
		w.UpdatedAt = r.now()

		r.persistLocked()
		return *w, nil
	}

	return models.Workout{}, errors.ErrNotFound
}

// DeleteWorkout removes the workout with the given id owned by the bound user
// and persists. It reports whether a record was removed.
func (r *Repository) DeleteWorkout(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireUserLocked(); err != nil {
		return false, err
	}

	for i := range r.workouts {
		if r.workouts[i].ID == id && r.workouts[i].UserID == r.userID {
			r.workouts = append(r.workouts[:i], r.workouts[i+1:]...)
			r.persistLocked()
			return true, nil
		}
	}
	return false, nil
}
