package repository

import (
	"github.com/google/uuid"

	"github.com/mkhalil/studenthub/internal/errors"
	"github.com/mkhalil/studenthub/internal/models"
)

// CreateGoal assigns id, owner and timestamps, appends the goal and persists.
// The id, user and timestamp fields of the input are overwritten.
func (r *Repository) CreateGoal(g models.Goal) (models.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireUserLocked(); err != nil {
		return models.Goal{}, err
	}

	now := r.now()
	g.ID = uuid.New().String()
	g.UserID = r.userID
	g.CreatedAt = now
	g.UpdatedAt = now

	r.goals = append(r.goals, g)
	r.persistLocked()
	return g, nil
}

// ListGoals returns the bound user's goals in insertion order.
func (r *Repository) ListGoals() ([]models.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if err := r.requireUserLocked(); err != nil {
		return nil, err
	}

	goals := make([]models.Goal, 0, len(r.goals))
	for _, g := range r.goals {
		if g.UserID == r.userID {
			goals = append(goals, g)
		}
	}
	return goals, nil
}

// UpdateGoal merges the patch into the goal with the given id owned by the
// bound user, refreshes updated_at and persists. Returns ErrNotFound when no
// such goal exists.
func (r *Repository) UpdateGoal(id string, patch models.GoalPatch) (models.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireUserLocked(); err != nil {
		return models.Goal{}, err
	}

	for i := range r.goals {
		if r.goals[i].ID != id || r.goals[i].UserID != r.userID {
			continue
		}

		g := &r.goals[i]
		setString(&g.Title, patch.Title)
		if patch.Category != nil {
			g.Category = *patch.Category
		}
		setString(&g.Description, patch.Description)
		setFloat(&g.InitialValue, patch.InitialValue)
		setFloat(&g.TargetValue, patch.TargetValue)
		setFloat(&g.CurrentValue, patch.CurrentValue)
		if patch.Status != nil {
			g.Status = *patch.Status
		}
		setString(&g.Deadline, patch.Deadline)
		g.UpdatedAt = r.now()

		r.persistLocked()
		return *g, nil
	}

	return models.Goal{}, errors.ErrNotFound
}

// DeleteGoal removes the goal with the given id owned by the bound user and
// persists. It reports whether a record was removed.
func (r *Repository) DeleteGoal(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireUserLocked(); err != nil {
		return false, err
	}

	for i := range r.goals {
		if r.goals[i].ID == id && r.goals[i].UserID == r.userID {
			r.goals = append(r.goals[:i], r.goals[i+1:]...)
			r.persistLocked()
			return true, nil
		}
	}
	return false, nil
}
