package repository

import (
	"github.com/google/uuid"

	"github.com/mkhalil/studenthub/internal/errors"
	"github.com/mkhalil/studenthub/internal/models"
)

// CreateTask assigns id, owner and timestamps, appends the task and persists.
// A task created already completed gets completed_at stamped immediately.
func (r *Repository) CreateTask(t models.Task) (models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireUserLocked(); err != nil {
		return models.Task{}, err
	}

	now := r.now()
	t.ID = uuid.New().String()
	t.UserID = r.userID
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Tags == nil {
		t.Tags = []string{}
	}
	if t.Status == models.StatusCompleted {
		done := now
		t.CompletedAt = &done
	} else {
		t.CompletedAt = nil
	}

	r.tasks = append(r.tasks, t)
	r.persistLocked()
	return t, nil
}

// ListTasks returns the bound user's tasks in insertion order.
func (r *Repository) ListTasks() ([]models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if err := r.requireUserLocked(); err != nil {
		return nil, err
	}

	tasks := make([]models.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if t.UserID == r.userID {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

// UpdateTask merges the patch into the task with the given id owned by the
// bound user and persists. completed_at is set when the status transitions
// to completed and cleared when it transitions away.
func (r *Repository) UpdateTask(id string, patch models.TaskPatch) (models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireUserLocked(); err != nil {
		return models.Task{}, err
	}

	for i := range r.tasks {
		if r.tasks[i].ID != id || r.tasks[i].UserID != r.userID {
			continue
		}

		t := &r.tasks[i]
		now := r.now()

		setString(&t.Title, patch.Title)
		setString(&t.Description, patch.Description)
		if patch.Status != nil && *patch.Status != t.Status {
			if *patch.Status == models.StatusCompleted {
				done := now
				t.CompletedAt = &done
			} else {
				t.CompletedAt = nil
			}
			t.Status = *patch.Status
		}
		if patch.Priority != nil {
			t.Priority = *patch.Priority
		}
		setString(&t.DueDate, patch.DueDate)
		if patch.Tags != nil {
			t.Tags = patch.Tags
		}
		setString(&t.GoalID, patch.GoalID)
		setInt(&t.EstimatedMin, patch.EstimatedMin)
		t.UpdatedAt = now

		r.persistLocked()
		return *t, nil
	}

	return models.Task{}, errors.ErrNotFound
}

// DeleteTask removes the task with the given id owned by the bound user and
// persists. It reports whether a record was removed.
func (r *Repository) DeleteTask(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireUserLocked(); err != nil {
		return false, err
	}

	for i := range r.tasks {
		if r.tasks[i].ID == id && r.tasks[i].UserID == r.userID {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			r.persistLocked()
			return true, nil
		}
	}
	return false, nil
}
