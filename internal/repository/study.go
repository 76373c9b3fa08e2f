package repository

import (
	"github.com/google/uuid"

	"github.com/mkhalil/studenthub/internal/errors"
	"github.com/mkhalil/studenthub/internal/models"
)

// CreateStudySession assigns id, owner and timestamps, appends the session
// and persists.
func (r *Repository) CreateStudySession(s models.StudySession) (models.StudySession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireUserLocked(); err != nil {
		return models.StudySession{}, err
	}

	now := r.now()
	s.ID = uuid.New().String()
	s.UserID = r.userID
	s.CreatedAt = now
	s.UpdatedAt = now

	r.sessions = append(r.sessions, s)
	r.persistLocked()
	return s, nil
}

// ListStudySessions returns the bound user's study sessions in insertion order.
func (r *Repository) ListStudySessions() ([]models.StudySession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if err := r.requireUserLocked(); err != nil {
		return nil, err
	}

	sessions := make([]models.StudySession, 0, len(r.sessions))
	for _, s := range r.sessions {
		if s.UserID == r.userID {
			sessions = append(sessions, s)
		}
	}
	return sessions, nil
}

// UpdateStudySession merges the patch into the session with the given id
// owned by the bound user and persists. This is the sole mutation path for
// timer-accumulated durations; pages must not shortcut around it.
func (r *Repository) UpdateStudySession(id string, patch models.StudySessionPatch) (models.StudySession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireUserLocked(); err != nil {
		return models.StudySession{}, err
	}

	for i := range r.sessions {
		if r.sessions[i].ID != id || r.sessions[i].UserID != r.userID {
			continue
		}

		s := &r.sessions[i]
		setString(&s.Title, patch.Title)
		setString(&s.Subject, patch.Subject)
		setString(&s.Date, patch.Date)
		setInt(&s.DurationMin, patch.DurationMin)
		setString(&s.Resource, patch.Resource)
		setString(&s.Notes, patch.Notes)
		setBool(&s.Completed, patch.Completed)
		setString(&s.GoalID, patch.GoalID)
		s.UpdatedAt = r.now()

		r.persistLocked()
		return *s, nil
	}

	return models.StudySession{}, errors.ErrNotFound
}

// DeleteStudySession removes the session with the given id owned by the bound
// user and persists. It reports whether a record was removed.
func (r *Repository) DeleteStudySession(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireUserLocked(); err != nil {
		return false, err
	}

	for i := range r.sessions {
		if r.sessions[i].ID == id && r.sessions[i].UserID == r.userID {
			r.sessions = append(r.sessions[:i], r.sessions[i+1:]...)
			r.persistLocked()
			return true, nil
		}
	}
	return false, nil
}
