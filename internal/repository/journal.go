package repository

import (
	"github.com/google/uuid"

	"github.com/mkhalil/studenthub/internal/errors"
	"github.com/mkhalil/studenthub/internal/models"
)

// CreateJournalEntry assigns id, owner and timestamps, appends the entry and persists.
func (r *Repository) CreateJournalEntry(e models.JournalEntry) (models.JournalEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireUserLocked(); err != nil {
		return models.JournalEntry{}, err
	}

	now := r.now()
	e.ID = uuid.New().String()
	e.UserID = r.userID
	e.CreatedAt = now
	e.UpdatedAt = now

	r.entries = append(r.entries, e)
	r.persistLocked()
	return e, nil
}

// ListJournalEntries returns the bound user's journal entries in insertion order.
func (r *Repository) ListJournalEntries() ([]models.JournalEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if err := r.requireUserLocked(); err != nil {
		return nil, err
	}

	entries := make([]models.JournalEntry, 0, len(r.entries))
	for _, e := range r.entries {
		if e.UserID == r.userID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// UpdateJournalEntry merges the patch into the entry with the given id owned
// by the bound user and persists.
func (r *Repository) UpdateJournalEntry(id string, patch models.JournalEntryPatch) (models.JournalEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireUserLocked(); err != nil {
		return models.JournalEntry{}, err
	}

	for i := range r.entries {
		if r.entries[i].ID != id || r.entries[i].UserID != r.userID {
			continue
		}

		e := &r.entries[i]
		setString(&e.Date, patch.Date)
		if patch.EntryType != nil {
			e.EntryType = *patch.EntryType
		}
		setInt(&e.Mood, patch.Mood)
		setString(&e.PrayerIntentions, patch.PrayerIntentions)
		setString(&e.GratitudeList, patch.GratitudeList)
		setString(&e.Notes, patch.Notes)
		e.UpdatedAt = r.now()

		r.persistLocked()
		return *e, nil
	}

	return models.JournalEntry{}, errors.ErrNotFound
}

// DeleteJournalEntry removes the entry with the given id owned by the bound
// user and persists. It reports whether a record was removed.
func (r *Repository) DeleteJournalEntry(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireUserLocked(); err != nil {
		return false, err
	}

	for i := range r.entries {
		if r.entries[i].ID == id && r.entries[i].UserID == r.userID {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			r.persistLocked()
			return true, nil
		}
	}
	return false, nil
}
