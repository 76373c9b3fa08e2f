package repository

import (
	"github.com/google/uuid"

	"github.com/mkhalil/studenthub/internal/errors"
	"github.com/mkhalil/studenthub/internal/models"
)

// CreateReview assigns id, owner and timestamps, appends the review and
// persists. HabitsCompletedPercent is stored as given; the caller computes it
// from the habit completion rate at creation time and it is never recomputed.
func (r *Repository) CreateReview(v models.Review) (models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireUserLocked(); err != nil {
		return models.Review{}, err
	}

	now := r.now()
	v.ID = uuid.New().String()
	v.UserID = r.userID
	v.CreatedAt = now
	v.UpdatedAt = now

	r.reviews = append(r.reviews, v)
	r.persistLocked()
	return v, nil
}

// ListReviews returns the bound user's reviews in insertion order.
func (r *Repository) ListReviews() ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if err := r.requireUserLocked(); err != nil {
		return nil, err
	}

	reviews := make([]models.Review, 0, len(r.reviews))
	for _, v := range r.reviews {
		if v.UserID == r.userID {
			reviews = append(reviews, v)
		}
	}
	return reviews, nil
}

// UpdateReview merges the patch into the review with the given id owned by
// the bound user and persists. The captured habit percentage is not patchable.
func (r *Repository) UpdateReview(id string, patch models.ReviewPatch) (models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireUserLocked(); err != nil {
		return models.Review{}, err
	}

	for i := range r.reviews {
		if r.reviews[i].ID != id || r.reviews[i].UserID != r.userID {
			continue
		}

		v := &r.reviews[i]
		if patch.ReviewType != nil {
			v.ReviewType = *patch.ReviewType
		}
		setString(&v.Date, patch.Date)
		setString(&v.WhatWentWell, patch.WhatWentWell)
		setString(&v.WhatToImprove, patch.WhatToImprove)
		setString(&v.Notes, patch.Notes)
		v.UpdatedAt = r.now()

		r.persistLocked()
		return *v, nil
	}

	return models.Review{}, errors.ErrNotFound
}

// DeleteReview removes the review with the given id owned by the bound user
// and persists. It reports whether a record was removed.
func (r *Repository) DeleteReview(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireUserLocked(); err != nil {
		return false, err
	}

	for i := range r.reviews {
		if r.reviews[i].ID == id && r.reviews[i].UserID == r.userID {
			r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
			r.persistLocked()
			return true, nil
		}
	}
	return false, nil
}
