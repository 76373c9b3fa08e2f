package repository

import "github.com/mkhalil/studenthub/internal/models"

// ListQuotes returns the full seeded quote set. Quotes are global content,
// so no user filtering applies and no bound user is required.
func (r *Repository) ListQuotes() []models.Quote {
	r.mu.RLock()
	defer r.mu.RUnlock()

	quotes := make([]models.Quote, len(r.quotes))
	copy(quotes, r.quotes)
	return quotes
}
