package repository

import (
	"time"

	"github.com/google/uuid"

	"github.com/mkhalil/studenthub/internal/models"
)

// defaultHabits is the fixed starter set visible to every user. The records
// carry an empty owner and are never mutated; ListHabits projects them onto
// the bound user at read time.
func defaultHabits(now time.Time) []models.Habit {
	seeds := []struct {
		name     string
		category models.Category
		target   int
	}{
		{"Fajr Prayer", models.CategorySpiritual, 1},
		{"Morning Workout", models.CategoryFitness, 1},
		{"Study Session", models.CategoryAcademic, 2},
		{"Gratitude Journal", models.CategoryPersonal, 1},
		{"Evening Review", models.CategoryPersonal, 1},
	}

	habits := make([]models.Habit, 0, len(seeds))
	for _, s := range seeds {
		habits = append(habits, models.Habit{
			ID:              uuid.New().String(),
			UserID:          "",
			Name:            s.name,
			Category:        s.category,
			TargetFrequency: s.target,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
	}
	return habits
}

// defaultQuotes is the fixed static quote set seeded at store initialization.
// Quotes are global content, not user-authored.
func defaultQuotes(now time.Time) []models.Quote {
	seeds := []struct {
		text     string
		author   string
		category models.QuoteCategory
	}{
		{"The only way to do great work is to love what you do.", "Steve Jobs", models.QuoteMotivation},
		{"Success is not final, failure is not fatal: it is the courage to continue that counts.", "Winston Churchill", models.QuoteMotivation},
		{"And whoever relies upon Allah - then He is sufficient for him.", "Quran 65:3", models.QuoteSpiritual},
		{"The best of people are those who benefit others.", "Prophet Muhammad (PBUH)", models.QuoteSpiritual},
		{"Education is the most powerful weapon which you can use to change the world.", "Nelson Mandela", models.QuoteAcademic},
	}

	quotes := make([]models.Quote, 0, len(seeds))
	for _, s := range seeds {
		quotes = append(quotes, models.Quote{
			ID:        uuid.New().String(),
			UserID:    "",
			Text:      s.text,
			Author:    s.author,
			Category:  s.category,
			CreatedAt: now,
		})
	}
	return quotes
}
