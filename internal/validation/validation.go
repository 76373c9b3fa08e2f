package validation

import (
	"fmt"

	"github.com/mkhalil/studenthub/internal/constants"
	"github.com/mkhalil/studenthub/internal/models"
	"github.com/mkhalil/studenthub/internal/utils"
)

// Field-domain validation applied at the entity-model boundary, before the
// repository is asked to create a record. The repository itself does not
// reject out-of-range input; analytics assume these domains hold.

// ValidCategory reports whether c is a known goal/habit category.
func ValidCategory(c models.Category) bool {
	switch c {
	case models.CategoryAcademic, models.CategoryFitness, models.CategorySpiritual, models.CategoryPersonal:
		return true
	}
	return false
}

// ValidStatus reports whether s is a known goal/task status.
func ValidStatus(s models.Status) bool {
	switch s {
	case models.StatusNotStarted, models.StatusInProgress, models.StatusCompleted:
		return true
	}
	return false
}

// ValidPriority reports whether p is a known task priority.
func ValidPriority(p models.Priority) bool {
	switch p {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
		return true
	}
	return false
}

// ValidWorkoutType reports whether t is a known workout type.
func ValidWorkoutType(t models.WorkoutType) bool {
	switch t {
	case models.WorkoutBoxing, models.WorkoutGym, models.WorkoutWrestling, models.WorkoutCardio, models.WorkoutOther:
		return true
	}
	return false
}

// ValidEntryType reports whether t is a known journal entry type.
func ValidEntryType(t models.EntryType) bool {
	switch t {
	case models.EntryMorningPrayer, models.EntryGratitude, models.EntryReflection, models.EntryGeneral:
		return true
	}
	return false
}

// ValidReviewType reports whether t is a known review cadence.
func ValidReviewType(t models.ReviewType) bool {
	switch t {
	case models.ReviewDaily, models.ReviewWeekly, models.ReviewMonthly:
		return true
	}
	return false
}

// ValidRating reports whether n is within the 1-10 mood/energy scale.
func ValidRating(n int) bool {
	return n >= constants.RatingMin && n <= constants.RatingMax
}

// CheckGoal validates the field domains of a goal before creation.
func CheckGoal(g models.Goal) error {
	if g.Title == "" {
		return fmt.Errorf("title is required")
	}
	if !ValidCategory(g.Category) {
		return fmt.Errorf("invalid category: %q", g.Category)
	}
	if !ValidStatus(g.Status) {
		return fmt.Errorf("invalid status: %q", g.Status)
	}
	if g.Deadline != "" && !utils.ValidDate(g.Deadline) {
		return fmt.Errorf("invalid deadline (expected YYYY-MM-DD): %q", g.Deadline)
	}
	return nil
}

// CheckTask validates the field domains of a task before creation.
func CheckTask(t models.Task) error {
	if t.Title == "" {
		return fmt.Errorf("title is required")
	}
	if !ValidStatus(t.Status) {
		return fmt.Errorf("invalid status: %q", t.Status)
	}
	if !ValidPriority(t.Priority) {
		return fmt.Errorf("invalid priority: %q", t.Priority)
	}
	if t.DueDate != "" && !utils.ValidDate(t.DueDate) {
		return fmt.Errorf("invalid due date (expected YYYY-MM-DD): %q", t.DueDate)
	}
	if t.EstimatedMin < 0 {
		return fmt.Errorf("estimated duration must not be negative")
	}
	return nil
}

// CheckStudySession validates the field domains of a study session before creation.
func CheckStudySession(s models.StudySession) error {
	if s.Title == "" {
		return fmt.Errorf("title is required")
	}
	if s.Subject == "" {
		return fmt.Errorf("subject is required")
	}
	if !utils.ValidDate(s.Date) {
		return fmt.Errorf("invalid date (expected YYYY-MM-DD): %q", s.Date)
	}
	if s.DurationMin < 0 {
		return fmt.Errorf("duration must not be negative")
	}
	return nil
}

// CheckWorkout validates the field domains of a workout before creation.
func CheckWorkout(w models.Workout) error {
	if w.Title == "" {
		return fmt.Errorf("title is required")
	}
	if !ValidWorkoutType(w.Type) {
		return fmt.Errorf("invalid workout type: %q", w.Type)
	}
	if !utils.ValidDate(w.Date) {
		return fmt.Errorf("invalid date (expected YYYY-MM-DD): %q", w.Date)
	}
	if w.DurationMin < 0 {
		return fmt.Errorf("duration must not be negative")
	}
	if !ValidRating(w.EnergyMood) {
		return fmt.Errorf("energy/mood must be between %d and %d", constants.RatingMin, constants.RatingMax)
	}
	return nil
}

// CheckJournalEntry validates the field domains of a journal entry before creation.
func CheckJournalEntry(e models.JournalEntry) error {
	if !utils.ValidDate(e.Date) {
		return fmt.Errorf("invalid date (expected YYYY-MM-DD): %q", e.Date)
	}
	if !ValidEntryType(e.EntryType) {
		return fmt.Errorf("invalid entry type: %q", e.EntryType)
	}
	if !ValidRating(e.Mood) {
		return fmt.Errorf("mood must be between %d and %d", constants.RatingMin, constants.RatingMax)
	}
	return nil
}

// CheckHabit validates the field domains of a habit before creation.
func CheckHabit(h models.Habit) error {
	if h.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !ValidCategory(h.Category) {
		return fmt.Errorf("invalid category: %q", h.Category)
	}
	if h.TargetFrequency < 1 {
		return fmt.Errorf("target frequency must be at least 1")
	}
	return nil
}

// CheckReview validates the field domains of a review before creation.
func CheckReview(r models.Review) error {
	if !ValidReviewType(r.ReviewType) {
		return fmt.Errorf("invalid review type: %q", r.ReviewType)
	}
	if !utils.ValidDate(r.Date) {
		return fmt.Errorf("invalid date (expected YYYY-MM-DD): %q", r.Date)
	}
	if r.HabitsCompletedPercent < 0 || r.HabitsCompletedPercent > 100 {
		return fmt.Errorf("habits completed percent must be between 0 and 100")
	}
	return nil
}
