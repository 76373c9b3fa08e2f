package analytics

import (
	"time"

	"github.com/mkhalil/studenthub/internal/constants"
	"github.com/mkhalil/studenthub/internal/models"
	"github.com/mkhalil/studenthub/internal/utils"
)

// Source is the read surface the engine aggregates over. The repository
// satisfies it.
type Source interface {
	ListTasks() ([]models.Task, error)
	ListStudySessions() ([]models.StudySession, error)
	ListHabits() ([]models.Habit, error)
	ListHabitLogs(date string) ([]models.HabitLog, error)
	ListQuotes() []models.Quote
}

// Engine derives day- and week-scoped views from repository state. Every
// result is computed fresh on each call; the source collections are small and
// in-memory, so there is no caching to invalidate.
type Engine struct {
	repo Source
	now  func() time.Time
}

// New returns an engine reading from the given source.
func New(repo Source) *Engine {
	return &Engine{repo: repo, now: time.Now}
}

// TodayTasks returns the tasks due on the current local calendar date.
func (e *Engine) TodayTasks() ([]models.Task, error) {
	tasks, err := e.repo.ListTasks()
	if err != nil {
		return nil, err
	}

	today := utils.FormatDate(e.now())
	due := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.DueDate == today {
			due = append(due, t)
		}
	}
	return due, nil
}

// HabitCompletionRate returns the percentage of habits with a completed log
// on the given date ("" means today). The habit count includes the default
// set; an empty habit list yields 0 rather than a division by zero.
func (e *Engine) HabitCompletionRate(date string) (float64, error) {
	if date == "" {
		date = utils.FormatDate(e.now())
	}

	habits, err := e.repo.ListHabits()
	if err != nil {
		return 0, err
	}
	if len(habits) == 0 {
		return 0, nil
	}

	logs, err := e.repo.ListHabitLogs(date)
	if err != nil {
		return 0, err
	}

	completed := 0
	for _, l := range logs {
		if l.Completed {
			completed++
		}
	}
	return float64(completed) / float64(len(habits)) * 100, nil
}

// WeeklyStudyMinutes sums the duration of completed study sessions dated
// within the last seven days (inclusive lower bound).
func (e *Engine) WeeklyStudyMinutes() (int, error) {
	sessions, err := e.repo.ListStudySessions()
	if err != nil {
		return 0, err
	}

	total := 0
	now := e.now()
	for _, s := range sessions {
		if s.Completed && utils.WithinLastDays(s.Date, constants.WeeklyWindowDays, now) {
			total += s.DurationMin
		}
	}
	return total, nil
}

// TodayQuote returns the quote of the day: a deterministic rotation indexed
// by day of month modulo the quote count, so the same calendar day always
// yields the same quote. ok is false when no quotes are seeded.
func (e *Engine) TodayQuote() (models.Quote, bool) {
	quotes := e.repo.ListQuotes()
	if len(quotes) == 0 {
		return models.Quote{}, false
	}
	return quotes[e.now().Day()%len(quotes)], true
}

// GoalProgress returns the goal's completion percentage, clamped to 0-100.
// A goal whose target equals its initial value is defined as 100 percent.
func GoalProgress(g models.Goal) float64 {
	if g.TargetValue == g.InitialValue {
		return 100
	}
	p := (g.CurrentValue - g.InitialValue) / (g.TargetValue - g.InitialValue) * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
