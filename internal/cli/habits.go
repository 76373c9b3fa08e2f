package cli

import (
	"fmt"

	"github.com/mkhalil/studenthub/internal/models"
	"github.com/mkhalil/studenthub/internal/repository"
	"github.com/mkhalil/studenthub/internal/utils"
	"github.com/mkhalil/studenthub/internal/validation"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits."`
	Log    HabitLogCmd    `cmd:"" help:"Log a habit for today."`
	Status HabitStatusCmd `cmd:"" help:"Show today's habit status."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit."`
}

// findHabitByName resolves a habit by its display name, including the
// default set.
func findHabitByName(repo *repository.Repository, name string) (models.Habit, error) {
	habits, err := repo.ListHabits()
	if err != nil {
		return models.Habit{}, err
	}
	for _, h := range habits {
		if h.Name == name {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit not found: %q", name)
}

type HabitAddCmd struct {
	Name     string `arg:"" help:"Habit name."`
	Category string `short:"c" help:"Category (spiritual|academic|fitness|personal)." default:"personal"`
	Target   int    `short:"t" help:"Target frequency per day." default:"1"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	repo, err := ctx.Repo()
	if err != nil {
		return err
	}

	if _, err := findHabitByName(repo, c.Name); err == nil {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	habit := models.Habit{
		Name:            c.Name,
		Category:        models.Category(c.Category),
		TargetFrequency: c.Target,
	}
	if err := validation.CheckHabit(habit); err != nil {
		return err
	}

	created, err := repo.CreateHabit(habit)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s\n", created.Name)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	repo, err := ctx.Repo()
	if err != nil {
		return err
	}

	habits, err := repo.ListHabits()
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits found")
		return nil
	}

	fmt.Println("Habits:")
	for _, h := range habits {
		fmt.Printf("  %s (%s, %dx/day)\n", h.Name, h.Category, h.TargetFrequency)
	}
	return nil
}

type HabitLogCmd struct {
	Name   string `arg:"" help:"Habit name."`
	Missed bool   `help:"Record the habit as missed rather than completed."`
	Notes  string `short:"n" help:"Optional note for today's log."`
}

func (c *HabitLogCmd) Run(ctx *Context) error {
	repo, err := ctx.Repo()
	if err != nil {
		return err
	}

	habit, err := findHabitByName(repo, c.Name)
	if err != nil {
		return err
	}

	log, err := repo.LogHabit(habit.ID, !c.Missed, c.Notes)
	if err != nil {
		return err
	}

	state := "completed"
	if !log.Completed {
		state = "missed"
	}
	fmt.Printf("Logged %s as %s for %s\n", habit.Name, state, log.Date)
	return nil
}

type HabitStatusCmd struct{}

func (c *HabitStatusCmd) Run(ctx *Context) error {
	repo, err := ctx.Repo()
	if err != nil {
		return err
	}

	habits, err := repo.ListHabits()
	if err != nil {
		return err
	}

	todayLogs, err := repo.ListHabitLogs(utils.Today())
	if err != nil {
		return err
	}
	rate, err := ctx.Analytics.HabitCompletionRate("")
	if err != nil {
		return err
	}

	fmt.Println("Today's habits:")
	for _, h := range habits {
		mark := " "
		for _, l := range todayLogs {
			if l.HabitID == h.ID && l.Completed {
				mark = "x"
				break
			}
		}
		fmt.Printf("  [%s] %s\n", mark, h.Name)
	}
	fmt.Printf("\nCompletion rate: %.0f%%\n", rate)
	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	repo, err := ctx.Repo()
	if err != nil {
		return err
	}

	habit, err := findHabitByName(repo, c.Name)
	if err != nil {
		return err
	}

	removed, err := repo.DeleteHabit(habit.ID)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("default habits cannot be deleted")
	}

	fmt.Printf("Deleted habit: %s\n", habit.Name)
	return nil
}
