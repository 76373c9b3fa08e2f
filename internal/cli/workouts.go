package cli

import (
	"fmt"

	"github.com/mkhalil/studenthub/internal/models"
	"github.com/mkhalil/studenthub/internal/utils"
	"github.com/mkhalil/studenthub/internal/validation"
)

type WorkoutCmd struct {
	Add    WorkoutAddCmd    `cmd:"" help:"Log a workout."`
	List   WorkoutListCmd   `cmd:"" help:"List workouts."`
	Edit   WorkoutEditCmd   `cmd:"" help:"Edit a workout."`
	Delete WorkoutDeleteCmd `cmd:"" help:"Delete a workout."`
}

type WorkoutAddCmd struct {
	Title    string  `arg:"" help:"Workout title."`
	Type     string  `short:"t" help:"Type (boxing|gym|wrestling|cardio|other)." default:"gym"`
	Date     string  `help:"Date in YYYY-MM-DD format (default: today)."`
	Duration int     `short:"d" help:"Duration in minutes." default:"0"`
	Details  string  `help:"Optional details."`
	Weight   float64 `short:"w" help:"Body weight."`
	Energy   int     `short:"e" help:"Energy/mood rating (1-10)." default:"5"`
	Done     bool    `help:"Mark the workout completed."`
	Goal     string  `help:"Linked goal ID."`
}

func (c *WorkoutAddCmd) Run(ctx *Context) error {
	repo, err := ctx.Repo()
	if err != nil {
		return err
	}

	date := c.Date
	if date == "" {
		date = utils.Today()
	}

	workout := models.Workout{
		Title:       c.Title,
		Type:        models.WorkoutType(c.Type),
		Date:        date,
		DurationMin: c.Duration,
		Details:     c.Details,
		BodyWeight:  c.Weight,
		EnergyMood:  c.Energy,
		Completed:   c.Done,
		GoalID:      c.Goal,
	}
	if err := validation.CheckWorkout(workout); err != nil {
		return err
	}

	created, err := repo.CreateWorkout(workout)
	if err != nil {
		return err
	}

	fmt.Printf("Logged workout: %s (%s)\n", created.Title, created.ID)
	return nil
}

type WorkoutListCmd struct {
	ShowIDs bool `help:"Show workout IDs." name:"show-ids"`
}

func (c *WorkoutListCmd) Run(ctx *Context) error {
	repo, err := ctx.Repo()
	if err != nil {
		return err
	}

	workouts, err := repo.ListWorkouts()
	if err != nil {
		return err
	}
	if len(workouts) == 0 {
		fmt.Println("No workouts found")
		return nil
	}

	fmt.Println("Workouts:")
	for _, w := range workouts {
		status := "planned"
		if w.Completed {
			status = "done"
		}
		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", w.ID)
		}
		fmt.Printf("  %s [%s] %s (%s)%s - %dm, energy %d/10\n",
			w.Date, status, w.Title, w.Type, idStr, w.DurationMin, w.EnergyMood)
	}
	return nil
}

type WorkoutEditCmd struct {
	ID       string   `arg:"" help:"Workout ID."`
	Title    *string  `help:"New title."`
	Date     *string  `help:"New date (YYYY-MM-DD)."`
	Duration *int     `short:"d" help:"New duration in minutes."`
	Weight   *float64 `short:"w" help:"New body weight."`
	Energy   *int     `short:"e" help:"New energy/mood rating (1-10)."`
	Done     *bool    `help:"Set completion state."`
}

func (c *WorkoutEditCmd) Run(ctx *Context) error {
	repo, err := ctx.Repo()
	if err != nil {
		return err
	}

	if c.Energy != nil && !validation.ValidRating(*c.Energy) {
		return fmt.Errorf("energy/mood must be between 1 and 10")
	}

	updated, err := repo.UpdateWorkout(c.ID, models.WorkoutPatch{
		Title:       c.Title,
		Date:        c.Date,
		DurationMin: c.Duration,
		BodyWeight:  c.Weight,
		EnergyMood:  c.Energy,
		Completed:   c.Done,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Updated workout: %s\n", updated.Title)
	return nil
}

type WorkoutDeleteCmd struct {
	ID string `arg:"" help:"Workout ID."`
}

func (c *WorkoutDeleteCmd) Run(ctx *Context) error {
	repo, err := ctx.Repo()
	if err != nil {
		return err
	}

	removed, err := repo.DeleteWorkout(c.ID)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("workout not found: %s", c.ID)
	}

	fmt.Println("Deleted workout.")
	return nil
}
