package cli

import (
	"fmt"

	"github.com/mkhalil/studenthub/internal/analytics"
	"github.com/mkhalil/studenthub/internal/models"
	"github.com/mkhalil/studenthub/internal/validation"
)

type GoalCmd struct {
	Add    GoalAddCmd    `cmd:"" help:"Add a new goal."`
	List   GoalListCmd   `cmd:"" help:"List goals with progress."`
	Set    GoalSetCmd    `cmd:"" help:"Update fields of a goal."`
	Done   GoalDoneCmd   `cmd:"" help:"Mark a goal as completed."`
	Delete GoalDeleteCmd `cmd:"" help:"Delete a goal."`
}

type GoalAddCmd struct {
	Title       string  `arg:"" help:"Goal title."`
	Category    string  `short:"c" help:"Category (academic|fitness|spiritual|personal)." default:"personal"`
	Description string  `short:"d" help:"Optional description."`
	Initial     float64 `help:"Starting value." default:"0"`
	Target      float64 `short:"t" help:"Target value." required:""`
	Current     float64 `help:"Current value (defaults to the starting value)."`
	Deadline    string  `help:"Deadline in YYYY-MM-DD format."`
}

func (c *GoalAddCmd) Run(ctx *Context) error {
	repo, err := ctx.Repo()
	if err != nil {
		return err
	}

	current := c.Current
	if current == 0 {
		current = c.Initial
	}

	goal := models.Goal{
		Title:        c.Title,
		Category:     models.Category(c.Category),
		Description:  c.Description,
		InitialValue: c.Initial,
		TargetValue:  c.Target,
		CurrentValue: current,
		Status:       models.StatusNotStarted,
		Deadline:     c.Deadline,
	}
	if err := validation.CheckGoal(goal); err != nil {
		return err
	}

	created, err := repo.CreateGoal(goal)
	if err != nil {
		return err
	}

	fmt.Printf("Added goal: %s (%s)\n", created.Title, created.ID)
	return nil
}

type GoalListCmd struct {
	ShowIDs bool `help:"Show goal IDs." name:"show-ids"`
}

func (c *GoalListCmd) Run(ctx *Context) error {
	repo, err := ctx.Repo()
	if err != nil {
		return err
	}

	goals, err := repo.ListGoals()
	if err != nil {
		return err
	}
	if len(goals) == 0 {
		fmt.Println("No goals found")
		return nil
	}

	fmt.Println("Goals:")
	for _, g := range goals {
		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", g.ID)
		}
		fmt.Printf("  [%s] %s%s - %.0f%% (%s)\n",
			g.Status, g.Title, idStr, analytics.GoalProgress(g), g.Category)
		if g.Deadline != "" {
			fmt.Printf("      Deadline: %s\n", g.Deadline)
		}
	}
	return nil
}

type GoalSetCmd struct {
	ID       string   `arg:"" help:"Goal ID."`
	Title    *string  `help:"New title."`
	Current  *float64 `help:"New current value."`
	Target   *float64 `help:"New target value."`
	Status   *string  `help:"New status (not_started|in_progress|completed)."`
	Deadline *string  `help:"New deadline (YYYY-MM-DD)."`
}

func (c *GoalSetCmd) Run(ctx *Context) error {
	repo, err := ctx.Repo()
	if err != nil {
		return err
	}

	patch := models.GoalPatch{
		Title:        c.Title,
		CurrentValue: c.Current,
		TargetValue:  c.Target,
		Deadline:     c.Deadline,
	}
	if c.Status != nil {
		status := models.Status(*c.Status)
		if !validation.ValidStatus(status) {
			return fmt.Errorf("invalid status: %q", *c.Status)
		}
		patch.Status = &status
	}

	updated, err := repo.UpdateGoal(c.ID, patch)
	if err != nil {
		return err
	}

	fmt.Printf("Updated goal: %s - %.0f%%\n", updated.Title, analytics.GoalProgress(updated))
	return nil
}

type GoalDoneCmd struct {
	ID string `arg:"" help:"Goal ID."`
}

func (c *GoalDoneCmd) Run(ctx *Context) error {
	repo, err := ctx.Repo()
	if err != nil {
		return err
	}

	done := models.StatusCompleted
	updated, err := repo.UpdateGoal(c.ID, models.GoalPatch{Status: &done})
	if err != nil {
		return err
	}

	fmt.Printf("Completed goal: %s\n", updated.Title)
	return nil
}

type GoalDeleteCmd struct {
	ID string `arg:"" help:"Goal ID."`
}

func (c *GoalDeleteCmd) Run(ctx *Context) error {
	repo, err := ctx.Repo()
	if err != nil {
		return err
	}

	removed, err := repo.DeleteGoal(c.ID)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("goal not found: %s", c.ID)
	}

	fmt.Println("Deleted goal.")
	return nil
}
