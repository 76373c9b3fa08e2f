package cli

import (
	"fmt"
	"strings"

	"github.com/mkhalil/studenthub/internal/models"
	"github.com/mkhalil/studenthub/internal/validation"
)

type TaskCmd struct {
	Add    TaskAddCmd    `cmd:"" help:"Add a new task."`
	List   TaskListCmd   `cmd:"" help:"List tasks."`
	Edit   TaskEditCmd   `cmd:"" help:"Edit an existing task."`
	Done   TaskDoneCmd   `cmd:"" help:"Mark a task as completed."`
	Delete TaskDeleteCmd `cmd:"" help:"Delete a task."`
}

type TaskAddCmd struct {
	Title       string   `arg:"" help:"Task title."`
	Description string   `short:"d" help:"Optional description."`
	Priority    string   `short:"p" help:"Priority (low|medium|high)." default:"medium"`
	Due         string   `help:"Due date in YYYY-MM-DD format."`
	Tags        []string `short:"t" help:"Comma-separated tags."`
	Goal        string   `help:"Linked goal ID."`
	Estimate    int      `short:"e" help:"Estimated duration in minutes."`
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	repo, err := ctx.Repo()
	if err != nil {
		return err
	}

	task := models.Task{
		Title:        c.Title,
		Description:  c.Description,
		Status:       models.StatusNotStarted,
		Priority:     models.Priority(c.Priority),
		DueDate:      c.Due,
		Tags:         c.Tags,
		GoalID:       c.Goal,
		EstimatedMin: c.Estimate,
	}
	if err := validation.CheckTask(task); err != nil {
		return err
	}

	created, err := repo.CreateTask(task)
	if err != nil {
		return err
	}

	fmt.Printf("Added task: %s (%s)\n", created.Title, created.ID)
	return nil
}

type TaskListCmd struct {
	Today   bool `help:"Show only tasks due today."`
	ShowIDs bool `help:"Show task IDs." name:"show-ids"`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	repo, err := ctx.Repo()
	if err != nil {
		return err
	}

	var tasks []models.Task
	if c.Today {
		tasks, err = ctx.Analytics.TodayTasks()
	} else {
		tasks, err = repo.ListTasks()
	}
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	fmt.Println("Tasks:")
	for _, t := range tasks {
		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", t.ID)
		}
		fmt.Printf("  [%s] %s%s (%s priority)\n", t.Status, t.Title, idStr, t.Priority)
		if t.DueDate != "" {
			fmt.Printf("      Due: %s\n", t.DueDate)
		}
		if len(t.Tags) > 0 {
			fmt.Printf("      Tags: %s\n", strings.Join(t.Tags, ", "))
		}
	}
	return nil
}

type TaskEditCmd struct {
	ID          string  `arg:"" help:"Task ID."`
	Title       *string `help:"New title."`
	Description *string `help:"New description."`
	Status      *string `help:"New status (not_started|in_progress|completed)."`
	Priority    *string `help:"New priority (low|medium|high)."`
	Due         *string `help:"New due date (YYYY-MM-DD)."`
	Estimate    *int    `help:"New estimated duration in minutes."`
}

func (c *TaskEditCmd) Run(ctx *Context) error {
	repo, err := ctx.Repo()
	if err != nil {
		return err
	}

	patch := models.TaskPatch{
		Title:        c.Title,
		Description:  c.Description,
		DueDate:      c.Due,
		EstimatedMin: c.Estimate,
	}
	if c.Status != nil {
		status := models.Status(*c.Status)
		if !validation.ValidStatus(status) {
			return fmt.Errorf("invalid status: %q", *c.Status)
		}
		patch.Status = &status
	}
	if c.Priority != nil {
		priority := models.Priority(*c.Priority)
		if !validation.ValidPriority(priority) {
			return fmt.Errorf("invalid priority: %q", *c.Priority)
		}
		patch.Priority = &priority
	}

	updated, err := repo.UpdateTask(c.ID, patch)
	if err != nil {
		return err
	}

	fmt.Printf("Updated task: %s\n", updated.Title)
	return nil
}

type TaskDoneCmd struct {
	ID string `arg:"" help:"Task ID."`
}

func (c *TaskDoneCmd) Run(ctx *Context) error {
	repo, err := ctx.Repo()
	if err != nil {
		return err
	}

	done := models.StatusCompleted
	updated, err := repo.UpdateTask(c.ID, models.TaskPatch{Status: &done})
	if err != nil {
		return err
	}

	fmt.Printf("Completed task: %s\n", updated.Title)
	return nil
}

type TaskDeleteCmd struct {
	ID string `arg:"" help:"Task ID."`
}

func (c *TaskDeleteCmd) Run(ctx *Context) error {
	repo, err := ctx.Repo()
	if err != nil {
		return err
	}

	removed, err := repo.DeleteTask(c.ID)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("task not found: %s", c.ID)
	}

	fmt.Println("Deleted task.")
	return nil
}
