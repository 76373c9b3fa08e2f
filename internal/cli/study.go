package cli

import (
	"fmt"

	"github.com/mkhalil/studenthub/internal/models"
	"github.com/mkhalil/studenthub/internal/utils"
	"github.com/mkhalil/studenthub/internal/validation"
)

type StudyCmd struct {
	Add    StudyAddCmd    `cmd:"" help:"Log a study session."`
	List   StudyListCmd   `cmd:"" help:"List study sessions."`
	Edit   StudyEditCmd   `cmd:"" help:"Edit a study session."`
	Delete StudyDeleteCmd `cmd:"" help:"Delete a study session."`
}

type StudyAddCmd struct {
	Title    string `arg:"" help:"Session title."`
	Subject  string `short:"s" help:"Subject studied." required:""`
	Date     string `help:"Date in YYYY-MM-DD format (default: today)."`
	Duration int    `short:"d" help:"Duration in minutes." default:"0"`
	Resource string `help:"Resource used (book, course, etc.)."`
	Notes    string `short:"n" help:"Optional notes."`
	Done     bool   `help:"Mark the session completed."`
	Goal     string `help:"Linked goal ID."`
}

func (c *StudyAddCmd) Run(ctx *Context) error {
	repo, err := ctx.Repo()
	if err != nil {
		return err
	}

	date := c.Date
	if date == "" {
		date = utils.Today()
	}

	session := models.StudySession{
		Title:       c.Title,
		Subject:     c.Subject,
		Date:        date,
		DurationMin: c.Duration,
		Resource:    c.Resource,
		Notes:       c.Notes,
		Completed:   c.Done,
		GoalID:      c.Goal,
	}
	if err := validation.CheckStudySession(session); err != nil {
		return err
	}

	created, err := repo.CreateStudySession(session)
	if err != nil {
		return err
	}

	fmt.Printf("Logged study session: %s - %s (%s)\n", created.Subject, created.Title, created.ID)
	return nil
}

type StudyListCmd struct {
	ShowIDs bool `help:"Show session IDs." name:"show-ids"`
}

func (c *StudyListCmd) Run(ctx *Context) error {
	repo, err := ctx.Repo()
	if err != nil {
		return err
	}

	sessions, err := repo.ListStudySessions()
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No study sessions found")
		return nil
	}

	fmt.Println("Study sessions:")
	for _, s := range sessions {
		status := "planned"
		if s.Completed {
			status = "done"
		}
		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", s.ID)
		}
		fmt.Printf("  %s [%s] %s - %s%s - %dm\n", s.Date, status, s.Subject, s.Title, idStr, s.DurationMin)
	}

	minutes, err := ctx.Analytics.WeeklyStudyMinutes()
	if err != nil {
		return err
	}
	fmt.Printf("\nCompleted this week: %dm\n", minutes)
	return nil
}

type StudyEditCmd struct {
	ID       string  `arg:"" help:"Session ID."`
	Title    *string `help:"New title."`
	Subject  *string `help:"New subject."`
	Date     *string `help:"New date (YYYY-MM-DD)."`
	Duration *int    `short:"d" help:"New duration in minutes."`
	Notes    *string `help:"New notes."`
	Done     *bool   `help:"Set completion state."`
}

func (c *StudyEditCmd) Run(ctx *Context) error {
	repo, err := ctx.Repo()
	if err != nil {
		return err
	}

	updated, err := repo.UpdateStudySession(c.ID, models.StudySessionPatch{
		Title:       c.Title,
		Subject:     c.Subject,
		Date:        c.Date,
		DurationMin: c.Duration,
		Notes:       c.Notes,
		Completed:   c.Done,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Updated study session: %s - %dm\n", updated.Title, updated.DurationMin)
	return nil
}

type StudyDeleteCmd struct {
	ID string `arg:"" help:"Session ID."`
}

func (c *StudyDeleteCmd) Run(ctx *Context) error {
	repo, err := ctx.Repo()
	if err != nil {
		return err
	}

	removed, err := repo.DeleteStudySession(c.ID)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("study session not found: %s", c.ID)
	}

	fmt.Println("Deleted study session.")
	return nil
}
