package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/mkhalil/studenthub/internal/models"
	"github.com/mkhalil/studenthub/internal/utils"
	"github.com/mkhalil/studenthub/internal/validation"
)

type JournalCmd struct {
	Add  JournalAddCmd  `cmd:"" help:"Write a journal entry (interactive)."`
	List JournalListCmd `cmd:"" help:"List journal entries."`
}

type JournalAddCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)."`
}

func (c *JournalAddCmd) Run(ctx *Context) error {
	repo, err := ctx.Repo()
	if err != nil {
		return err
	}

	date := c.Date
	if date == "" {
		date = utils.Today()
	}

	var (
		entryType  = string(models.EntryGeneral)
		mood       = "5"
		intentions string
		gratitude  string
		notes      string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Entry type").
				Options(huh.NewOptions(
					string(models.EntryMorningPrayer),
					string(models.EntryGratitude),
					string(models.EntryReflection),
					string(models.EntryGeneral),
				)...).
				Value(&entryType),
			huh.NewInput().
				Title("Mood (1-10)").
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || !validation.ValidRating(n) {
						return fmt.Errorf("enter a number between 1 and 10")
					}
					return nil
				}).
				Value(&mood),
			huh.NewText().Title("Prayer intentions").Value(&intentions),
			huh.NewText().Title("Gratitude list").Value(&gratitude),
			huh.NewText().Title("Notes").Value(&notes),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	moodVal, _ := strconv.Atoi(mood)
	entry := models.JournalEntry{
		Date:             date,
		EntryType:        models.EntryType(entryType),
		Mood:             moodVal,
		PrayerIntentions: intentions,
		GratitudeList:    gratitude,
		Notes:            notes,
	}
	if err := validation.CheckJournalEntry(entry); err != nil {
		return err
	}

	created, err := repo.CreateJournalEntry(entry)
	if err != nil {
		return err
	}

	fmt.Printf("Saved %s entry for %s\n", created.EntryType, created.Date)
	return nil
}

type JournalListCmd struct {
	Date string `help:"Filter to a single date (YYYY-MM-DD)."`
}

func (c *JournalListCmd) Run(ctx *Context) error {
	repo, err := ctx.Repo()
	if err != nil {
		return err
	}

	entries, err := repo.ListJournalEntries()
	if err != nil {
		return err
	}

	shown := 0
	for _, e := range entries {
		if c.Date != "" && e.Date != c.Date {
			continue
		}
		shown++
		fmt.Printf("%s [%s] mood %d/10\n", e.Date, e.EntryType, e.Mood)
		if e.Notes != "" {
			fmt.Printf("    %s\n", e.Notes)
		}
	}
	if shown == 0 {
		fmt.Println("No journal entries found")
	}
	return nil
}
