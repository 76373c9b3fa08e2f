package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/mkhalil/studenthub/internal/models"
	"github.com/mkhalil/studenthub/internal/utils"
	"github.com/mkhalil/studenthub/internal/validation"
)

type ReviewCmd struct {
	New  ReviewNewCmd  `cmd:"" help:"Write a review (interactive)."`
	List ReviewListCmd `cmd:"" help:"List reviews."`
}

type ReviewNewCmd struct {
	Type string `short:"t" help:"Review cadence (daily|weekly|monthly)." default:"daily"`
	Date string `help:"Date in YYYY-MM-DD format (default: today)."`
}

func (c *ReviewNewCmd) Run(ctx *Context) error {
	repo, err := ctx.Repo()
	if err != nil {
		return err
	}

	date := c.Date
	if date == "" {
		date = utils.Today()
	}

	var wentWell, toImprove, notes string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().Title("What went well?").Value(&wentWell),
			huh.NewText().Title("What could be improved?").Value(&toImprove),
			huh.NewText().Title("Notes").Value(&notes),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	// The habit percentage is captured once, at creation time.
	rate, err := ctx.Analytics.HabitCompletionRate(date)
	if err != nil {
		return err
	}

	review := models.Review{
		ReviewType:             models.ReviewType(c.Type),
		Date:                   date,
		WhatWentWell:           wentWell,
		WhatToImprove:          toImprove,
		HabitsCompletedPercent: rate,
		Notes:                  notes,
	}
	if err := validation.CheckReview(review); err != nil {
		return err
	}

	created, err := repo.CreateReview(review)
	if err != nil {
		return err
	}

	fmt.Printf("Saved %s review for %s (habits at %.0f%%)\n",
		created.ReviewType, created.Date, created.HabitsCompletedPercent)
	return nil
}

type ReviewListCmd struct{}

func (c *ReviewListCmd) Run(ctx *Context) error {
	repo, err := ctx.Repo()
	if err != nil {
		return err
	}

	reviews, err := repo.ListReviews()
	if err != nil {
		return err
	}
	if len(reviews) == 0 {
		fmt.Println("No reviews found")
		return nil
	}

	fmt.Println("Reviews:")
	for _, v := range reviews {
		fmt.Printf("  %s [%s] habits %.0f%%\n", v.Date, v.ReviewType, v.HabitsCompletedPercent)
		if v.WhatWentWell != "" {
			fmt.Printf("      Went well: %s\n", v.WhatWentWell)
		}
		if v.WhatToImprove != "" {
			fmt.Printf("      Improve: %s\n", v.WhatToImprove)
		}
	}
	return nil
}
