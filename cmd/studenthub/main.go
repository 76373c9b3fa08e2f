package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/mkhalil/studenthub/internal/analytics"
	"github.com/mkhalil/studenthub/internal/auth"
	"github.com/mkhalil/studenthub/internal/cli"
	"github.com/mkhalil/studenthub/internal/constants"
	"github.com/mkhalil/studenthub/internal/errors"
	"github.com/mkhalil/studenthub/internal/hub"
	"github.com/mkhalil/studenthub/internal/logger"
	"github.com/mkhalil/studenthub/internal/repository"
	"github.com/mkhalil/studenthub/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	DataDir string `help:"Data directory." default:"~/.config/studenthub" name:"data-dir"`
	Sqlite  bool   `help:"Store snapshots in sqlite instead of per-user JSON files."`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init      cli.InitCmd      `cmd:"" help:"Initialize the studenthub data directory."`
	Login     cli.LoginCmd     `cmd:"" help:"Sign in as a user."`
	Logout    cli.LogoutCmd    `cmd:"" help:"Sign out."`
	Whoami    cli.WhoamiCmd    `cmd:"" help:"Show the signed-in user."`
	Dashboard cli.DashboardCmd `cmd:"" help:"Show the interactive dashboard." default:"1"`
	Goal      cli.GoalCmd      `cmd:"" help:"Manage goals."`
	Task      cli.TaskCmd      `cmd:"" help:"Manage tasks."`
	Study     cli.StudyCmd     `cmd:"" help:"Track study sessions."`
	Workout   cli.WorkoutCmd   `cmd:"" help:"Track workouts."`
	Journal   cli.JournalCmd   `cmd:"" help:"Keep a journal."`
	Habit     cli.HabitCmd     `cmd:"" help:"Manage habits and habit tracking."`
	Review    cli.ReviewCmd    `cmd:"" help:"Write daily/weekly/monthly reviews."`
	Quote     cli.QuoteCmd     `cmd:"" help:"Show the quote of the day."`
}

// expandHome resolves a leading ~ to the user's home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}
	return path
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal productivity tracker: goals, tasks, study, workouts, habits and reviews"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	dataDir := expandHome(CLI.DataDir)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: dataDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	var adapter storage.Adapter
	if CLI.Sqlite {
		store, err := storage.NewSQLiteStore(filepath.Join(dataDir, constants.SQLiteFileName))
		if err != nil {
			errors.Fatal(err)
		}
		adapter = store
	} else {
		store := storage.NewFileStore(dataDir)
		if err := store.Init(); err != nil {
			errors.Fatal(err)
		}
		adapter = store
	}
	defer adapter.Close()

	repo := repository.New(adapter)
	session := auth.NewSession(dataDir)

	h := hub.New(repo, session)
	defer h.Close()

	appCtx := &cli.Context{
		Hub:       h,
		Session:   session,
		Analytics: analytics.New(repo),
		DataDir:   dataDir,
	}

	if err := ctx.Run(appCtx); err != nil {
		if errors.Is(err, errors.ErrNotAuthenticated) {
			errors.Fatalf("not signed in, run '%s login <user>' first", constants.AppName)
		}
		errors.Fatal(err)
	}
}
