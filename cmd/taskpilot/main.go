package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/morgansel/taskpilot/internal/cli"
	"github.com/morgansel/taskpilot/internal/db"
	"github.com/morgansel/taskpilot/internal/repository"
	"github.com/morgansel/taskpilot/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.taskpilot/taskpilot.db
	dbPath := os.Getenv("TASKPILOT_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".taskpilot", "taskpilot.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	taskRepo := repository.NewSQLiteTaskRepo(database)

	app := &cli.App{
		Tasks:    service.NewTaskService(taskRepo),
		Plans:    service.NewPlanService(taskRepo),
		Insights: service.NewInsightsService(taskRepo),
	}

	// Detect interactive terminal for the shell and capture forms.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
