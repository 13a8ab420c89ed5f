package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/morgansel/taskpilot/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tasks grouped by due-date bucket",
		RunE: func(cmd *cobra.Command, args []string) error {
			grouped, err := app.Tasks.Grouped(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatGrouped(grouped, time.Now()))
			return nil
		},
	}
}

func newMatrixCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "matrix",
		Short: "Show tasks on the Eisenhower matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			byQuadrant, err := app.Tasks.ByQuadrant(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatMatrix(byQuadrant, time.Now()))
			return nil
		},
	}
}
