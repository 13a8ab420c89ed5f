package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/morgansel/taskpilot/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	var minutes int
	var energy string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a daily plan for a focus budget and energy level",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Plans.Build(context.Background(), minutes, energy)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatPlan(plan, time.Now()))
			return nil
		},
	}

	cmd.Flags().IntVar(&minutes, "minutes", 240, "Available focus minutes")
	cmd.Flags().StringVar(&energy, "energy", "Medium", "Energy level (Low|Medium|High)")

	return cmd
}
