package cli

import (
	"context"
	"fmt"

	"github.com/morgansel/taskpilot/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newInsightsCmd(app *App) *cobra.Command {
	var noCoaching bool

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Weekly summary, bottlenecks, and reminders",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			summary, err := app.Insights.Weekly(ctx)
			if err != nil {
				return err
			}
			reminders, err := app.Insights.Reminders(ctx)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatSummary(summary))
			fmt.Println()
			fmt.Print(formatter.FormatReminders(reminders))
			if !noCoaching {
				fmt.Print(formatter.FormatCoaching(randomCoachingPrompt(), randomProductivityTip()))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCoaching, "no-coaching", false, "Skip the coaching question and tip")
	return cmd
}
