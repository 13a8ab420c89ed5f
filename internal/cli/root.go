package cli

import (
	"github.com/morgansel/taskpilot/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Tasks    service.TaskService
	Plans    service.PlanService
	Insights service.InsightsService

	// IsInteractive reports whether stdin is an interactive terminal;
	// interactive capture forms and the shell require it.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "taskpilot" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "taskpilot",
		Short: "Free-text task capture, Eisenhower classification, and daily planning",
	}

	root.AddCommand(
		newAddCmd(app),
		newListCmd(app),
		newMatrixCmd(app),
		newPlanCmd(app),
		newInsightsCmd(app),
		newDoneCmd(app),
		newStartCmd(app),
		newReopenCmd(app),
		newPrioritizeCmd(app),
		newDueCmd(app),
		newEstimateCmd(app),
		newDeleteCmd(app),
		newShellCmd(app),
	)

	return root
}
