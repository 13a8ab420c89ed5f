package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newShellCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive capture loop with live parse preview",
		Long: `Start an interactive capture session. Type a task line to see the
parsed priority, category, due date, and estimate update live; press
Enter to save it. Prefix a line with / for quick commands
(/done <id>, /list, /quit).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return fmt.Errorf("shell requires an interactive terminal")
			}
			p := tea.NewProgram(newShellModel(app))
			_, err := p.Run()
			return err
		},
	}
}
