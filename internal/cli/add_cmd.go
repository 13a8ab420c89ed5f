package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/morgansel/taskpilot/internal/cli/formatter"
	"github.com/morgansel/taskpilot/internal/parser"
	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	var (
		priority    string
		category    string
		due         string
		estimateMin int
		subtasks    []string
		notes       string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "add [text...]",
		Short: "Capture a task from free text",
		Long: `Capture a task from one free-text line. The parser extracts priority,
category, due date, duration estimate, and subtasks; flags override any
parsed value. Example:

  taskpilot add tomorrow by 3pm finalize presentation deck urgent work 90 min`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")

			ov := parser.Overrides{
				Priority: priority,
				Category: category,
				Notes:    notes,
				Subtasks: subtasks,
			}
			if cmd.Flags().Changed("estimate") {
				ov.EstimatedMinutes = &estimateMin
			}
			if due != "" {
				parsed, err := parseDueFlag(due, time.Now())
				if err != nil {
					return err
				}
				ov.DueDate = parsed
			}

			if interactive {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("interactive capture requires a terminal")
				}
				var err error
				text, ov, err = runCaptureForm(app, text, ov)
				if err != nil {
					return err
				}
			}
			if strings.TrimSpace(text) == "" {
				return parser.ErrEmptyInput
			}

			task, warnings, err := app.Tasks.Capture(context.Background(), text, ov)
			if err != nil {
				return err
			}
			for _, w := range warnings {
				fmt.Println(formatter.Dim("warning: " + w.Error()))
			}
			fmt.Printf("Added %s\n", formatter.TruncID(task.ID))
			fmt.Print(formatter.FormatTaskLine(task, time.Now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&priority, "priority", "", "Override priority (Critical|High|Medium|Low)")
	cmd.Flags().StringVar(&category, "category", "", "Override category (Work, Personal, ...)")
	cmd.Flags().StringVar(&due, "due", "", "Override due date (YYYY-MM-DD or YYYY-MM-DDTHH:MM)")
	cmd.Flags().IntVar(&estimateMin, "estimate", 0, "Override estimated minutes")
	cmd.Flags().StringSliceVar(&subtasks, "subtask", nil, "Subtask title (repeatable)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-text notes")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Review the parse in a form before saving")

	return cmd
}

// parseDueFlag accepts a date or date-time flag value. A bare date gets
// the parser's default due hour so it behaves like "next monday" input.
func parseDueFlag(value string, now time.Time) (*time.Time, error) {
	layouts := []string{"2006-01-02T15:04", "2006-01-02 15:04", "2006-01-02"}
	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, value, now.Location())
		if err != nil {
			continue
		}
		if layout == "2006-01-02" {
			t = t.Add(17 * time.Hour)
		}
		return &t, nil
	}
	return nil, fmt.Errorf("unrecognized due date %q (want YYYY-MM-DD or YYYY-MM-DDTHH:MM)", value)
}
