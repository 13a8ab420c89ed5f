package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/morgansel/taskpilot/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <task-id>",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := app.Tasks.MarkDone(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Completed %s %s\n", formatter.TruncID(task.ID), task.Name)
			return nil
		},
	}
}

func newStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start <task-id>",
		Short: "Mark a task in progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := app.Tasks.Start(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Started %s %s\n", formatter.TruncID(task.ID), task.Name)
			return nil
		},
	}
}

func newReopenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reopen <task-id>",
		Short: "Return a completed task to pending",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := app.Tasks.Reopen(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Reopened %s %s\n", formatter.TruncID(task.ID), task.Name)
			return nil
		},
	}
}

func newPrioritizeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "prioritize <task-id> <priority>",
		Short: "Change a task's priority (reclassifies its quadrant)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := app.Tasks.SetPriority(context.Background(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Printf("%s is now %s  %s\n",
				task.Name,
				formatter.PriorityBadge(task.Priority),
				formatter.QuadrantBadge(task.MatrixQuadrant),
			)
			return nil
		},
	}
}

func newDueCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "due <task-id> <date|clear>",
		Short: "Set or clear a task's due date (reclassifies its quadrant)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var due *time.Time
			if args[1] != "clear" {
				parsed, err := parseDueFlag(args[1], time.Now())
				if err != nil {
					return err
				}
				due = parsed
			}
			task, err := app.Tasks.SetDueDate(context.Background(), args[0], due)
			if err != nil {
				return err
			}
			if task.DueDate == nil {
				fmt.Printf("%s is now unscheduled  %s\n", task.Name, formatter.QuadrantBadge(task.MatrixQuadrant))
			} else {
				fmt.Printf("%s due %s  %s\n",
					task.Name,
					formatter.RelativeDateStyled(*task.DueDate, time.Now()),
					formatter.QuadrantBadge(task.MatrixQuadrant),
				)
			}
			return nil
		},
	}
}

func newEstimateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "estimate <task-id> <minutes>",
		Short: "Set a task's estimated duration",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("minutes must be a number, got %q", args[1])
			}
			task, err := app.Tasks.SetEstimate(context.Background(), args[0], minutes)
			if err != nil {
				return err
			}
			fmt.Printf("%s estimated at %s\n", task.Name, formatter.FormatMinutes(minutes))
			return nil
		},
	}
}

func newDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}
}
