package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/morgansel/taskpilot/internal/cli/formatter"
	"github.com/morgansel/taskpilot/internal/domain"
	"github.com/morgansel/taskpilot/internal/parser"
)

func taskpilotHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// runCaptureForm collects the capture line plus per-field overrides. The
// select fields keep an "Auto" choice so the parsed value wins unless the
// user picks something explicitly.
func runCaptureForm(app *App, text string, ov parser.Overrides) (string, parser.Overrides, error) {
	var (
		due      string
		estimate string
		subtasks = strings.Join(ov.Subtasks, " | ")
		notes    = ov.Notes
	)
	if ov.DueDate != nil {
		due = ov.DueDate.Format("2006-01-02T15:04")
	}
	if ov.EstimatedMinutes != nil {
		estimate = strconv.Itoa(*ov.EstimatedMinutes)
	}

	priorityOptions := []huh.Option[string]{huh.NewOption("Auto (parsed)", "")}
	for _, p := range []domain.Priority{domain.PriorityCritical, domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow} {
		priorityOptions = append(priorityOptions, huh.NewOption(string(p), string(p)))
	}
	categoryOptions := []huh.Option[string]{huh.NewOption("Auto (parsed)", "")}
	for _, c := range domain.Categories {
		categoryOptions = append(categoryOptions, huh.NewOption(string(c), string(c)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Quick capture").
				Placeholder("Tomorrow by 3pm finalize presentation deck urgent high priority").
				Value(&text).
				Validate(validateNotBlank),
			huh.NewSelect[string]().
				Title("Priority").
				Options(priorityOptions...).
				Value(&ov.Priority),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions...).
				Value(&ov.Category),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Due (YYYY-MM-DDTHH:MM, blank for parsed)").
				Placeholder("2025-06-30T15:00").
				Value(&due).
				Validate(validateOptionalDue),
			huh.NewInput().
				Title("Estimated minutes (blank for parsed)").
				Placeholder("45").
				Value(&estimate).
				Validate(validateOptionalPositiveInt),
			huh.NewInput().
				Title("Subtasks (pipe separated)").
				Placeholder("Draft | Review | Submit").
				Value(&subtasks),
			huh.NewInput().
				Title("Notes").
				Value(&notes),
		),
	).WithTheme(taskpilotHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return "", parser.Overrides{}, err
	}

	if due != "" {
		parsed, err := parseDueFlag(due, time.Now())
		if err != nil {
			return "", parser.Overrides{}, err
		}
		ov.DueDate = parsed
	}
	if estimate != "" {
		if v, err := strconv.Atoi(estimate); err == nil {
			ov.EstimatedMinutes = &v
		}
	}
	if subtasks != "" {
		ov.Subtasks = strings.Split(subtasks, "|")
	}
	ov.Notes = notes

	return text, ov, nil
}

func validateNotBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("cannot be blank")
	}
	return nil
}

func validateOptionalDue(s string) error {
	if s == "" {
		return nil
	}
	if _, err := parseDueFlag(s, time.Now()); err != nil {
		return fmt.Errorf("want YYYY-MM-DD or YYYY-MM-DDTHH:MM")
	}
	return nil
}

func validateOptionalPositiveInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("want a positive number")
	}
	return nil
}
