package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/morgansel/taskpilot/internal/cli/formatter"
	"github.com/morgansel/taskpilot/internal/domain"
	"github.com/morgansel/taskpilot/internal/parser"
)

// shellModel is the bubbletea Model for the interactive capture loop.
type shellModel struct {
	input textinput.Model
	app   *App

	preview  *domain.DraftTask
	feedback string
	recent   []*domain.Task

	quitting bool
}

func newShellModel(app *App) shellModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = "> "
	ti.Placeholder = "Tomorrow by 3pm finalize presentation deck urgent work"
	ti.CharLimit = 500

	return shellModel{input: ti, app: app}
}

func (m shellModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refreshPreview()
	return m, cmd
}

func (m *shellModel) refreshPreview() {
	text := strings.TrimSpace(m.input.Value())
	if text == "" || strings.HasPrefix(text, "/") {
		m.preview = nil
		return
	}
	draft, err := m.app.Tasks.Preview(text)
	if err != nil {
		m.preview = nil
		return
	}
	m.preview = draft
}

func (m shellModel) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}

	if strings.HasPrefix(text, "/") {
		return m.runCommand(text)
	}

	task, warnings, err := m.app.Tasks.Capture(context.Background(), text, parser.Overrides{})
	if err != nil {
		m.feedback = formatter.StyleRed.Render(err.Error())
		return m, nil
	}
	var notes []string
	for _, w := range warnings {
		notes = append(notes, w.Error())
	}
	m.feedback = formatter.StyleGreen.Render(fmt.Sprintf("Saved %s %q", task.DisplayID(), task.Name))
	if len(notes) > 0 {
		m.feedback += "  " + formatter.Dim(strings.Join(notes, "; "))
	}
	m.recent = append([]*domain.Task{task}, m.recent...)
	if len(m.recent) > 5 {
		m.recent = m.recent[:5]
	}
	m.input.SetValue("")
	m.preview = nil
	return m, nil
}

func (m shellModel) runCommand(text string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(strings.TrimPrefix(text, "/"))
	if len(fields) == 0 {
		return m, nil
	}

	switch fields[0] {
	case "quit", "q", "exit":
		m.quitting = true
		return m, tea.Quit
	case "list":
		grouped, err := m.app.Tasks.Grouped(context.Background())
		if err != nil {
			m.feedback = formatter.StyleRed.Render(err.Error())
			return m, nil
		}
		m.feedback = formatter.Dim(fmt.Sprintf("Today: %d  Upcoming: %d  Overdue: %d  Unscheduled: %d",
			len(grouped.Today), len(grouped.Upcoming), len(grouped.Overdue), len(grouped.Unscheduled)))
	case "done":
		if len(fields) < 2 {
			m.feedback = formatter.StyleRed.Render("usage: /done <task-id>")
			return m, nil
		}
		task, err := m.app.Tasks.MarkDone(context.Background(), fields[1])
		if err != nil {
			m.feedback = formatter.StyleRed.Render(err.Error())
			return m, nil
		}
		m.feedback = formatter.StyleGreen.Render(fmt.Sprintf("Completed %q", task.Name))
	default:
		m.feedback = formatter.StyleRed.Render("unknown command: /" + fields[0])
	}

	m.input.SetValue("")
	return m, nil
}

func (m shellModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.Header("Taskpilot capture") + "\n\n")
	b.WriteString(m.input.View() + "\n")

	if m.preview != nil {
		b.WriteString("\n" + formatter.FormatDraftPreview(m.preview))
	}
	if m.feedback != "" {
		b.WriteString("\n" + m.feedback + "\n")
	}

	if len(m.recent) > 0 {
		b.WriteString("\n" + formatter.Dim("Recent:") + "\n")
		now := time.Now()
		for _, t := range m.recent {
			line := fmt.Sprintf("  %s %s  %s", formatter.TruncID(t.ID), t.Name, formatter.QuadrantBadge(t.MatrixQuadrant))
			if t.DueDate != nil {
				line += "  " + formatter.RelativeDateStyled(*t.DueDate, now)
			}
			b.WriteString(line + "\n")
		}
	}

	b.WriteString("\n" + formatter.Dim("Enter saves · /done <id> · /list · Esc quits") + "\n")
	return b.String()
}
