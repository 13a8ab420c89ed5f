package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/morgansel/taskpilot/internal/domain"
	"github.com/morgansel/taskpilot/internal/grouping"
)

// FormatTaskLine renders a single task as one or two terminal lines.
func FormatTaskLine(t *domain.Task, now time.Time) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s  %s\n", TruncID(t.ID), StyleFg.Render(t.Name), StatusPill(t.Status)))

	details := []string{PriorityBadge(t.Priority), CategoryBadge(t.Category), QuadrantBadge(t.MatrixQuadrant)}
	if t.DueDate != nil {
		details = append(details, Dim("Due: ")+RelativeDateStyled(*t.DueDate, now))
	}
	if t.EstimatedMinutes != nil {
		details = append(details, Dim(fmt.Sprintf("~%s", FormatMinutes(*t.EstimatedMinutes))))
	}
	b.WriteString("          " + strings.Join(details, "  ") + "\n")

	for _, st := range t.Subtasks {
		check := "○"
		if st.Completed {
			check = "✔"
		}
		b.WriteString(Dim(fmt.Sprintf("            %s %s\n", check, st.Title)))
	}
	return b.String()
}

// FormatGrouped renders the due-date buckets with a dashboard footer.
func FormatGrouped(g grouping.Grouped, now time.Time) string {
	var b strings.Builder

	sections := []struct {
		title string
		tasks []*domain.Task
	}{
		{"Overdue", g.Overdue},
		{"Today", g.Today},
		{"Upcoming", g.Upcoming},
		{"Unscheduled", g.Unscheduled},
	}
	for _, sec := range sections {
		if len(sec.tasks) == 0 {
			continue
		}
		b.WriteString(Header(sec.title) + "\n")
		for _, t := range sec.tasks {
			b.WriteString(FormatTaskLine(t, now))
		}
		b.WriteString("\n")
	}

	total := len(g.Today) + len(g.Upcoming) + len(g.Overdue) + len(g.Unscheduled)
	if total == 0 {
		return Dim("No tasks yet. Capture one with: taskpilot add <text>") + "\n"
	}

	footer := fmt.Sprintf("Today: %d  |  Upcoming: %d  |  Overdue: %d  |  Unscheduled: %d",
		len(g.Today), len(g.Upcoming), len(g.Overdue), len(g.Unscheduled))
	b.WriteString(Dim(footer) + "\n")
	return b.String()
}

// FormatMatrix renders the four Eisenhower quadrants.
func FormatMatrix(byQuadrant map[domain.MatrixQuadrant][]*domain.Task, now time.Time) string {
	var b strings.Builder
	for _, q := range domain.Quadrants {
		b.WriteString(QuadrantBadge(q) + "\n")
		tasks := byQuadrant[q]
		if len(tasks) == 0 {
			b.WriteString(Dim("  (empty)") + "\n\n")
			continue
		}
		for _, t := range tasks {
			line := fmt.Sprintf("  %s  %s  %s", TruncID(t.ID), StyleFg.Render(t.Name), PriorityBadge(t.Priority))
			if t.DueDate != nil {
				line += "  " + RelativeDateStyled(*t.DueDate, now)
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatDraftPreview renders the smart-parse preview shown after capture.
func FormatDraftPreview(d *domain.DraftTask) string {
	var b strings.Builder
	b.WriteString(Dim("Parsed:") + "\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Name:"), StyleFg.Render(d.Name)))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Priority:"), string(d.Priority)))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Category:"), string(d.Category)))
	if d.DueDate != nil {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Due:"), d.DueDate.Format("Mon Jan 2 15:04")))
	} else {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Due:"), Dim("not detected")))
	}
	if d.EstimatedMinutes != nil {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Estimate:"), FormatMinutes(*d.EstimatedMinutes)))
	} else {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Estimate:"), Dim("not detected")))
	}
	if len(d.Subtasks) > 0 {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Subtasks:"), strings.Join(d.Subtasks, " | ")))
	}
	return b.String()
}
