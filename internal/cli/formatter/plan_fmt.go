package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/morgansel/taskpilot/internal/planner"
)

// FormatPlan renders a daily plan as numbered focus blocks with the
// scoring reasons beneath each block.
func FormatPlan(p planner.Plan, now time.Time) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Daily plan (%s available)", FormatMinutes(p.AvailableMinutes))))
	b.WriteString("\n\n")

	if len(p.Entries) == 0 {
		b.WriteString(Dim("All clear. No open tasks fit the focus budget.") + "\n")
		return b.String()
	}

	for i, e := range p.Entries {
		titleLine := fmt.Sprintf("%s %s  %s",
			Bold(fmt.Sprintf("%d.", i+1)),
			StyleFg.Render(e.Task.Name),
			StyleBlue.Render(fmt.Sprintf("(%s)", FormatMinutes(e.AllocatedMin))),
		)
		b.WriteString(titleLine + "\n")
		b.WriteString(fmt.Sprintf("   %s  %s\n", PriorityBadge(e.Task.Priority), CategoryBadge(e.Task.Category)))
		if e.Task.DueDate != nil {
			b.WriteString(fmt.Sprintf("   %s %s\n", Dim("Due:"), RelativeDateStyled(*e.Task.DueDate, now)))
		}
		for _, reason := range e.Reasons {
			b.WriteString(fmt.Sprintf("   %s %s\n", StyleYellow.Render("REASON:"), Dim(reason.Message)))
		}
		if i < len(p.Entries)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s  %s\n",
		StyleGreen.Render(fmt.Sprintf("Allocated: %s", FormatMinutes(p.AllocatedMinutes))),
		StyleDim.Render("|"),
		Dim(fmt.Sprintf("Free: %s", FormatMinutes(p.AvailableMinutes-p.AllocatedMinutes))),
	))
	return b.String()
}
