package formatter

import (
	"fmt"
	"strings"

	"github.com/morgansel/taskpilot/internal/insights"
)

// FormatSummary renders the weekly snapshot panel.
func FormatSummary(s insights.WeeklySummary) string {
	var b strings.Builder

	b.WriteString(Header("Weekly snapshot") + "\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Week of:"), s.WeekStart.Format("Mon Jan 2")))
	b.WriteString(fmt.Sprintf("  %s %d   %s %d   %s %d%%\n",
		Dim("Created:"), s.TasksCreated,
		Dim("Completed:"), s.TasksCompleted,
		Dim("Rate:"), s.CompletionRate,
	))

	b.WriteString("\n" + StyleHeader.Render("Bottlenecks") + "\n")
	if len(s.Bottlenecks) == 0 {
		b.WriteString(Dim("  System running smoothly.") + "\n")
	}
	for _, item := range s.Bottlenecks {
		b.WriteString(StyleYellow.Render("  • ") + StyleFg.Render(item) + "\n")
	}

	b.WriteString("\n" + StyleHeader.Render("Recommendations") + "\n")
	if len(s.Recommendations) == 0 {
		b.WriteString(Dim("  Keep doing what you're doing.") + "\n")
	}
	for _, item := range s.Recommendations {
		b.WriteString(StyleGreen.Render("  • ") + StyleFg.Render(item) + "\n")
	}
	return b.String()
}

// FormatReminders renders the active reminder list.
func FormatReminders(reminders []string) string {
	var b strings.Builder
	b.WriteString(Header("Active reminders") + "\n")
	if len(reminders) == 0 {
		b.WriteString(Dim("  All deadlines under control.") + "\n")
		return b.String()
	}
	for _, r := range reminders {
		b.WriteString(StyleRed.Render("  ! ") + StyleFg.Render(r) + "\n")
	}
	return b.String()
}

// FormatCoaching renders the focus question and productivity tip.
func FormatCoaching(question, tip string) string {
	var b strings.Builder
	b.WriteString("\n" + StyleHeader.Render("Focus question") + "\n")
	b.WriteString("  " + StyleFg.Render(question) + "\n")
	b.WriteString("\n" + StyleHeader.Render("Productivity cue") + "\n")
	b.WriteString("  " + StyleFg.Render(tip) + "\n")
	return b.String()
}
