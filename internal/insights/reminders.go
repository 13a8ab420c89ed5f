package insights

import (
	"fmt"
	"sort"
	"time"

	"github.com/morgansel/taskpilot/internal/domain"
	"github.com/morgansel/taskpilot/internal/matrix"
)

// Reminders returns one line per open task that is overdue or due within
// the urgency horizon, most urgent first (due date ascending).
func Reminders(tasks []*domain.Task, now time.Time) []string {
	type due struct {
		task *domain.Task
		at   time.Time
	}
	var pending []due
	for _, t := range tasks {
		if t.Status == domain.StatusCompleted || t.DueDate == nil {
			continue
		}
		if t.DueDate.Sub(now) <= matrix.UrgencyHorizon {
			pending = append(pending, due{task: t, at: *t.DueDate})
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].at.Before(pending[j].at)
	})

	out := make([]string, 0, len(pending))
	for _, d := range pending {
		out = append(out, reminderLine(d.task, d.at, now))
	}
	return out
}

func reminderLine(t *domain.Task, at, now time.Time) string {
	if at.Before(now) {
		return fmt.Sprintf("%q was due %s ago", t.Name, humanDelta(now.Sub(at)))
	}
	return fmt.Sprintf("%q is due in %s", t.Name, humanDelta(at.Sub(now)))
}

// humanDelta renders a duration at the coarsest useful unit.
func humanDelta(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "moments"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		days := int(d.Hours() / 24)
		if days == 1 {
			return "1 day"
		}
		return fmt.Sprintf("%d days", days)
	}
}
