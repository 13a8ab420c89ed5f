// Package matrix derives the Eisenhower quadrant of a task from its
// priority and due date. Classification is the single source of truth for
// Task.MatrixQuadrant: every mutation of priority or due date runs back
// through Classify, so a stored quadrant is never stale.
package matrix

import (
	"time"

	"github.com/morgansel/taskpilot/internal/domain"
)

// UrgencyHorizon is the near-term window within which a due date counts
// as urgent. Overdue due dates are always urgent.
const UrgencyHorizon = 48 * time.Hour

// Urgent reports whether dueDate falls inside the urgency horizon from
// now. A missing due date is never urgent.
func Urgent(dueDate *time.Time, now time.Time) bool {
	if dueDate == nil {
		return false
	}
	return dueDate.Sub(now) <= UrgencyHorizon
}

// Classify maps (priority, dueDate) to a matrix quadrant relative to now.
func Classify(priority domain.Priority, dueDate *time.Time, now time.Time) domain.MatrixQuadrant {
	important := priority.Important()
	urgent := Urgent(dueDate, now)

	switch {
	case important && urgent:
		return domain.QuadrantUrgentImportant
	case important:
		return domain.QuadrantImportantNotUrgent
	case urgent:
		return domain.QuadrantUrgentNotImportant
	}
	return domain.QuadrantNeither
}
