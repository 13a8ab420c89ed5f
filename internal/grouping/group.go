// Package grouping buckets a task collection by its due-date relationship
// to now, and by matrix quadrant. Both views are pure functions of the
// collection snapshot and preserve the input order within each bucket.
package grouping

import (
	"time"

	"github.com/morgansel/taskpilot/internal/domain"
)

// Grouped partitions tasks into mutually exclusive due-date buckets.
// Every task lands in exactly one bucket.
type Grouped struct {
	Today       []*domain.Task
	Upcoming    []*domain.Task
	Overdue     []*domain.Task
	Unscheduled []*domain.Task
}

// Group partitions tasks relative to now. A completed task with a past
// due date is not an actionable delinquency, so it files under Upcoming
// rather than Overdue.
func Group(tasks []*domain.Task, now time.Time) Grouped {
	var g Grouped
	for _, t := range tasks {
		switch {
		case t.DueDate == nil:
			g.Unscheduled = append(g.Unscheduled, t)
		case sameDay(*t.DueDate, now):
			g.Today = append(g.Today, t)
		case t.DueDate.Before(now) && t.Status != domain.StatusCompleted:
			g.Overdue = append(g.Overdue, t)
		default:
			g.Upcoming = append(g.Upcoming, t)
		}
	}
	return g
}

// ByQuadrant maps tasks to their matrix quadrant. All four quadrant keys
// are always present, possibly with empty slices.
func ByQuadrant(tasks []*domain.Task) map[domain.MatrixQuadrant][]*domain.Task {
	m := make(map[domain.MatrixQuadrant][]*domain.Task, len(domain.Quadrants))
	for _, q := range domain.Quadrants {
		m[q] = []*domain.Task{}
	}
	for _, t := range tasks {
		m[t.MatrixQuadrant] = append(m[t.MatrixQuadrant], t)
	}
	return m
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
