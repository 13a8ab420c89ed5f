// Package insights derives weekly statistics, bottleneck observations,
// and reminder strings from a task collection snapshot. Everything here
// is a pure function of (tasks, now); the heuristics read only counts.
package insights

import (
	"fmt"
	"time"

	"github.com/morgansel/taskpilot/internal/domain"
)

// WeeklySummary covers the rolling 7-day window ending at now.
type WeeklySummary struct {
	WeekStart       time.Time
	TasksCreated    int
	TasksCompleted  int
	CompletionRate  int // integer percent, 0 when nothing was created
	Bottlenecks     []string
	Recommendations []string
}

// pileupThreshold is the open-task count at which a single category is
// called out as a bottleneck.
const pileupThreshold = 4

// Summarize computes the weekly snapshot. The window starts at local
// midnight six days before now, so it always spans seven calendar days.
// Completion membership uses CompletedAt; a completed task without a
// completion timestamp falls back to its creation week.
func Summarize(tasks []*domain.Task, now time.Time) WeeklySummary {
	weekStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -6)
	s := WeeklySummary{WeekStart: weekStart}

	overdue := 0
	unscheduled := 0
	firefighting := 0
	openByCategory := make(map[domain.Category]int)

	for _, t := range tasks {
		if inWindow(t.CreatedAt, weekStart, now) {
			s.TasksCreated++
		}
		if t.Status == domain.StatusCompleted {
			completedAt := t.CreatedAt
			if t.CompletedAt != nil {
				completedAt = *t.CompletedAt
			}
			if inWindow(completedAt, weekStart, now) {
				s.TasksCompleted++
			}
			continue
		}

		openByCategory[t.Category]++
		if t.DueDate == nil {
			unscheduled++
		} else if t.DueDate.Before(now) {
			overdue++
		}
		if t.MatrixQuadrant == domain.QuadrantUrgentImportant {
			firefighting++
		}
	}

	if s.TasksCreated > 0 {
		s.CompletionRate = s.TasksCompleted * 100 / s.TasksCreated
		if s.CompletionRate > 100 {
			s.CompletionRate = 100
		}
	}

	s.Bottlenecks = buildBottlenecks(overdue, firefighting, openByCategory)
	s.Recommendations = buildRecommendations(s, overdue, unscheduled, openByCategory)
	return s
}

func buildBottlenecks(overdue, firefighting int, openByCategory map[domain.Category]int) []string {
	var out []string
	if overdue > 0 {
		out = append(out, fmt.Sprintf("%d %s overdue", overdue, pluralTasks(overdue)))
	}
	for _, cat := range domain.Categories {
		if n := openByCategory[cat]; n >= pileupThreshold {
			out = append(out, fmt.Sprintf("%s has %d open tasks piling up", cat, n))
		}
	}
	if firefighting >= 3 {
		out = append(out, fmt.Sprintf("%d tasks are urgent and important, which means firefighting", firefighting))
	}
	return out
}

func buildRecommendations(s WeeklySummary, overdue, unscheduled int, openByCategory map[domain.Category]int) []string {
	var out []string
	if overdue >= 3 {
		out = append(out, "Reschedule or drop overdue tasks to clear the backlog")
	}
	if s.TasksCreated > 0 && s.CompletionRate < 40 {
		out = append(out, "Completion rate is low this week, try fewer, smaller tasks")
	}
	if unscheduled >= 5 {
		out = append(out, fmt.Sprintf("%d tasks have no due date, schedule them so they stop drifting", unscheduled))
	}
	for _, cat := range domain.Categories {
		if openByCategory[cat] >= pileupThreshold {
			out = append(out, fmt.Sprintf("Block a focused session to work down the %s backlog", cat))
			break
		}
	}
	return out
}

func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

func pluralTasks(n int) string {
	if n == 1 {
		return "task"
	}
	return "tasks"
}
