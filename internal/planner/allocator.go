package planner

import (
	"time"

	"github.com/morgansel/taskpilot/internal/domain"
)

// Entry is one accepted plan block.
type Entry struct {
	Task         *domain.Task
	AllocatedMin int
	Score        float64
	Reasons      []Reason
}

// Plan is an ordered, budget-fitting selection of open tasks.
type Plan struct {
	Entries          []Entry
	AvailableMinutes int
	AllocatedMinutes int
}

// Tasks returns the planned tasks in selection order.
func (p Plan) Tasks() []*domain.Task {
	tasks := make([]*domain.Task, len(p.Entries))
	for i, e := range p.Entries {
		tasks[i] = e.Task
	}
	return tasks
}

// BuildPlan scores the open tasks, orders them canonically, and greedily
// accepts them while the running estimate total fits the budget. A task
// that would overflow the remaining budget is skipped, not revisited.
// Completed tasks are never planned, even if the caller passes them in.
func BuildPlan(tasks []*domain.Task, b Budget, now time.Time) Plan {
	plan := Plan{AvailableMinutes: b.AvailableMinutes}
	if b.AvailableMinutes <= 0 || len(tasks) == 0 {
		return plan
	}

	candidates := make([]Candidate, 0, len(tasks))
	for i, t := range tasks {
		if t.Status == domain.StatusCompleted {
			continue
		}
		candidates = append(candidates, ScoreTask(t, i, b, now))
	}
	CanonicalSort(candidates)

	remaining := b.AvailableMinutes
	for _, c := range candidates {
		if remaining <= 0 {
			break
		}
		if c.EstimateMin > remaining {
			continue
		}
		plan.Entries = append(plan.Entries, Entry{
			Task:         c.Task,
			AllocatedMin: c.EstimateMin,
			Score:        c.Score,
			Reasons:      c.Reasons,
		})
		remaining -= c.EstimateMin
	}
	plan.AllocatedMinutes = b.AvailableMinutes - remaining
	return plan
}
