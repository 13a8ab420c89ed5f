package grouping

import (
	"testing"
	"time"

	"github.com/morgansel/taskpilot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

func task(name string, due *time.Time, status domain.Status) *domain.Task {
	return &domain.Task{ID: name, Name: name, DueDate: due, Status: status}
}

func at(t time.Time) *time.Time { return &t }

func TestGroup_Partition(t *testing.T) {
	tasks := []*domain.Task{
		task("morning", at(testNow.Add(-3*time.Hour)), domain.StatusPending),           // today (same day, earlier)
		task("tonight", at(testNow.Add(8*time.Hour)), domain.StatusPending),            // today
		task("yesterday", at(testNow.AddDate(0, 0, -1)), domain.StatusPending),         // overdue
		task("next week", at(testNow.AddDate(0, 0, 7)), domain.StatusPending),          // upcoming
		task("someday", nil, domain.StatusPending),                                     // unscheduled
		task("done late", at(testNow.AddDate(0, 0, -2)), domain.StatusCompleted),       // past due but completed
	}

	g := Group(tasks, testNow)

	assert.Equal(t, []string{"morning", "tonight"}, names(g.Today))
	assert.Equal(t, []string{"yesterday"}, names(g.Overdue))
	assert.Equal(t, []string{"next week", "done late"}, names(g.Upcoming))
	assert.Equal(t, []string{"someday"}, names(g.Unscheduled))
}

func TestGroup_ExhaustiveAndExclusive(t *testing.T) {
	tasks := []*domain.Task{
		task("a", at(testNow.Add(time.Hour)), domain.StatusPending),
		task("b", at(testNow.AddDate(0, 0, -5)), domain.StatusInProgress),
		task("c", nil, domain.StatusCompleted),
		task("d", at(testNow.AddDate(0, 0, 3)), domain.StatusPending),
	}
	g := Group(tasks, testNow)

	total := len(g.Today) + len(g.Upcoming) + len(g.Overdue) + len(g.Unscheduled)
	assert.Equal(t, len(tasks), total, "every task lands in exactly one bucket")

	seen := map[string]int{}
	for _, bucket := range [][]*domain.Task{g.Today, g.Upcoming, g.Overdue, g.Unscheduled} {
		for _, task := range bucket {
			seen[task.ID]++
		}
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "task %s appears once", id)
	}
}

func TestGroup_CompletedOverdueNotActionable(t *testing.T) {
	done := task("done", at(testNow.AddDate(0, 0, -1)), domain.StatusCompleted)
	g := Group([]*domain.Task{done}, testNow)
	assert.Empty(t, g.Overdue)
	require.Len(t, g.Upcoming, 1)
}

func TestGroup_Pure(t *testing.T) {
	tasks := []*domain.Task{
		task("a", at(testNow.Add(time.Hour)), domain.StatusPending),
		task("b", nil, domain.StatusPending),
	}
	first := Group(tasks, testNow)
	second := Group(tasks, testNow)
	assert.Equal(t, first, second)
}

func TestByQuadrant_AllKeysPresent(t *testing.T) {
	m := ByQuadrant(nil)
	require.Len(t, m, 4)
	for _, q := range domain.Quadrants {
		bucket, ok := m[q]
		assert.True(t, ok, "quadrant %s present", q)
		assert.Empty(t, bucket)
	}
}

func TestByQuadrant_PreservesOrder(t *testing.T) {
	a := &domain.Task{ID: "a", Name: "a", MatrixQuadrant: domain.QuadrantNeither}
	b := &domain.Task{ID: "b", Name: "b", MatrixQuadrant: domain.QuadrantUrgentImportant}
	c := &domain.Task{ID: "c", Name: "c", MatrixQuadrant: domain.QuadrantNeither}

	m := ByQuadrant([]*domain.Task{a, b, c})
	assert.Equal(t, []string{"a", "c"}, names(m[domain.QuadrantNeither]))
	assert.Equal(t, []string{"b"}, names(m[domain.QuadrantUrgentImportant]))
}

func names(tasks []*domain.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Name
	}
	return out
}
