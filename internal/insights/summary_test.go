package insights

import (
	"fmt"
	"testing"
	"time"

	"github.com/morgansel/taskpilot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

func createdTask(name string, createdAt time.Time) *domain.Task {
	return &domain.Task{
		ID:        name,
		Name:      name,
		Priority:  domain.PriorityMedium,
		Category:  domain.CategoryWork,
		Status:    domain.StatusPending,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func completedTask(name string, createdAt, completedAt time.Time) *domain.Task {
	t := createdTask(name, createdAt)
	t.Status = domain.StatusCompleted
	t.CompletedAt = &completedAt
	return t
}

func TestSummarize_EmptyCollection(t *testing.T) {
	s := Summarize(nil, testNow)

	assert.Equal(t, 0, s.TasksCreated)
	assert.Equal(t, 0, s.TasksCompleted)
	assert.Equal(t, 0, s.CompletionRate)
	assert.Empty(t, s.Bottlenecks)
	assert.Empty(t, s.Recommendations)
}

func TestSummarize_WeekStart(t *testing.T) {
	s := Summarize(nil, testNow)
	assert.Equal(t, time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC), s.WeekStart,
		"window opens at local midnight six days back")
}

func TestSummarize_WindowMembership(t *testing.T) {
	inside := createdTask("inside", testNow.AddDate(0, 0, -3))
	boundary := createdTask("boundary", time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC))
	before := createdTask("before", testNow.AddDate(0, 0, -10))

	s := Summarize([]*domain.Task{inside, boundary, before}, testNow)
	assert.Equal(t, 2, s.TasksCreated, "window start is inclusive, older tasks excluded")
}

func TestSummarize_CompletionRate(t *testing.T) {
	created := testNow.AddDate(0, 0, -2)
	tasks := []*domain.Task{
		completedTask("a", created, testNow.AddDate(0, 0, -1)),
		createdTask("b", created),
		createdTask("c", created),
		createdTask("d", created),
	}

	s := Summarize(tasks, testNow)
	assert.Equal(t, 4, s.TasksCreated)
	assert.Equal(t, 1, s.TasksCompleted)
	assert.Equal(t, 25, s.CompletionRate)
}

func TestSummarize_RateClampedAtHundred(t *testing.T) {
	// Created before the window, completed inside it.
	old := completedTask("old", testNow.AddDate(0, 0, -20), testNow.AddDate(0, 0, -1))
	fresh := completedTask("fresh", testNow.AddDate(0, 0, -2), testNow.AddDate(0, 0, -1))

	s := Summarize([]*domain.Task{old, fresh}, testNow)
	assert.Equal(t, 1, s.TasksCreated)
	assert.Equal(t, 2, s.TasksCompleted)
	assert.Equal(t, 100, s.CompletionRate)
}

func TestSummarize_CompletedWithoutTimestampUsesCreation(t *testing.T) {
	done := createdTask("done", testNow.AddDate(0, 0, -2))
	done.Status = domain.StatusCompleted

	s := Summarize([]*domain.Task{done}, testNow)
	assert.Equal(t, 1, s.TasksCompleted)
}

func TestSummarize_OverdueBottleneck(t *testing.T) {
	past := testNow.Add(-3 * time.Hour)
	late := createdTask("late", testNow.AddDate(0, 0, -1))
	late.DueDate = &past

	s := Summarize([]*domain.Task{late}, testNow)
	require.NotEmpty(t, s.Bottlenecks)
	assert.Equal(t, "1 task overdue", s.Bottlenecks[0])
}

func TestSummarize_CategoryPileup(t *testing.T) {
	var tasks []*domain.Task
	for i := 0; i < 4; i++ {
		task := createdTask(fmt.Sprintf("chore-%d", i), testNow.AddDate(0, 0, -1))
		task.Category = domain.CategoryErrands
		tasks = append(tasks, task)
	}

	s := Summarize(tasks, testNow)
	assert.Contains(t, s.Bottlenecks, "Errands has 4 open tasks piling up")
	assert.Contains(t, s.Recommendations, "Block a focused session to work down the Errands backlog")
}

func TestSummarize_FirefightingBottleneck(t *testing.T) {
	soon := testNow.Add(6 * time.Hour)
	var tasks []*domain.Task
	for i := 0; i < 3; i++ {
		task := createdTask(fmt.Sprintf("fire-%d", i), testNow.AddDate(0, 0, -1))
		task.DueDate = &soon
		task.MatrixQuadrant = domain.QuadrantUrgentImportant
		tasks = append(tasks, task)
	}

	s := Summarize(tasks, testNow)
	assert.Contains(t, s.Bottlenecks, "3 tasks are urgent and important, which means firefighting")
}

func TestSummarize_OverdueRecommendationThreshold(t *testing.T) {
	past := testNow.Add(-time.Hour)
	var tasks []*domain.Task
	for i := 0; i < 3; i++ {
		task := createdTask(fmt.Sprintf("late-%d", i), testNow.AddDate(0, 0, -1))
		task.DueDate = &past
		tasks = append(tasks, task)
	}

	s := Summarize(tasks, testNow)
	assert.Contains(t, s.Recommendations, "Reschedule or drop overdue tasks to clear the backlog")
}

func TestSummarize_LowCompletionRecommendation(t *testing.T) {
	created := testNow.AddDate(0, 0, -2)
	tasks := []*domain.Task{
		completedTask("done", created, testNow.AddDate(0, 0, -1)),
		createdTask("a", created),
		createdTask("b", created),
	}

	s := Summarize(tasks, testNow)
	assert.Equal(t, 33, s.CompletionRate)
	assert.Contains(t, s.Recommendations, "Completion rate is low this week, try fewer, smaller tasks")
}

func TestSummarize_UnscheduledRecommendation(t *testing.T) {
	var tasks []*domain.Task
	for i := 0; i < 5; i++ {
		tasks = append(tasks, createdTask(fmt.Sprintf("drift-%d", i), testNow.AddDate(0, 0, -1)))
	}

	s := Summarize(tasks, testNow)
	assert.Contains(t, s.Recommendations, "5 tasks have no due date, schedule them so they stop drifting")
}
