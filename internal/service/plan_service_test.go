package service

import (
	"context"
	"testing"

	"github.com/morgansel/taskpilot/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServices(t *testing.T) (TaskService, PlanService, InsightsService) {
	t.Helper()
	repo := newTestRepo(t)
	return NewTaskServiceWithClock(repo, fixedClock),
		NewPlanServiceWithClock(repo, fixedClock),
		NewInsightsServiceWithClock(repo, fixedClock)
}

func TestPlanBuild_FitsBudget(t *testing.T) {
	tasks, plans, _ := newTestServices(t)
	ctx := context.Background()

	_, _, err := tasks.Capture(ctx, "high priority write report 60 minutes", parser.Overrides{})
	require.NoError(t, err)
	_, _, err = tasks.Capture(ctx, "low priority refactor backlog 200 minutes", parser.Overrides{})
	require.NoError(t, err)

	plan, err := plans.Build(ctx, 120, "Medium")
	require.NoError(t, err)
	require.Len(t, plan.Entries, 1)
	assert.Equal(t, "write report", plan.Entries[0].Task.Name)
	assert.Equal(t, 60, plan.AllocatedMinutes)
}

func TestPlanBuild_ExcludesCompleted(t *testing.T) {
	tasks, plans, _ := newTestServices(t)
	ctx := context.Background()

	task, _, err := tasks.Capture(ctx, "water the plants 10 minutes", parser.Overrides{})
	require.NoError(t, err)
	_, err = tasks.MarkDone(ctx, task.ID)
	require.NoError(t, err)

	plan, err := plans.Build(ctx, 240, "Medium")
	require.NoError(t, err)
	assert.Empty(t, plan.Entries)
}

func TestPlanBuild_UnknownEnergyDegradesToMedium(t *testing.T) {
	tasks, plans, _ := newTestServices(t)
	ctx := context.Background()

	_, _, err := tasks.Capture(ctx, "write report 60 minutes", parser.Overrides{})
	require.NoError(t, err)

	plan, err := plans.Build(ctx, 240, "Turbo")
	require.NoError(t, err)
	require.Len(t, plan.Entries, 1, "bad energy input still yields a plan")
}

func TestPlanBuild_EmptyCollection(t *testing.T) {
	_, plans, _ := newTestServices(t)

	plan, err := plans.Build(context.Background(), 240, "High")
	require.NoError(t, err)
	assert.Empty(t, plan.Entries)
	assert.Equal(t, 240, plan.AvailableMinutes)
}
