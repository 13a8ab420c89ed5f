package planner

import (
	"testing"
	"time"

	"github.com/morgansel/taskpilot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPlan_OversizedTaskSkipped(t *testing.T) {
	taskA := openTask("write report", domain.PriorityHigh, nil, mins(60))
	taskB := openTask("refactor backlog", domain.PriorityLow, nil, mins(200))
	budget := Budget{AvailableMinutes: 120, Energy: domain.EnergyMedium}

	plan := BuildPlan([]*domain.Task{taskA, taskB}, budget, testNow)

	require.Len(t, plan.Entries, 1)
	assert.Equal(t, "write report", plan.Entries[0].Task.Name)
	assert.Equal(t, 60, plan.AllocatedMinutes)
	assert.Equal(t, 120, plan.AvailableMinutes)
}

func TestBuildPlan_NeverExceedsBudget(t *testing.T) {
	tasks := []*domain.Task{
		openTask("a", domain.PriorityCritical, nil, mins(50)),
		openTask("b", domain.PriorityHigh, nil, mins(50)),
		openTask("c", domain.PriorityMedium, nil, mins(50)),
		openTask("d", domain.PriorityLow, nil, mins(50)),
	}
	budget := Budget{AvailableMinutes: 120, Energy: domain.EnergyMedium}

	plan := BuildPlan(tasks, budget, testNow)

	total := 0
	for _, e := range plan.Entries {
		total += e.AllocatedMin
	}
	assert.LessOrEqual(t, total, budget.AvailableMinutes)
	assert.Equal(t, total, plan.AllocatedMinutes)
	assert.Len(t, plan.Entries, 2)
}

func TestBuildPlan_SkipsOverflowButKeepsFilling(t *testing.T) {
	tasks := []*domain.Task{
		openTask("big", domain.PriorityCritical, nil, mins(100)),
		openTask("huge", domain.PriorityHigh, nil, mins(90)),
		openTask("small", domain.PriorityLow, nil, mins(20)),
	}
	budget := Budget{AvailableMinutes: 120, Energy: domain.EnergyMedium}

	plan := BuildPlan(tasks, budget, testNow)

	names := make([]string, len(plan.Entries))
	for i, e := range plan.Entries {
		names[i] = e.Task.Name
	}
	assert.Equal(t, []string{"big", "small"}, names,
		"a task too large for the remainder is skipped, later smaller ones still fit")
	assert.Equal(t, 120, plan.AllocatedMinutes)
}

func TestBuildPlan_ZeroOrNegativeBudget(t *testing.T) {
	tasks := []*domain.Task{openTask("a", domain.PriorityHigh, nil, mins(10))}

	for _, minutes := range []int{0, -30} {
		plan := BuildPlan(tasks, Budget{AvailableMinutes: minutes, Energy: domain.EnergyMedium}, testNow)
		assert.Empty(t, plan.Entries)
		assert.Equal(t, 0, plan.AllocatedMinutes)
	}
}

func TestBuildPlan_EmptyInput(t *testing.T) {
	plan := BuildPlan(nil, Budget{AvailableMinutes: 240, Energy: domain.EnergyMedium}, testNow)
	assert.Empty(t, plan.Entries)
	assert.Equal(t, 240, plan.AvailableMinutes)
}

func TestBuildPlan_ExcludesCompletedTasks(t *testing.T) {
	done := openTask("done", domain.PriorityCritical, nil, mins(10))
	done.Status = domain.StatusCompleted
	open := openTask("open", domain.PriorityLow, nil, mins(10))

	plan := BuildPlan([]*domain.Task{done, open}, Budget{AvailableMinutes: 240, Energy: domain.EnergyMedium}, testNow)

	require.Len(t, plan.Entries, 1)
	assert.Equal(t, "open", plan.Entries[0].Task.Name)
}

func TestBuildPlan_DefaultEstimateInAccounting(t *testing.T) {
	tasks := []*domain.Task{openTask("unsized", domain.PriorityMedium, nil, nil)}

	plan := BuildPlan(tasks, Budget{AvailableMinutes: 240, Energy: domain.EnergyMedium}, testNow)

	require.Len(t, plan.Entries, 1)
	assert.Equal(t, DefaultEstimateMin, plan.Entries[0].AllocatedMin)
	assert.Equal(t, DefaultEstimateMin, plan.AllocatedMinutes)
}

func TestBuildPlan_OrderFollowsScore(t *testing.T) {
	due := testNow.Add(3 * time.Hour)
	urgent := openTask("urgent", domain.PriorityMedium, &due, mins(30))
	someday := openTask("someday", domain.PriorityMedium, nil, mins(30))

	plan := BuildPlan([]*domain.Task{someday, urgent}, Budget{AvailableMinutes: 240, Energy: domain.EnergyMedium}, testNow)

	require.Len(t, plan.Entries, 2)
	assert.Equal(t, "urgent", plan.Entries[0].Task.Name)
	assert.Equal(t, "someday", plan.Entries[1].Task.Name)
}

func TestBuildPlan_Tasks(t *testing.T) {
	a := openTask("a", domain.PriorityHigh, nil, mins(10))
	plan := BuildPlan([]*domain.Task{a}, Budget{AvailableMinutes: 60, Energy: domain.EnergyMedium}, testNow)
	require.Len(t, plan.Tasks(), 1)
	assert.Same(t, a, plan.Tasks()[0])
}
