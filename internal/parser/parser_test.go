package parser

import (
	"testing"
	"time"

	"github.com/morgansel/taskpilot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

func TestParse_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		_, err := Parse(input, testNow)
		assert.ErrorIs(t, err, ErrEmptyInput, "input=%q", input)
	}
}

func TestParse_FullCaptureLine(t *testing.T) {
	draft, err := Parse("Tomorrow by 3pm finalize presentation deck urgent high priority", testNow)
	require.NoError(t, err)

	assert.Equal(t, domain.PriorityCritical, draft.Priority, "urgent wins over high priority")
	assert.Equal(t, domain.CategoryGeneral, draft.Category)
	require.NotNil(t, draft.DueDate)
	assert.Equal(t, time.Date(2024, 1, 2, 15, 0, 0, 0, time.UTC), *draft.DueDate)
	assert.Contains(t, draft.Name, "finalize presentation deck")
	assert.NotContains(t, draft.Name, "urgent")
	assert.NotContains(t, draft.Name, "3pm")
}

func TestParse_PriorityKeywords(t *testing.T) {
	cases := []struct {
		input    string
		priority domain.Priority
	}{
		{"urgent fix the build", domain.PriorityCritical},
		{"critical call the bank", domain.PriorityCritical},
		{"important review budget", domain.PriorityHigh},
		{"high priority review budget", domain.PriorityHigh},
		{"high-priority review budget", domain.PriorityHigh},
		{"low priority tidy desk", domain.PriorityLow},
		{"water the plants", domain.PriorityMedium},
	}
	for _, tc := range cases {
		draft, err := Parse(tc.input, testNow)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.priority, draft.Priority, "input=%q", tc.input)
	}
}

func TestParse_PriorityKeywordsConsumed(t *testing.T) {
	draft, err := Parse("urgent critical important low priority ship release", testNow)
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityCritical, draft.Priority)
	assert.Equal(t, "ship release", draft.Name)
}

func TestParse_Category(t *testing.T) {
	cases := []struct {
		input    string
		category domain.Category
		name     string
	}{
		{"review work budget", domain.CategoryWork, "review budget"},
		{"health checkup", domain.CategoryHealth, "checkup"},
		{"finance review", domain.CategoryFinance, "review"},
		{"grocery errand", domain.CategoryErrands, "grocery"},
		{"walk the dog", domain.CategoryGeneral, "walk the dog"},
	}
	for _, tc := range cases {
		draft, err := Parse(tc.input, testNow)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.category, draft.Category, "input=%q", tc.input)
		assert.Equal(t, tc.name, draft.Name, "input=%q", tc.input)
	}
}

func TestParse_CategoryWordBoundary(t *testing.T) {
	// "homework" must not match "work".
	draft, err := Parse("finish homework", testNow)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryGeneral, draft.Category)
	assert.Equal(t, "finish homework", draft.Name)
}

func TestParse_Duration(t *testing.T) {
	cases := []struct {
		input   string
		minutes int
	}{
		{"write report 90 min", 90},
		{"write report 45 minutes", 45},
		{"write report 2 hours", 120},
		{"write report 1 hr", 60},
		{"write report 1 hour 30 minutes", 90},
	}
	for _, tc := range cases {
		draft, err := Parse(tc.input, testNow)
		require.NoError(t, err, tc.input)
		require.NotNil(t, draft.EstimatedMinutes, "input=%q", tc.input)
		assert.Equal(t, tc.minutes, *draft.EstimatedMinutes, "input=%q", tc.input)
		assert.Equal(t, "write report", draft.Name, "input=%q", tc.input)
	}
}

func TestParse_NoDuration(t *testing.T) {
	draft, err := Parse("write report", testNow)
	require.NoError(t, err)
	assert.Nil(t, draft.EstimatedMinutes)
}

func TestParse_DurationNumberNotMisreadAsDate(t *testing.T) {
	// "30 minutes" is consumed before date parsing runs.
	draft, err := Parse("meditate 30 minutes today", testNow)
	require.NoError(t, err)
	require.NotNil(t, draft.EstimatedMinutes)
	assert.Equal(t, 30, *draft.EstimatedMinutes)
	require.NotNil(t, draft.DueDate)
	assert.Equal(t, testNow.Day(), draft.DueDate.Day())
}

func TestParse_SubtasksPipe(t *testing.T) {
	draft, err := Parse("ship feature | write tests | update docs | announce", testNow)
	require.NoError(t, err)
	assert.Equal(t, "ship feature", draft.Name)
	assert.Equal(t, []string{"write tests", "update docs", "announce"}, draft.Subtasks)
}

func TestParse_SubtasksThen(t *testing.T) {
	draft, err := Parse("draft outline then write intro then edit", testNow)
	require.NoError(t, err)
	assert.Equal(t, "draft outline", draft.Name)
	assert.Equal(t, []string{"write intro", "edit"}, draft.Subtasks)
}

func TestParse_NoSubtasks(t *testing.T) {
	draft, err := Parse("authenticate users", testNow)
	require.NoError(t, err)
	assert.Empty(t, draft.Subtasks)
}

func TestParse_NameFallsBackToOriginal(t *testing.T) {
	// Input made entirely of recognized tokens leaves an empty residual;
	// the original line becomes the name so no task is ever unnamed.
	draft, err := Parse("urgent work tomorrow", testNow)
	require.NoError(t, err)
	assert.Equal(t, "urgent work tomorrow", draft.Name)
	assert.Equal(t, domain.PriorityCritical, draft.Priority)
	assert.Equal(t, domain.CategoryWork, draft.Category)
	require.NotNil(t, draft.DueDate)
}

func TestParse_Deterministic(t *testing.T) {
	a, err := Parse("tomorrow at 10:00 work review pull requests 30 min", testNow)
	require.NoError(t, err)
	b, err := Parse("tomorrow at 10:00 work review pull requests 30 min", testNow)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
