package service

import (
	"context"
	"time"

	"github.com/morgansel/taskpilot/internal/domain"
	"github.com/morgansel/taskpilot/internal/grouping"
	"github.com/morgansel/taskpilot/internal/insights"
	"github.com/morgansel/taskpilot/internal/parser"
	"github.com/morgansel/taskpilot/internal/planner"
)

// TaskService owns the task lifecycle: capture from free text, reads, and
// whole-field mutations that re-run the matrix classifier.
type TaskService interface {
	// Capture parses text, applies overrides, persists the hydrated
	// task. The returned warnings describe overrides that were ignored.
	Capture(ctx context.Context, text string, ov parser.Overrides) (*domain.Task, []error, error)
	// Preview parses text without persisting anything.
	Preview(text string) (*domain.DraftTask, error)

	List(ctx context.Context) ([]*domain.Task, error)
	Get(ctx context.Context, ref string) (*domain.Task, error)
	Grouped(ctx context.Context) (grouping.Grouped, error)
	ByQuadrant(ctx context.Context) (map[domain.MatrixQuadrant][]*domain.Task, error)

	MarkDone(ctx context.Context, ref string) (*domain.Task, error)
	Start(ctx context.Context, ref string) (*domain.Task, error)
	Reopen(ctx context.Context, ref string) (*domain.Task, error)
	SetPriority(ctx context.Context, ref, priority string) (*domain.Task, error)
	SetDueDate(ctx context.Context, ref string, due *time.Time) (*domain.Task, error)
	SetEstimate(ctx context.Context, ref string, minutes int) (*domain.Task, error)
	Delete(ctx context.Context, ref string) error
}

// PlanService builds daily plans from the open task collection.
type PlanService interface {
	Build(ctx context.Context, availableMinutes int, energy string) (planner.Plan, error)
}

// InsightsService derives the weekly summary and reminder lines.
type InsightsService interface {
	Weekly(ctx context.Context) (insights.WeeklySummary, error)
	Reminders(ctx context.Context) ([]string, error)
}
