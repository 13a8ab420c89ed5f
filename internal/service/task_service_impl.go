package service

import (
	"context"
	"fmt"
	"time"

	"github.com/morgansel/taskpilot/internal/domain"
	"github.com/morgansel/taskpilot/internal/grouping"
	"github.com/morgansel/taskpilot/internal/matrix"
	"github.com/morgansel/taskpilot/internal/parser"
	"github.com/morgansel/taskpilot/internal/repository"
)

type taskService struct {
	tasks repository.TaskRepo
	now   func() time.Time
}

// NewTaskService creates a TaskService over the given repository.
func NewTaskService(tasks repository.TaskRepo) TaskService {
	return &taskService{tasks: tasks, now: time.Now}
}

// NewTaskServiceWithClock creates a TaskService with an injected clock,
// for tests that need a fixed now.
func NewTaskServiceWithClock(tasks repository.TaskRepo, now func() time.Time) TaskService {
	return &taskService{tasks: tasks, now: now}
}

func (s *taskService) Capture(ctx context.Context, text string, ov parser.Overrides) (*domain.Task, []error, error) {
	now := s.now()
	draft, err := parser.Parse(text, now)
	if err != nil {
		return nil, nil, err
	}
	task, warnings := parser.Hydrate(draft, ov, now)
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, warnings, err
	}
	return task, warnings, nil
}

func (s *taskService) Preview(text string) (*domain.DraftTask, error) {
	return parser.Parse(text, s.now())
}

func (s *taskService) List(ctx context.Context) ([]*domain.Task, error) {
	return s.tasks.List(ctx)
}

func (s *taskService) Get(ctx context.Context, ref string) (*domain.Task, error) {
	return s.tasks.GetByPrefix(ctx, ref)
}

func (s *taskService) Grouped(ctx context.Context) (grouping.Grouped, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return grouping.Grouped{}, err
	}
	return grouping.Group(tasks, s.now()), nil
}

func (s *taskService) ByQuadrant(ctx context.Context) (map[domain.MatrixQuadrant][]*domain.Task, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	return grouping.ByQuadrant(tasks), nil
}

func (s *taskService) MarkDone(ctx context.Context, ref string) (*domain.Task, error) {
	return s.mutate(ctx, ref, func(t *domain.Task, now time.Time) error {
		t.MarkDone(now)
		return nil
	})
}

func (s *taskService) Start(ctx context.Context, ref string) (*domain.Task, error) {
	return s.mutate(ctx, ref, func(t *domain.Task, now time.Time) error {
		return t.Start(now)
	})
}

func (s *taskService) Reopen(ctx context.Context, ref string) (*domain.Task, error) {
	return s.mutate(ctx, ref, func(t *domain.Task, now time.Time) error {
		t.Reopen(now)
		return nil
	})
}

func (s *taskService) SetPriority(ctx context.Context, ref, priority string) (*domain.Task, error) {
	if !domain.ValidPriorities[priority] {
		return nil, &parser.InvalidOverrideError{Field: "priority", Value: priority}
	}
	return s.mutate(ctx, ref, func(t *domain.Task, now time.Time) error {
		t.Priority = domain.Priority(priority)
		return nil
	})
}

func (s *taskService) SetDueDate(ctx context.Context, ref string, due *time.Time) (*domain.Task, error) {
	return s.mutate(ctx, ref, func(t *domain.Task, now time.Time) error {
		t.DueDate = due
		return nil
	})
}

func (s *taskService) SetEstimate(ctx context.Context, ref string, minutes int) (*domain.Task, error) {
	if minutes <= 0 {
		return nil, &parser.MalformedDurationError{Minutes: minutes}
	}
	return s.mutate(ctx, ref, func(t *domain.Task, now time.Time) error {
		t.EstimatedMinutes = &minutes
		return nil
	})
}

func (s *taskService) Delete(ctx context.Context, ref string) error {
	t, err := s.tasks.GetByPrefix(ctx, ref)
	if err != nil {
		return err
	}
	return s.tasks.Delete(ctx, t.ID)
}

// mutate loads, applies fn, reclassifies the quadrant, and writes back.
// Every field mutation funnels through here so a stored task can never
// carry a quadrant that is stale relative to priority or due date.
func (s *taskService) mutate(ctx context.Context, ref string, fn func(*domain.Task, time.Time) error) (*domain.Task, error) {
	t, err := s.tasks.GetByPrefix(ctx, ref)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if err := fn(t, now); err != nil {
		return nil, err
	}
	t.MatrixQuadrant = matrix.Classify(t.Priority, t.DueDate, now)
	t.UpdatedAt = now
	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("saving task: %w", err)
	}
	return t, nil
}
