package service

import (
	"context"
	"time"

	"github.com/morgansel/taskpilot/internal/insights"
	"github.com/morgansel/taskpilot/internal/repository"
)

type insightsService struct {
	tasks repository.TaskRepo
	now   func() time.Time
}

// NewInsightsService creates an InsightsService over the given repository.
func NewInsightsService(tasks repository.TaskRepo) InsightsService {
	return &insightsService{tasks: tasks, now: time.Now}
}

// NewInsightsServiceWithClock creates an InsightsService with an injected clock.
func NewInsightsServiceWithClock(tasks repository.TaskRepo, now func() time.Time) InsightsService {
	return &insightsService{tasks: tasks, now: now}
}

func (s *insightsService) Weekly(ctx context.Context) (insights.WeeklySummary, error) {
	all, err := s.tasks.List(ctx)
	if err != nil {
		return insights.WeeklySummary{}, err
	}
	return insights.Summarize(all, s.now()), nil
}

func (s *insightsService) Reminders(ctx context.Context) ([]string, error) {
	all, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	return insights.Reminders(all, s.now()), nil
}
