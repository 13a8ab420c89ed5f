package service

import (
	"context"
	"time"

	"github.com/morgansel/taskpilot/internal/domain"
	"github.com/morgansel/taskpilot/internal/planner"
	"github.com/morgansel/taskpilot/internal/repository"
)

type planService struct {
	tasks repository.TaskRepo
	now   func() time.Time
}

// NewPlanService creates a PlanService over the given repository.
func NewPlanService(tasks repository.TaskRepo) PlanService {
	return &planService{tasks: tasks, now: time.Now}
}

// NewPlanServiceWithClock creates a PlanService with an injected clock.
func NewPlanServiceWithClock(tasks repository.TaskRepo, now func() time.Time) PlanService {
	return &planService{tasks: tasks, now: now}
}

// Build loads the collection and runs the planner. An energy string
// outside the enumerated domain degrades to Medium, matching the
// recoverable-by-default error policy of capture.
func (s *planService) Build(ctx context.Context, availableMinutes int, energy string) (planner.Plan, error) {
	all, err := s.tasks.List(ctx)
	if err != nil {
		return planner.Plan{}, err
	}

	level := domain.EnergyMedium
	if domain.ValidEnergyLevels[energy] {
		level = domain.EnergyLevel(energy)
	}

	budget := planner.Budget{AvailableMinutes: availableMinutes, Energy: level}
	return planner.BuildPlan(all, budget, s.now()), nil
}
