// Package planner selects and orders a budget-fitting subset of open
// tasks for a focus session. Scoring is a weighted sum of independent
// factors, each of which records a human-readable reason; selection is a
// deliberate greedy fit rather than an optimal knapsack, trading a little
// packing efficiency for predictable, explainable plans.
package planner

import (
	"fmt"
	"time"

	"github.com/morgansel/taskpilot/internal/domain"
	"github.com/morgansel/taskpilot/internal/matrix"
)

// Budget is the caller-declared capacity for one planning session.
type Budget struct {
	AvailableMinutes int
	Energy           domain.EnergyLevel
}

const (
	// DefaultEstimateMin substitutes for tasks without a duration
	// estimate, both in scoring and in budget accounting.
	DefaultEstimateMin = 45

	// shortTaskMax is the largest estimate still considered a
	// low-effort task; deepWorkMin is the smallest estimate considered
	// deep work.
	shortTaskMax = 30
	deepWorkMin  = 90
)

type ReasonCode string

const (
	ReasonPriority       ReasonCode = "PRIORITY"
	ReasonOverdue        ReasonCode = "OVERDUE"
	ReasonDueSoon        ReasonCode = "DUE_SOON"
	ReasonDueLater       ReasonCode = "DUE_LATER"
	ReasonUnscheduled    ReasonCode = "UNSCHEDULED"
	ReasonEnergyFit      ReasonCode = "ENERGY_FIT"
	ReasonEnergyMismatch ReasonCode = "ENERGY_MISMATCH"
)

// Reason explains one scoring factor's contribution to a candidate.
type Reason struct {
	Code    ReasonCode
	Message string
	Delta   float64
}

// Candidate is a task under consideration for the plan, with its
// composite score and the factors that produced it.
type Candidate struct {
	Task        *domain.Task
	Index       int // position in the input collection, for stable ties
	EstimateMin int // estimate with default substitution
	Score       float64
	Reasons     []Reason
}

// ScoreTask computes the composite score for one task.
func ScoreTask(t *domain.Task, index int, b Budget, now time.Time) Candidate {
	c := Candidate{
		Task:        t,
		Index:       index,
		EstimateMin: estimateOrDefault(t),
	}

	factors := []func(*domain.Task, int, Budget, time.Time) (float64, *Reason){
		scorePriority,
		scoreDuePressure,
		scoreEnergyFit,
	}
	for _, f := range factors {
		delta, reason := f(t, c.EstimateMin, b, now)
		c.Score += delta
		if reason != nil {
			c.Reasons = append(c.Reasons, *reason)
		}
	}
	return c
}

func scorePriority(t *domain.Task, _ int, _ Budget, _ time.Time) (float64, *Reason) {
	delta := float64(t.Priority.Weight()) * 8
	return delta, &Reason{
		Code:    ReasonPriority,
		Message: fmt.Sprintf("%s priority", t.Priority),
		Delta:   delta,
	}
}

// scoreDuePressure rewards closeness of the due date to now. Overdue and
// due-within-horizon score highest; an unscheduled task gets a neutral
// baseline between near and distant deadlines.
func scoreDuePressure(t *domain.Task, _ int, _ Budget, now time.Time) (float64, *Reason) {
	if t.DueDate == nil {
		return 6, &Reason{Code: ReasonUnscheduled, Message: "No deadline", Delta: 6}
	}

	until := t.DueDate.Sub(now)
	switch {
	case until <= 0:
		return 30, &Reason{Code: ReasonOverdue, Message: "Past due", Delta: 30}
	case until <= matrix.UrgencyHorizon:
		return 24, &Reason{Code: ReasonDueSoon, Message: "Due very soon", Delta: 24}
	case until <= 7*24*time.Hour:
		return 14, &Reason{Code: ReasonDueSoon, Message: "Due this week", Delta: 14}
	default:
		return 4, &Reason{Code: ReasonDueLater, Message: "Deadline is distant", Delta: 4}
	}
}

// scoreEnergyFit rewards tasks whose effort suits the declared energy:
// high energy favors deep work, low energy favors short tasks, medium is
// neutral.
func scoreEnergyFit(_ *domain.Task, estimate int, b Budget, _ time.Time) (float64, *Reason) {
	switch b.Energy {
	case domain.EnergyHigh:
		if estimate >= deepWorkMin {
			return 10, &Reason{Code: ReasonEnergyFit, Message: "Deep work suits high energy", Delta: 10}
		}
		if estimate <= shortTaskMax {
			return -4, &Reason{Code: ReasonEnergyMismatch, Message: "Shallow task on a high-energy session", Delta: -4}
		}
	case domain.EnergyLow:
		if estimate <= shortTaskMax {
			return 10, &Reason{Code: ReasonEnergyFit, Message: "Quick win suits low energy", Delta: 10}
		}
		if estimate >= deepWorkMin {
			return -10, &Reason{Code: ReasonEnergyMismatch, Message: "Too heavy for low energy", Delta: -10}
		}
	}
	return 0, nil
}

func estimateOrDefault(t *domain.Task) int {
	if t.EstimatedMinutes != nil && *t.EstimatedMinutes > 0 {
		return *t.EstimatedMinutes
	}
	return DefaultEstimateMin
}
