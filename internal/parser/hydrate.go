package parser

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/morgansel/taskpilot/internal/domain"
	"github.com/morgansel/taskpilot/internal/matrix"
)

// Overrides carries caller-chosen values that take precedence over parsed
// ones during hydration. Zero values mean "no override".
type Overrides struct {
	Priority         string
	Category         string
	DueDate          *time.Time
	EstimatedMinutes *int
	Subtasks         []string
	Notes            string
}

// Hydrate builds a persistable Task from a parsed draft. Each field
// resolves override -> parsed -> default; override values outside their
// domain are ignored and reported as warnings, never aborting capture.
// The task gets a fresh id, CreatedAt = now, status Pending, and a
// freshly classified matrix quadrant. The draft is not mutated.
func Hydrate(draft *domain.DraftTask, ov Overrides, now time.Time) (*domain.Task, []error) {
	var warnings []error

	priority := draft.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if ov.Priority != "" {
		if domain.ValidPriorities[ov.Priority] {
			priority = domain.Priority(ov.Priority)
		} else {
			warnings = append(warnings, &InvalidOverrideError{Field: "priority", Value: ov.Priority})
		}
	}

	category := draft.Category
	if category == "" {
		category = domain.CategoryGeneral
	}
	if ov.Category != "" {
		if domain.ValidCategories[ov.Category] {
			category = domain.Category(ov.Category)
		} else {
			warnings = append(warnings, &InvalidOverrideError{Field: "category", Value: ov.Category})
		}
	}

	estimate := draft.EstimatedMinutes
	if ov.EstimatedMinutes != nil {
		if *ov.EstimatedMinutes > 0 {
			estimate = ov.EstimatedMinutes
		} else {
			warnings = append(warnings, &MalformedDurationError{Minutes: *ov.EstimatedMinutes})
		}
	}

	dueDate := domain.CoalesceTime(ov.DueDate, draft.DueDate)

	titles := draft.Subtasks
	if cleaned := cleanSubtaskTitles(ov.Subtasks); len(cleaned) > 0 {
		titles = cleaned
	}
	subtasks := make([]domain.Subtask, 0, len(titles))
	for _, title := range titles {
		subtasks = append(subtasks, domain.Subtask{
			ID:    uuid.New().String(),
			Title: title,
		})
	}

	task := &domain.Task{
		ID:               uuid.New().String(),
		Name:             draft.Name,
		Priority:         priority,
		Category:         category,
		Status:           domain.StatusPending,
		DueDate:          copyTime(dueDate),
		EstimatedMinutes: copyInt(estimate),
		Subtasks:         subtasks,
		Notes:            domain.CoalesceStr(ov.Notes, draft.Notes),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	task.MatrixQuadrant = matrix.Classify(task.Priority, task.DueDate, now)
	return task, warnings
}

func cleanSubtaskTitles(titles []string) []string {
	var out []string
	for _, t := range titles {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func copyInt(n *int) *int {
	if n == nil {
		return nil
	}
	v := *n
	return &v
}
