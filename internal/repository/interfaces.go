package repository

import (
	"context"

	"github.com/morgansel/taskpilot/internal/domain"
)

// TaskRepo persists tasks and their subtasks. The core logic never calls
// this directly; services load a snapshot, run the pure functions, and
// write mutations back.
type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	// GetByPrefix resolves a task by unique id prefix, for CLI ergonomics.
	GetByPrefix(ctx context.Context, prefix string) (*domain.Task, error)
	// List returns all tasks ordered by creation time, oldest first.
	List(ctx context.Context) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}
