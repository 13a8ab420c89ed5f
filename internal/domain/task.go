package domain

import (
	"fmt"
	"time"
)

// Subtask is a single step inside a task. Order within Task.Subtasks is
// the display order.
type Subtask struct {
	ID        string
	Title     string
	Completed bool
}

type Task struct {
	ID       string
	Name     string
	Priority Priority
	Category Category
	Status   Status

	DueDate          *time.Time
	EstimatedMinutes *int
	Subtasks         []Subtask
	Notes            string

	// MatrixQuadrant is derived from Priority and DueDate. It is
	// recomputed on every mutation of either field, never set directly.
	MatrixQuadrant MatrixQuadrant

	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

// DraftTask is the parser's output: a task skeleton without identity.
type DraftTask struct {
	Name             string
	Priority         Priority
	Category         Category
	DueDate          *time.Time
	EstimatedMinutes *int
	Subtasks         []string
	Notes            string
}

// MarkDone transitions the task to Completed and stamps CompletedAt.
// Completing an already-completed task keeps the original CompletedAt.
func (t *Task) MarkDone(now time.Time) {
	if t.Status == StatusCompleted {
		return
	}
	t.Status = StatusCompleted
	t.CompletedAt = &now
	t.UpdatedAt = now
}

// Start transitions the task to InProgress.
func (t *Task) Start(now time.Time) error {
	if t.Status == StatusCompleted {
		return fmt.Errorf("task %q is completed; reopen it first", t.Name)
	}
	t.Status = StatusInProgress
	t.UpdatedAt = now
	return nil
}

// Reopen returns a completed task to Pending and clears CompletedAt.
func (t *Task) Reopen(now time.Time) {
	t.Status = StatusPending
	t.CompletedAt = nil
	t.UpdatedAt = now
}

// DisplayID returns a short identifier for terminal output.
func (t *Task) DisplayID() string {
	if len(t.ID) >= 8 {
		return t.ID[:8]
	}
	return t.ID
}
