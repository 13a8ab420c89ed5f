package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	dbpkg "github.com/morgansel/taskpilot/internal/db"
	"github.com/morgansel/taskpilot/internal/domain"
)

// taskColumns is the canonical SELECT column list for tasks.
const taskColumns = `id, name, priority, category, status, due_date,
		estimated_min, notes, quadrant, created_at, updated_at, completed_at`

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db *sql.DB
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(db *sql.DB) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: db}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO tasks (id, name, priority, category, status, due_date,
		estimated_min, notes, quadrant, created_at, updated_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = tx.ExecContext(ctx, query,
		t.ID,
		t.Name,
		string(t.Priority),
		string(t.Category),
		string(t.Status),
		nullableTimeToString(t.DueDate),
		nullableIntToValue(t.EstimatedMinutes),
		t.Notes,
		string(t.MatrixQuadrant),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
		nullableTimeToString(t.CompletedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}

	if err := insertSubtasks(ctx, tx, t.ID, t.Subtasks); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	t, err := scanTask(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadSubtasks(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *SQLiteTaskRepo) GetByPrefix(ctx context.Context, prefix string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id LIKE ? LIMIT 2`
	rows, err := r.db.QueryContext(ctx, query, prefix+"%")
	if err != nil {
		return nil, fmt.Errorf("resolving task prefix: %w", err)
	}
	defer rows.Close()

	tasks, err := scanTasks(rows)
	if err != nil {
		return nil, err
	}
	switch len(tasks) {
	case 0:
		return nil, fmt.Errorf("no task matches %q", prefix)
	case 1:
		if err := r.loadSubtasks(ctx, tasks[0]); err != nil {
			return nil, err
		}
		return tasks[0], nil
	default:
		return nil, fmt.Errorf("task id %q is ambiguous", prefix)
	}
}

func (r *SQLiteTaskRepo) List(ctx context.Context) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	tasks, err := scanTasks(rows)
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		if err := r.loadSubtasks(ctx, t); err != nil {
			return nil, err
		}
	}
	return tasks, nil
}

// Update replaces every mutable field, subtasks included. Callers must
// have reclassified the quadrant before writing.
func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE tasks SET name = ?, priority = ?, category = ?, status = ?,
		due_date = ?, estimated_min = ?, notes = ?, quadrant = ?,
		updated_at = ?, completed_at = ? WHERE id = ?`
	res, err := tx.ExecContext(ctx, query,
		t.Name,
		string(t.Priority),
		string(t.Category),
		string(t.Status),
		nullableTimeToString(t.DueDate),
		nullableIntToValue(t.EstimatedMinutes),
		t.Notes,
		string(t.MatrixQuadrant),
		t.UpdatedAt.Format(time.RFC3339),
		nullableTimeToString(t.CompletedAt),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("task %s not found", t.ID)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM subtasks WHERE task_id = ?`, t.ID); err != nil {
		return fmt.Errorf("clearing subtasks: %w", err)
	}
	if err := insertSubtasks(ctx, tx, t.ID, t.Subtasks); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("task %s not found", id)
	}
	return nil
}

func insertSubtasks(ctx context.Context, tx dbpkg.DBTX, taskID string, subtasks []domain.Subtask) error {
	for i, st := range subtasks {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO subtasks (id, task_id, title, completed, position) VALUES (?, ?, ?, ?, ?)`,
			st.ID, taskID, st.Title, boolToInt(st.Completed), i,
		)
		if err != nil {
			return fmt.Errorf("inserting subtask: %w", err)
		}
	}
	return nil
}

func (r *SQLiteTaskRepo) loadSubtasks(ctx context.Context, t *domain.Task) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, completed FROM subtasks WHERE task_id = ? ORDER BY position`, t.ID)
	if err != nil {
		return fmt.Errorf("loading subtasks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var st domain.Subtask
		var completed int
		if err := rows.Scan(&st.ID, &st.Title, &completed); err != nil {
			return fmt.Errorf("scanning subtask: %w", err)
		}
		st.Completed = intToBool(completed)
		t.Subtasks = append(t.Subtasks, st)
	}
	return rows.Err()
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var t domain.Task
	var priority, category, status, quadrant string
	var dueDate, completedAt sql.NullString
	var estimatedMin sql.NullInt64
	var createdAt, updatedAt string

	err := row.Scan(
		&t.ID, &t.Name, &priority, &category, &status, &dueDate,
		&estimatedMin, &t.Notes, &quadrant, &createdAt, &updatedAt, &completedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("task not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	t.Priority = domain.Priority(priority)
	t.Category = domain.Category(category)
	t.Status = domain.Status(status)
	t.MatrixQuadrant = domain.MatrixQuadrant(quadrant)
	t.DueDate = parseNullableTime(dueDate)
	t.CompletedAt = parseNullableTime(completedAt)
	if estimatedMin.Valid {
		v := int(estimatedMin.Int64)
		t.EstimatedMinutes = &v
	}
	if t.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if t.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &t, nil
}

func scanTasks(rows *sql.Rows) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
