package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER
// TABLE re-runs tolerate duplicate column errors.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		priority      TEXT NOT NULL DEFAULT 'Medium'
		              CHECK(priority IN ('Critical','High','Medium','Low')),
		category      TEXT NOT NULL DEFAULT 'General',
		status        TEXT NOT NULL DEFAULT 'Pending'
		              CHECK(status IN ('Pending','InProgress','Completed')),
		due_date      TEXT,
		estimated_min INTEGER CHECK(estimated_min IS NULL OR estimated_min > 0),
		notes         TEXT NOT NULL DEFAULT '',
		quadrant      TEXT NOT NULL DEFAULT 'Neither',
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL,
		completed_at  TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_due ON tasks(due_date)`,

	`CREATE TABLE IF NOT EXISTS subtasks (
		id          TEXT PRIMARY KEY,
		task_id     TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		title       TEXT NOT NULL,
		completed   INTEGER NOT NULL DEFAULT 0,
		position    INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_subtasks_task ON subtasks(task_id)`,
}
