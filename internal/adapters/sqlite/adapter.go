// Package sqlite provides a SQLite-backed implementation of the task
// repository port.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // Import the driver anonymously

	"github.com/nagare-labs/nagare/backend/internal/core/domain"
	"github.com/nagare-labs/nagare/backend/internal/core/ports"
)

// Adapter implements the task repository port for SQLite
type Adapter struct {
	db *sql.DB
}

// compile-time interface assertion
var _ ports.TaskRepository = (*Adapter)(nil)

// NewAdapter creates a connection and runs the schema migration
func NewAdapter(storagePath string) (*Adapter, error) {
	db, err := sql.Open("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}

	// Verify connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite db: %w", err)
	}

	adapter := &Adapter{db: db}

	// Auto-migrate on startup for local dev
	if err := adapter.migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return adapter, nil
}

// Close ensures the DB connection is closed gracefully
func (a *Adapter) Close() error {
	return a.db.Close()
}

func (a *Adapter) List(ctx context.Context) ([]domain.Task, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT id, title, note, status, priority, tags, due_date
		FROM tasks
		ORDER BY created_at ASC, rowid ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		task, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}

func (a *Adapter) GetByID(ctx context.Context, id string) (domain.Task, error) {
	row := a.db.QueryRowContext(ctx, `
		SELECT id, title, note, status, priority, tags, due_date
		FROM tasks
		WHERE id = ?
	`, id)

	task, err := scanTask(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Task{}, domain.ErrNotFound
		}
		return domain.Task{}, err
	}
	return task, nil
}

func (a *Adapter) Save(ctx context.Context, t domain.Task) error {
	tags, err := json.Marshal(t.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode task tags: %w", err)
	}

	var due sql.NullString
	if t.Date != nil {
		due = sql.NullString{String: t.Date.UTC().Format(time.RFC3339), Valid: true}
	}

	query := `
		INSERT INTO tasks (id, title, note, status, priority, tags, due_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title=excluded.title,
			note=excluded.note,
			status=excluded.status,
			priority=excluded.priority,
			tags=excluded.tags,
			due_date=excluded.due_date;
	`
	if _, err := a.db.ExecContext(ctx, query,
		t.ID, t.Title, t.Note, string(t.Status), string(t.Priority), string(tags), due,
	); err != nil {
		return fmt.Errorf("failed to save task %s: %w", t.ID, err)
	}

	return nil
}

func (a *Adapter) Delete(ctx context.Context, id string) error {
	res, err := a.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete task %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete task %s: %w", id, err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// scanTask decodes one row into a task. It takes the row's Scan func so the
// same decoding serves both QueryRow and Rows.
func scanTask(scan func(dest ...any) error) (domain.Task, error) {
	var (
		task     domain.Task
		note     sql.NullString
		status   string
		priority string
		tags     sql.NullString
		due      sql.NullString
	)
	if err := scan(&task.ID, &task.Title, &note, &status, &priority, &tags, &due); err != nil {
		if err == sql.ErrNoRows {
			return domain.Task{}, err
		}
		return domain.Task{}, fmt.Errorf("failed to scan task: %w", err)
	}

	task.Note = note.String
	task.Status = domain.TaskStatus(status)
	task.Priority = domain.Priority(priority)

	if tags.Valid && tags.String != "" {
		if err := json.Unmarshal([]byte(tags.String), &task.Tags); err != nil {
			return domain.Task{}, fmt.Errorf("failed to decode task tags: %w", err)
		}
	}
	if due.Valid && due.String != "" {
		when, err := time.Parse(time.RFC3339, due.String)
		if err != nil {
			return domain.Task{}, fmt.Errorf("failed to parse task due date: %w", err)
		}
		task.Date = &when
	}

	return task, nil
}

func (a *Adapter) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS tasks (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		note TEXT,
		status TEXT NOT NULL,
		priority TEXT NOT NULL,
		tags TEXT,
		due_date TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := a.db.Exec(query); err != nil {
		return err
	}

	return nil
}
