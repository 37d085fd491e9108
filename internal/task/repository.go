package task

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository is the persistence boundary for tasks
type Repository interface {
	Create(ctx context.Context, t *Task) (*Task, error)
	GetByID(ctx context.Context, id int64) (*Task, error)
	ListByHousehold(ctx context.Context, householdID int64) ([]*Task, error)
	Update(ctx context.Context, t *Task) (*Task, error)
	Delete(ctx context.Context, id int64) error
}

// PostgresRepository stores tasks in Postgres
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new task repository backed by Postgres
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const taskColumns = `id, household_id, title, notes, assignee, due_date, completed, created_at`

func scanTask(row interface{ Scan(...any) error }) (*Task, error) {
	t := &Task{}
	err := row.Scan(&t.ID, &t.HouseholdID, &t.Title, &t.Notes, &t.Assignee,
		&t.DueDate, &t.Completed, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Create inserts a new task
func (r *PostgresRepository) Create(ctx context.Context, t *Task) (*Task, error) {
	query := `
		INSERT INTO tasks (household_id, title, notes, assignee, due_date, completed)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + taskColumns

	created, err := scanTask(r.db.QueryRowContext(ctx, query,
		t.HouseholdID, t.Title, t.Notes, t.Assignee, t.DueDate, t.Completed))
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return created, nil
}

// GetByID retrieves a task, returning (nil, nil) when absent
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	t, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// ListByHousehold retrieves all tasks for a household
func (r *PostgresRepository) ListByHousehold(ctx context.Context, householdID int64) ([]*Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE household_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, householdID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Update rewrites the task's mutable fields
func (r *PostgresRepository) Update(ctx context.Context, t *Task) (*Task, error) {
	query := `
		UPDATE tasks
		SET title = $2, notes = $3, assignee = $4, due_date = $5, completed = $6
		WHERE id = $1
		RETURNING ` + taskColumns

	updated, err := scanTask(r.db.QueryRowContext(ctx, query,
		t.ID, t.Title, t.Notes, t.Assignee, t.DueDate, t.Completed))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return updated, nil
}

// Delete removes a task by ID
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
