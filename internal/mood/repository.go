package mood

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository is the persistence boundary for mood entries
type Repository interface {
	Create(ctx context.Context, e *Entry) (*Entry, error)
	ListByHousehold(ctx context.Context, householdID int64, limit int) ([]*Entry, error)
	LatestPerMember(ctx context.Context, householdID int64) ([]*Entry, error)
}

// PostgresRepository stores mood entries in Postgres
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new mood repository backed by Postgres
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new mood entry
func (r *PostgresRepository) Create(ctx context.Context, e *Entry) (*Entry, error) {
	query := `
		INSERT INTO moods (household_id, username, mood, note)
		VALUES ($1, $2, $3, $4)
		RETURNING id, household_id, username, mood, note, created_at`

	created := &Entry{}
	err := r.db.QueryRowContext(ctx, query, e.HouseholdID, e.Username, e.Mood, e.Note).Scan(
		&created.ID, &created.HouseholdID, &created.Username, &created.Mood,
		&created.Note, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create mood entry: %w", err)
	}
	return created, nil
}

// ListByHousehold retrieves the household's mood feed, newest first
func (r *PostgresRepository) ListByHousehold(ctx context.Context, householdID int64, limit int) ([]*Entry, error) {
	query := `
		SELECT id, household_id, username, mood, note, created_at
		FROM moods WHERE household_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, householdID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list moods: %w", err)
	}
	defer rows.Close()
	return collect(rows)
}

// LatestPerMember retrieves each member's most recent mood
func (r *PostgresRepository) LatestPerMember(ctx context.Context, householdID int64) ([]*Entry, error) {
	query := `
		SELECT DISTINCT ON (username) id, household_id, username, mood, note, created_at
		FROM moods WHERE household_id = $1
		ORDER BY username, created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, householdID)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest moods: %w", err)
	}
	defer rows.Close()
	return collect(rows)
}

func collect(rows *sql.Rows) ([]*Entry, error) {
	var entries []*Entry
	for rows.Next() {
		e := &Entry{}
		if err := rows.Scan(&e.ID, &e.HouseholdID, &e.Username, &e.Mood, &e.Note, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan mood entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
