package chat

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Repository is the persistence boundary for chat threads, messages and
// per-viewer read watermarks.
type Repository interface {
	CreateThread(ctx context.Context, t *Thread) (*Thread, error)
	GetThread(ctx context.Context, id int64) (*Thread, error)
	ListThreads(ctx context.Context, householdID int64) ([]*Thread, error)
	CreateMessage(ctx context.Context, m *Message) (*Message, error)
	ListMessages(ctx context.Context, threadID int64) ([]*Message, error)
	CountUnread(ctx context.Context, threadID int64, viewer string) (int, error)
	SetLastRead(ctx context.Context, threadID int64, viewer string, at time.Time) error
}

// PostgresRepository stores chat data in Postgres
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new chat repository backed by Postgres
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// CreateThread inserts a new thread
func (r *PostgresRepository) CreateThread(ctx context.Context, t *Thread) (*Thread, error) {
	query := `
		INSERT INTO chat_threads (household_id, name)
		VALUES ($1, $2)
		RETURNING id, household_id, name, created_at`

	created := &Thread{}
	err := r.db.QueryRowContext(ctx, query, t.HouseholdID, t.Name).Scan(
		&created.ID, &created.HouseholdID, &created.Name, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create thread: %w", err)
	}
	return created, nil
}

// GetThread retrieves a thread, returning (nil, nil) when absent
func (r *PostgresRepository) GetThread(ctx context.Context, id int64) (*Thread, error) {
	t := &Thread{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, household_id, name, created_at FROM chat_threads WHERE id = $1`, id).
		Scan(&t.ID, &t.HouseholdID, &t.Name, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get thread: %w", err)
	}
	return t, nil
}

// ListThreads retrieves all threads for a household
func (r *PostgresRepository) ListThreads(ctx context.Context, householdID int64) ([]*Thread, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, household_id, name, created_at FROM chat_threads WHERE household_id = $1 ORDER BY created_at`, householdID)
	if err != nil {
		return nil, fmt.Errorf("failed to list threads: %w", err)
	}
	defer rows.Close()

	var threads []*Thread
	for rows.Next() {
		t := &Thread{}
		if err := rows.Scan(&t.ID, &t.HouseholdID, &t.Name, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan thread: %w", err)
		}
		threads = append(threads, t)
	}
	return threads, rows.Err()
}

// CreateMessage inserts a new message
func (r *PostgresRepository) CreateMessage(ctx context.Context, m *Message) (*Message, error) {
	query := `
		INSERT INTO chat_messages (id, thread_id, sender, body, sent_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, thread_id, sender, body, sent_at`

	created := &Message{}
	err := r.db.QueryRowContext(ctx, query, m.ID, m.ThreadID, m.Sender, m.Body, m.SentAt).Scan(
		&created.ID, &created.ThreadID, &created.Sender, &created.Body, &created.SentAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	return created, nil
}

// ListMessages retrieves a thread's messages oldest first
func (r *PostgresRepository) ListMessages(ctx context.Context, threadID int64) ([]*Message, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, thread_id, sender, body, sent_at FROM chat_messages WHERE thread_id = $1 ORDER BY sent_at, id`, threadID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	var messages []*Message
	for rows.Next() {
		m := &Message{}
		if err := rows.Scan(&m.ID, &m.ThreadID, &m.Sender, &m.Body, &m.SentAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// CountUnread counts messages newer than the viewer's watermark, excluding
// the viewer's own messages
func (r *PostgresRepository) CountUnread(ctx context.Context, threadID int64, viewer string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM chat_messages m
		WHERE m.thread_id = $1
		  AND m.sender <> $2
		  AND m.sent_at > COALESCE(
			(SELECT last_read_at FROM chat_thread_reads WHERE thread_id = $1 AND username = $2),
			'epoch'::timestamptz)`

	var count int
	if err := r.db.QueryRowContext(ctx, query, threadID, viewer).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unread: %w", err)
	}
	return count, nil
}

// SetLastRead upserts the viewer's read watermark for the thread
func (r *PostgresRepository) SetLastRead(ctx context.Context, threadID int64, viewer string, at time.Time) error {
	query := `
		INSERT INTO chat_thread_reads (thread_id, username, last_read_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (thread_id, username)
		DO UPDATE SET last_read_at = GREATEST(chat_thread_reads.last_read_at, EXCLUDED.last_read_at)`

	if _, err := r.db.ExecContext(ctx, query, threadID, viewer, at); err != nil {
		return fmt.Errorf("failed to set last read: %w", err)
	}
	return nil
}
