package notification

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles notification data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new notification repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new notification
func (r *Repository) Create(ctx context.Context, recipient, message string, entityType *string, entityID *int64) (*Notification, error) {
	query := `
		INSERT INTO notifications (recipient, message, related_entity_type, related_entity_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, recipient, message, is_read, related_entity_type, related_entity_id, created_at`

	n := &Notification{}
	err := r.db.QueryRowContext(ctx, query, recipient, message, entityType, entityID).Scan(
		&n.ID, &n.Recipient, &n.Message, &n.IsRead,
		&n.RelatedEntityType, &n.RelatedEntityID, &n.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	return n, nil
}

// GetByID retrieves a notification, returning (nil, nil) when absent
func (r *Repository) GetByID(ctx context.Context, id int64) (*Notification, error) {
	query := `
		SELECT id, recipient, message, is_read, related_entity_type, related_entity_id, created_at
		FROM notifications WHERE id = $1`

	n := &Notification{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&n.ID, &n.Recipient, &n.Message, &n.IsRead,
		&n.RelatedEntityType, &n.RelatedEntityID, &n.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}
	return n, nil
}

// ListByRecipient retrieves a user's notifications, newest first
func (r *Repository) ListByRecipient(ctx context.Context, recipient string, limit, offset int, unreadOnly bool) ([]*Notification, int, error) {
	where := `WHERE recipient = $1`
	if unreadOnly {
		where += ` AND is_read = FALSE`
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM notifications `+where, recipient).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	query := `
		SELECT id, recipient, message, is_read, related_entity_type, related_entity_id, created_at
		FROM notifications ` + where + `
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, recipient, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*Notification
	for rows.Next() {
		n := &Notification{}
		if err := rows.Scan(&n.ID, &n.Recipient, &n.Message, &n.IsRead,
			&n.RelatedEntityType, &n.RelatedEntityID, &n.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, total, rows.Err()
}

// MarkAsRead marks one notification as read
func (r *Repository) MarkAsRead(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE notifications SET is_read = TRUE WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

// MarkAllAsRead marks every notification for the recipient as read
func (r *Repository) MarkAllAsRead(ctx context.Context, recipient string) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE notifications SET is_read = TRUE WHERE recipient = $1`, recipient); err != nil {
		return fmt.Errorf("failed to mark all notifications read: %w", err)
	}
	return nil
}

// CountUnread returns the number of unread notifications for the recipient
func (r *Repository) CountUnread(ctx context.Context, recipient string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM notifications WHERE recipient = $1 AND is_read = FALSE`, recipient).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}
