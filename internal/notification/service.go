package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Common errors
var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotRecipient         = errors.New("not the recipient of this notification")
)

// Service handles notification business logic
type Service struct {
	repo *Repository
}

// NewService creates a new notification service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// List retrieves a page of the user's notifications
func (s *Service) List(ctx context.Context, recipient string, page, perPage int, unreadOnly bool) ([]*Notification, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	offset := (page - 1) * perPage
	return s.repo.ListByRecipient(ctx, recipient, perPage, offset, unreadOnly)
}

// MarkAsRead marks a notification as read, recipient-only
func (s *Service) MarkAsRead(ctx context.Context, id int64, recipient string) error {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n == nil {
		return ErrNotificationNotFound
	}
	if n.Recipient != recipient {
		return ErrNotRecipient
	}
	return s.repo.MarkAsRead(ctx, id)
}

// MarkAllAsRead marks all of the user's notifications as read
func (s *Service) MarkAllAsRead(ctx context.Context, recipient string) error {
	return s.repo.MarkAllAsRead(ctx, recipient)
}

// UnreadCount returns the count of unread notifications
func (s *Service) UnreadCount(ctx context.Context, recipient string) (int, error) {
	return s.repo.CountUnread(ctx, recipient)
}

// The helpers below satisfy the bill and task Notifier interfaces. They are
// fire-and-forget: a failed insert is logged, never surfaced to the caller's
// request.

// NotifyBillAdded tells a participant they owe money on a new bill
func (s *Service) NotifyBillAdded(ctx context.Context, recipient, payer string, amount float64, billID int64) {
	message := fmt.Sprintf("%s added a bill for $%.2f that includes you", payer, amount)
	entityType := "BILL"
	if _, err := s.repo.Create(ctx, recipient, message, &entityType, &billID); err != nil {
		slog.Warn("failed to create bill notification", "recipient", recipient, "error", err)
	}
}

// NotifyPaymentRecorded tells the payer a participant marked their share paid
func (s *Service) NotifyPaymentRecorded(ctx context.Context, recipient, participant string, billID int64) {
	message := participant + " marked their share as paid"
	entityType := "BILL"
	if _, err := s.repo.Create(ctx, recipient, message, &entityType, &billID); err != nil {
		slog.Warn("failed to create payment notification", "recipient", recipient, "error", err)
	}
}

// NotifyTaskAssigned tells a member a chore landed on them
func (s *Service) NotifyTaskAssigned(ctx context.Context, recipient, title string, taskID int64) {
	message := "You were assigned: " + title
	entityType := "TASK"
	if _, err := s.repo.Create(ctx, recipient, message, &entityType, &taskID); err != nil {
		slog.Warn("failed to create task notification", "recipient", recipient, "error", err)
	}
}
