package chat

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrThreadNotFound = errors.New("thread not found")
	ErrNameRequired   = errors.New("thread name is required")
	ErrBodyRequired   = errors.New("message body is required")
)

// Service handles chat business logic
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new chat service with the repository injected
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// CreateThread validates and stores a new thread
func (s *Service) CreateThread(ctx context.Context, req *CreateThreadRequest) (*Thread, error) {
	if req.Name == "" {
		return nil, ErrNameRequired
	}
	return s.repo.CreateThread(ctx, &Thread{
		HouseholdID: req.HouseholdID,
		Name:        req.Name,
	})
}

// ListThreads returns the household's threads with the viewer's unread counts
func (s *Service) ListThreads(ctx context.Context, householdID int64, viewer string) ([]*ThreadWithUnread, error) {
	threads, err := s.repo.ListThreads(ctx, householdID)
	if err != nil {
		return nil, err
	}

	out := make([]*ThreadWithUnread, len(threads))
	for i, t := range threads {
		unread, err := s.repo.CountUnread(ctx, t.ID, viewer)
		if err != nil {
			return nil, err
		}
		out[i] = &ThreadWithUnread{Thread: *t, UnreadCount: unread}
	}
	return out, nil
}

// ListMessages returns a thread's messages oldest first
func (s *Service) ListMessages(ctx context.Context, threadID int64) ([]*Message, error) {
	if err := s.requireThread(ctx, threadID); err != nil {
		return nil, err
	}
	return s.repo.ListMessages(ctx, threadID)
}

// PostMessage stores a message from the sender in the thread
func (s *Service) PostMessage(ctx context.Context, threadID int64, sender string, req *PostMessageRequest) (*Message, error) {
	if req.Body == "" {
		return nil, ErrBodyRequired
	}
	if err := s.requireThread(ctx, threadID); err != nil {
		return nil, err
	}

	return s.repo.CreateMessage(ctx, &Message{
		ID:       uuid.NewString(),
		ThreadID: threadID,
		Sender:   sender,
		Body:     req.Body,
		SentAt:   s.now(),
	})
}

// MarkRead moves the viewer's read watermark to now, zeroing their unread
// count for the thread
func (s *Service) MarkRead(ctx context.Context, threadID int64, viewer string) error {
	if err := s.requireThread(ctx, threadID); err != nil {
		return err
	}
	return s.repo.SetLastRead(ctx, threadID, viewer, s.now())
}

func (s *Service) requireThread(ctx context.Context, threadID int64) error {
	t, err := s.repo.GetThread(ctx, threadID)
	if err != nil {
		return err
	}
	if t == nil {
		return ErrThreadNotFound
	}
	return nil
}
