package chat

import (
	"context"
	"errors"
	"testing"
	"time"
)

// newClockedService returns a service whose clock advances one second per call
// so message ordering and watermarks are deterministic.
func newClockedService() *Service {
	svc := NewService(NewMemoryRepository())
	current := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		current = current.Add(time.Second)
		return current
	}
	return svc
}

func TestUnreadCountBookkeeping(t *testing.T) {
	svc := newClockedService()
	ctx := context.Background()

	thread, err := svc.CreateThread(ctx, &CreateThreadRequest{HouseholdID: 1, Name: "general"})
	if err != nil {
		t.Fatalf("CreateThread() error = %v", err)
	}

	for _, body := range []string{"hey", "who bought milk?"} {
		if _, err := svc.PostMessage(ctx, thread.ID, "Alex", &PostMessageRequest{Body: body}); err != nil {
			t.Fatalf("PostMessage() error = %v", err)
		}
	}
	if _, err := svc.PostMessage(ctx, thread.ID, "Sam", &PostMessageRequest{Body: "me"}); err != nil {
		t.Fatalf("PostMessage() error = %v", err)
	}

	threads, err := svc.ListThreads(ctx, 1, "Sam")
	if err != nil {
		t.Fatalf("ListThreads() error = %v", err)
	}
	if threads[0].UnreadCount != 2 {
		t.Errorf("unread = %d, want 2 (own messages don't count)", threads[0].UnreadCount)
	}

	if err := svc.MarkRead(ctx, thread.ID, "Sam"); err != nil {
		t.Fatalf("MarkRead() error = %v", err)
	}

	threads, _ = svc.ListThreads(ctx, 1, "Sam")
	if threads[0].UnreadCount != 0 {
		t.Errorf("unread = %d, want 0 after mark-read", threads[0].UnreadCount)
	}

	// a new message after the watermark counts again
	if _, err := svc.PostMessage(ctx, thread.ID, "Alex", &PostMessageRequest{Body: "ping"}); err != nil {
		t.Fatalf("PostMessage() error = %v", err)
	}
	threads, _ = svc.ListThreads(ctx, 1, "Sam")
	if threads[0].UnreadCount != 1 {
		t.Errorf("unread = %d, want 1 after a fresh message", threads[0].UnreadCount)
	}
}

func TestMessagesOrderedAndUnique(t *testing.T) {
	svc := newClockedService()
	ctx := context.Background()

	thread, err := svc.CreateThread(ctx, &CreateThreadRequest{HouseholdID: 1, Name: "general"})
	if err != nil {
		t.Fatalf("CreateThread() error = %v", err)
	}

	bodies := []string{"first", "second", "third"}
	for _, b := range bodies {
		if _, err := svc.PostMessage(ctx, thread.ID, "Alex", &PostMessageRequest{Body: b}); err != nil {
			t.Fatalf("PostMessage() error = %v", err)
		}
	}

	messages, err := svc.ListMessages(ctx, thread.ID)
	if err != nil {
		t.Fatalf("ListMessages() error = %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("len = %d, want 3", len(messages))
	}

	seen := map[string]bool{}
	for i, m := range messages {
		if m.Body != bodies[i] {
			t.Errorf("message[%d] = %q, want %q", i, m.Body, bodies[i])
		}
		if m.ID == "" || seen[m.ID] {
			t.Errorf("message %d has missing or duplicate ID %q", i, m.ID)
		}
		seen[m.ID] = true
	}
}

func TestPostMessageValidation(t *testing.T) {
	svc := newClockedService()
	ctx := context.Background()

	thread, _ := svc.CreateThread(ctx, &CreateThreadRequest{HouseholdID: 1, Name: "general"})

	if _, err := svc.PostMessage(ctx, thread.ID, "Alex", &PostMessageRequest{}); !errors.Is(err, ErrBodyRequired) {
		t.Errorf("PostMessage() error = %v, want ErrBodyRequired", err)
	}
	if _, err := svc.PostMessage(ctx, 999, "Alex", &PostMessageRequest{Body: "hi"}); !errors.Is(err, ErrThreadNotFound) {
		t.Errorf("PostMessage() error = %v, want ErrThreadNotFound", err)
	}
}

func TestCreateThreadRequiresName(t *testing.T) {
	svc := newClockedService()

	if _, err := svc.CreateThread(context.Background(), &CreateThreadRequest{HouseholdID: 1}); !errors.Is(err, ErrNameRequired) {
		t.Errorf("CreateThread() error = %v, want ErrNameRequired", err)
	}
}
