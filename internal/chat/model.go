package chat

import "time"

// Thread represents a household chat thread
type Thread struct {
	ID          int64     `json:"id"`
	HouseholdID int64     `json:"household_id"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"created_at"`
}

// Message represents a single chat message. IDs are UUIDs assigned at send
// time so clients can reconcile optimistic sends.
type Message struct {
	ID       string    `json:"id"`
	ThreadID int64     `json:"thread_id"`
	Sender   string    `json:"sender"`
	Body     string    `json:"body"`
	SentAt   time.Time `json:"sent_at"`
}

// ThreadWithUnread pairs a thread with the viewer's unread message count
type ThreadWithUnread struct {
	Thread
	UnreadCount int `json:"unread_count"`
}

// CreateThreadRequest represents the request to create a thread
type CreateThreadRequest struct {
	HouseholdID int64  `json:"household_id"`
	Name        string `json:"name"`
}

// PostMessageRequest represents the request to post a message
type PostMessageRequest struct {
	Body string `json:"body"`
}
