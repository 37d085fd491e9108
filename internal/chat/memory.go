package chat

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository is an in-memory Repository for tests and local development
type MemoryRepository struct {
	mu        sync.Mutex
	threads   map[int64]*Thread
	messages  map[int64][]*Message
	lastReads map[int64]map[string]time.Time
	nextID    int64
}

// NewMemoryRepository creates an empty in-memory chat repository
func NewMemoryRepository() *MemoryRepository {
	r := &MemoryRepository{}
	r.Reset()
	return r
}

// Reset clears all stored chat data
func (r *MemoryRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.threads = make(map[int64]*Thread)
	r.messages = make(map[int64][]*Message)
	r.lastReads = make(map[int64]map[string]time.Time)
	r.nextID = 1
}

func (r *MemoryRepository) CreateThread(ctx context.Context, t *Thread) (*Thread, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *t
	clone.ID = r.nextID
	clone.CreatedAt = time.Now()
	r.nextID++
	r.threads[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *MemoryRepository) GetThread(ctx context.Context, id int64) (*Thread, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.threads[id]
	if !ok {
		return nil, nil
	}
	out := *t
	return &out, nil
}

func (r *MemoryRepository) ListThreads(ctx context.Context, householdID int64) ([]*Thread, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Thread
	for id := int64(1); id < r.nextID; id++ {
		if t, ok := r.threads[id]; ok && t.HouseholdID == householdID {
			clone := *t
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *MemoryRepository) CreateMessage(ctx context.Context, m *Message) (*Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *m
	r.messages[m.ThreadID] = append(r.messages[m.ThreadID], &clone)
	out := clone
	return &out, nil
}

func (r *MemoryRepository) ListMessages(ctx context.Context, threadID int64) ([]*Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	msgs := r.messages[threadID]
	out := make([]*Message, len(msgs))
	for i, m := range msgs {
		clone := *m
		out[i] = &clone
	}
	return out, nil
}

func (r *MemoryRepository) CountUnread(ctx context.Context, threadID int64, viewer string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var watermark time.Time
	if reads, ok := r.lastReads[threadID]; ok {
		watermark = reads[viewer]
	}
	count := 0
	for _, m := range r.messages[threadID] {
		if m.Sender != viewer && m.SentAt.After(watermark) {
			count++
		}
	}
	return count, nil
}

func (r *MemoryRepository) SetLastRead(ctx context.Context, threadID int64, viewer string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	reads, ok := r.lastReads[threadID]
	if !ok {
		reads = make(map[string]time.Time)
		r.lastReads[threadID] = reads
	}
	if at.After(reads[viewer]) {
		reads[viewer] = at
	}
	return nil
}
