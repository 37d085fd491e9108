package task

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository is an in-memory Repository for tests and local development
type MemoryRepository struct {
	mu     sync.Mutex
	tasks  map[int64]*Task
	nextID int64
}

// NewMemoryRepository creates an empty in-memory task repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{tasks: make(map[int64]*Task), nextID: 1}
}

// Reset clears all stored tasks
func (r *MemoryRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks = make(map[int64]*Task)
	r.nextID = 1
}

func (r *MemoryRepository) Create(ctx context.Context, t *Task) (*Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *t
	clone.ID = r.nextID
	clone.CreatedAt = time.Now()
	r.nextID++
	r.tasks[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id int64) (*Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	out := *t
	return &out, nil
}

func (r *MemoryRepository) ListByHousehold(ctx context.Context, householdID int64) ([]*Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Task
	for id := int64(1); id < r.nextID; id++ {
		if t, ok := r.tasks[id]; ok && t.HouseholdID == householdID {
			clone := *t
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *MemoryRepository) Update(ctx context.Context, t *Task) (*Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.tasks[t.ID]
	if !ok {
		return nil, nil
	}
	clone := *t
	clone.CreatedAt = stored.CreatedAt
	r.tasks[t.ID] = &clone
	out := clone
	return &out, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tasks, id)
	return nil
}
