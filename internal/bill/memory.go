package bill

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository is an in-memory Repository with an explicit lifecycle:
// construct with seed data, Reset between tests.
type MemoryRepository struct {
	mu     sync.Mutex
	bills  map[int64]*Bill
	nextID int64
	seed   []*Bill
}

// NewMemoryRepository creates an in-memory repository seeded with the given bills
func NewMemoryRepository(seed ...*Bill) *MemoryRepository {
	r := &MemoryRepository{seed: seed}
	r.Reset()
	return r
}

// Reset restores the repository to its seed state
func (r *MemoryRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bills = make(map[int64]*Bill, len(r.seed))
	r.nextID = 1
	for _, b := range r.seed {
		clone := b.Clone()
		clone.ID = r.nextID
		r.bills[r.nextID] = &clone
		r.nextID++
	}
}

// Create assigns an ID and timestamp and stores a copy of the bill
func (r *MemoryRepository) Create(ctx context.Context, b *Bill) (*Bill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := b.Clone()
	clone.ID = r.nextID
	clone.CreatedAt = time.Now()
	r.nextID++
	r.bills[clone.ID] = &clone
	out := clone.Clone()
	return &out, nil
}

// GetByID returns a copy of the stored bill, or (nil, nil) when absent
func (r *MemoryRepository) GetByID(ctx context.Context, id int64) (*Bill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bills[id]
	if !ok {
		return nil, nil
	}
	out := b.Clone()
	return &out, nil
}

// ListByHousehold returns copies of all bills in the household
func (r *MemoryRepository) ListByHousehold(ctx context.Context, householdID int64) ([]*Bill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Bill
	for id := int64(1); id < r.nextID; id++ {
		if b, ok := r.bills[id]; ok && b.HouseholdID == householdID {
			clone := b.Clone()
			out = append(out, &clone)
		}
	}
	return out, nil
}

// Update replaces the stored bill, returning (nil, nil) when absent
func (r *MemoryRepository) Update(ctx context.Context, b *Bill) (*Bill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.bills[b.ID]
	if !ok {
		return nil, nil
	}
	clone := b.Clone()
	clone.CreatedAt = stored.CreatedAt
	r.bills[b.ID] = &clone
	out := clone.Clone()
	return &out, nil
}

// Delete removes a bill by ID
func (r *MemoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.bills, id)
	return nil
}
