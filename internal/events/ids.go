package events

import (
	"sync"

	"todo-list/internal/domain"
)

// IDAllocator hands out task ids for one session. It starts at max(existing)+1
// and only moves forward, so ids freed by deletion are not reused within the session.
type IDAllocator struct {
	mu   sync.Mutex
	next int64
}

// NewIDAllocator initialises the counter from the persisted collection
func NewIDAllocator(tasks []domain.Task) *IDAllocator {
	return &IDAllocator{next: domain.NextID(tasks)}
}

// Next returns a fresh id and advances the counter
func (a *IDAllocator) Next() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	id := a.next
	a.next++
	return id
}

// Peek returns the id the next call to Next will return
func (a *IDAllocator) Peek() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.next
}

// AdvancePast moves the counter beyond every id in tasks. It never moves it back.
func (a *IDAllocator) AdvancePast(tasks []domain.Task) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if next := domain.NextID(tasks); next > a.next {
		a.next = next
	}
}
