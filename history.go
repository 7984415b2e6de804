package playwait

import (
	"sync"
	"time"
)

// Record describes one settled wait.
type Record struct {
	// Label is the description of the awaited condition.
	Label string

	// Outcome is how the wait settled.
	Outcome Outcome

	// Elapsed is the time from wait start to settlement.
	Elapsed time.Duration

	// Err is the error returned to the caller, if any.
	Err error
}

// waitRing is a thread-safe ring buffer of recent wait records.
type waitRing struct {
	mu      sync.RWMutex
	records []Record
	size    int
	head    int
	count   int
}

// newWaitRing creates a ring buffer with the given capacity.
// If size is 0, the ring buffer is disabled.
func newWaitRing(size int) *waitRing {
	if size <= 0 {
		return nil
	}
	return &waitRing{
		records: make([]Record, size),
		size:    size,
	}
}

// push adds a record to the ring buffer.
func (r *waitRing) push(rec Record) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[r.head] = rec
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// clear removes all records from the ring buffer.
func (r *waitRing) clear() {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		r.records[i] = Record{}
	}
	r.head = 0
	r.count = 0
}

// all returns all records in the ring buffer, oldest first.
func (r *waitRing) all() []Record {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.count == 0 {
		return nil
	}

	result := make([]Record, r.count)
	start := (r.head - r.count + r.size) % r.size
	for i := 0; i < r.count; i++ {
		result[i] = r.records[(start+i)%r.size]
	}
	return result
}
