package loop

import (
	"sync"
	"time"
)

// frameRequest is a one-shot callback waiting for the next frame
type frameRequest struct {
	id        uint64
	cb        func(now time.Time)
	cancelled bool
}

// frameQueue holds pending frame callbacks in request order
// Callbacks requested while a batch runs land in the next batch
type frameQueue struct {
	mu      sync.Mutex
	nextID  uint64
	pending []*frameRequest
	byID    map[uint64]*frameRequest
}

func newFrameQueue() frameQueue {
	return frameQueue{byID: make(map[uint64]*frameRequest)}
}

// request enqueues cb and returns its handle, handles start at 1
func (q *frameQueue) request(cb func(time.Time)) uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.nextID++
	req := &frameRequest{id: q.nextID, cb: cb}
	q.pending = append(q.pending, req)
	q.byID[req.id] = req
	return req.id
}

// cancel marks the request so it is skipped even if its batch already started
func (q *frameQueue) cancel(id uint64) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if req, ok := q.byID[id]; ok {
		req.cancelled = true
		delete(q.byID, id)
	}
}

// len returns the number of live pending requests
func (q *frameQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.byID)
}

// run drains the current batch, returns number of callbacks executed
func (q *frameQueue) run(now time.Time) int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()

	ran := 0
	for _, req := range batch {
		q.mu.Lock()
		skip := req.cancelled
		if !skip {
			delete(q.byID, req.id)
		}
		q.mu.Unlock()

		if skip {
			continue
		}
		req.cb(now)
		ran++
	}
	return ran
}
