// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
)

// MemoryQueue is an unbounded in-process [Queue]. Its contents are lost when
// the process exits.
type MemoryQueue struct {
	mu    sync.Mutex
	items []int64

	// ready holds at most one wake-up token for blocked consumers.
	ready chan struct{}
}

// NewMemoryQueue returns an empty [MemoryQueue].
func NewMemoryQueue() *MemoryQueue {
	return &MemoryQueue{ready: make(chan struct{}, 1)}
}

// Enqueue implements [Queue]. It never blocks.
func (q *MemoryQueue) Enqueue(_ context.Context, noteID int64) error {
	q.mu.Lock()
	q.items = append(q.items, noteID)
	q.mu.Unlock()

	q.signal()
	return nil
}

// Dequeue implements [Queue].
func (q *MemoryQueue) Dequeue(ctx context.Context) (int64, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		q.mu.Lock()
		if len(q.items) > 0 {
			noteID := q.items[0]
			q.items = q.items[1:]
			remaining := len(q.items)
			q.mu.Unlock()

			if remaining > 0 {
				q.signal()
			}
			return noteID, nil
		}
		q.mu.Unlock()

		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-q.ready:
		}
	}
}

// Len implements [Queue].
func (q *MemoryQueue) Len(_ context.Context) (int64, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return int64(len(q.items)), nil
}

func (q *MemoryQueue) signal() {
	select {
	case q.ready <- struct{}{}:
	default:
	}
}
