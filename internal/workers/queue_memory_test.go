// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryQueue_FIFO(t *testing.T) {
	q := NewMemoryQueue()
	ctx := context.Background()

	for _, id := range []int64{3, 1, 2, 1} {
		require.NoError(t, q.Enqueue(ctx, id))
	}

	n, err := q.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)

	var got []int64
	for range 4 {
		id, err := q.Dequeue(ctx)
		require.NoError(t, err)
		got = append(got, id)
	}
	assert.Equal(t, []int64{3, 1, 2, 1}, got)

	n, err = q.Len(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMemoryQueue_DequeueBlocksUntilEnqueue(t *testing.T) {
	q := NewMemoryQueue()
	ctx := context.Background()

	got := make(chan int64, 1)
	go func() {
		id, err := q.Dequeue(ctx)
		assert.NoError(t, err)
		got <- id
	}()

	select {
	case <-got:
		t.Fatal("dequeue returned from an empty queue")
	case <-time.After(50 * time.Millisecond):
	}

	require.NoError(t, q.Enqueue(ctx, 42))

	select {
	case id := <-got:
		assert.Equal(t, int64(42), id)
	case <-time.After(time.Second):
		t.Fatal("dequeue did not wake up after enqueue")
	}
}

func TestMemoryQueue_DequeueCancelled(t *testing.T) {
	q := NewMemoryQueue()
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() {
		_, err := q.Dequeue(ctx)
		errCh <- err
	}()

	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("dequeue did not observe cancellation")
	}
}

func TestMemoryQueue_DequeueAlreadyCancelled(t *testing.T) {
	q := NewMemoryQueue()
	require.NoError(t, q.Enqueue(context.Background(), 1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := q.Dequeue(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	// the item stays queued
	n, _ := q.Len(context.Background())
	assert.Equal(t, int64(1), n)
}

func TestMemoryQueue_ConcurrentProducers(t *testing.T) {
	q := NewMemoryQueue()
	ctx := context.Background()

	const producers, perProducer = 8, 50

	var wg sync.WaitGroup
	for p := range producers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perProducer {
				_ = q.Enqueue(ctx, int64(p*perProducer+i))
			}
		}()
	}

	seen := make(map[int64]bool)
	for range producers * perProducer {
		id, err := q.Dequeue(ctx)
		require.NoError(t, err)
		seen[id] = true
	}
	wg.Wait()

	assert.Len(t, seen, producers*perProducer)
}
