// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisQueue(t *testing.T) (*RedisQueue, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	q := NewRedisQueue(client, "test:notes")
	q.block = 50 * time.Millisecond
	return q, srv
}

func TestRedisQueue_FIFO(t *testing.T) {
	q, srv := newTestRedisQueue(t)
	ctx := context.Background()

	for _, id := range []int64{7, 8, 9} {
		require.NoError(t, q.Enqueue(ctx, id))
	}

	stored, err := srv.List("test:notes")
	require.NoError(t, err)
	assert.Equal(t, []string{"7", "8", "9"}, stored)

	n, err := q.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	for _, want := range []int64{7, 8, 9} {
		id, err := q.Dequeue(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, id)
	}
}

func TestRedisQueue_SurvivesClientRestart(t *testing.T) {
	q, srv := newTestRedisQueue(t)
	ctx := context.Background()

	require.NoError(t, q.Enqueue(ctx, 11))
	require.NoError(t, q.client.Close())

	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	reopened := NewRedisQueue(client, "test:notes")

	id, err := reopened.Dequeue(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
}

func TestRedisQueue_DequeueWaitsForItem(t *testing.T) {
	q, _ := newTestRedisQueue(t)
	ctx := context.Background()

	go func() {
		time.Sleep(120 * time.Millisecond)
		_ = q.Enqueue(ctx, 5)
	}()

	id, err := q.Dequeue(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
}

func TestRedisQueue_DequeueCancelled(t *testing.T) {
	q, _ := newTestRedisQueue(t)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := q.Dequeue(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRedisQueue_MalformedItem(t *testing.T) {
	q, srv := newTestRedisQueue(t)

	_, err := srv.Push("test:notes", "not-a-number")
	require.NoError(t, err)

	_, err = q.Dequeue(context.Background())
	assert.ErrorIs(t, err, ErrMalformedQueueItem)

	n, err := q.Len(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRedisQueue_ServerDown(t *testing.T) {
	q, srv := newTestRedisQueue(t)
	srv.Close()

	err := q.Enqueue(context.Background(), 1)
	assert.Error(t, err)

	_, err = q.Len(context.Background())
	assert.Error(t, err)
}
