// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-notes-summarizer/internal/config"
	"github.com/MKhiriev/go-notes-summarizer/internal/logger"
	"github.com/MKhiriev/go-notes-summarizer/internal/metrics"
)

// NewQueue builds the queue backend selected by cfg.QueueBackend. The
// returned close function releases backend connections and is never nil.
func NewQueue(ctx context.Context, cfg config.Workers, log *logger.Logger) (Queue, func() error, error) {
	switch cfg.QueueBackend {
	case "", config.QueueBackendMemory:
		log.Info().Str("backend", config.QueueBackendMemory).Msg("using in-memory note queue")
		return NewMemoryQueue(), func() error { return nil }, nil

	case config.QueueBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("%w: %s: %w", ErrConnectingRedis, cfg.RedisAddr, err)
		}

		log.Info().
			Str("backend", config.QueueBackendRedis).
			Str("addr", cfg.RedisAddr).
			Str("key", cfg.RedisQueueKey).
			Msg("using redis note queue")
		return NewRedisQueue(client, cfg.RedisQueueKey), client.Close, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownQueueBackend, cfg.QueueBackend)
	}
}

// instrumentedQueue reports the queue depth after every change.
type instrumentedQueue struct {
	Queue
	metrics *metrics.NotesMetrics
}

// NewInstrumentedQueue wraps q so that its depth is exported through m.
func NewInstrumentedQueue(q Queue, m *metrics.NotesMetrics) Queue {
	if m == nil {
		return q
	}
	return &instrumentedQueue{Queue: q, metrics: m}
}

func (q *instrumentedQueue) Enqueue(ctx context.Context, noteID int64) error {
	if err := q.Queue.Enqueue(ctx, noteID); err != nil {
		return err
	}
	q.report(ctx)
	return nil
}

func (q *instrumentedQueue) Dequeue(ctx context.Context) (int64, error) {
	noteID, err := q.Queue.Dequeue(ctx)
	if err != nil {
		return 0, err
	}
	q.report(ctx)
	return noteID, nil
}

func (q *instrumentedQueue) report(ctx context.Context) {
	if n, err := q.Queue.Len(ctx); err == nil {
		q.metrics.SetQueueDepth(n)
	}
}
