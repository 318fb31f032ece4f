// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisBlock = time.Second

// RedisQueue is a [Queue] backed by a redis list (RPUSH / BLPOP), so queued
// identifiers survive a process restart.
type RedisQueue struct {
	client *redis.Client
	key    string

	// block bounds a single BLPOP so cancellation is observed between polls.
	block time.Duration
}

// NewRedisQueue returns a queue stored under key.
func NewRedisQueue(client *redis.Client, key string) *RedisQueue {
	return &RedisQueue{
		client: client,
		key:    key,
		block:  defaultRedisBlock,
	}
}

// Enqueue implements [Queue].
func (q *RedisQueue) Enqueue(ctx context.Context, noteID int64) error {
	if err := q.client.RPush(ctx, q.key, noteID).Err(); err != nil {
		return fmt.Errorf("rpush %s: %w", q.key, err)
	}
	return nil
}

// Dequeue implements [Queue].
func (q *RedisQueue) Dequeue(ctx context.Context) (int64, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		res, err := q.client.BLPop(ctx, q.block, q.key).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return 0, ctxErr
			}
			return 0, fmt.Errorf("blpop %s: %w", q.key, err)
		}

		// BLPOP replies with [key, value].
		if len(res) != 2 {
			return 0, fmt.Errorf("%w: %v", ErrMalformedQueueItem, res)
		}
		noteID, err := strconv.ParseInt(res[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrMalformedQueueItem, res[1])
		}
		return noteID, nil
	}
}

// Len implements [Queue].
func (q *RedisQueue) Len(ctx context.Context) (int64, error) {
	n, err := q.client.LLen(ctx, q.key).Result()
	if err != nil {
		return 0, fmt.Errorf("llen %s: %w", q.key, err)
	}
	return n, nil
}
