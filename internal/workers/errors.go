// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import "errors"

var (
	// ErrUnknownQueueBackend is returned by [NewQueue] for a backend name
	// other than memory or redis.
	ErrUnknownQueueBackend = errors.New("unknown queue backend")

	// ErrConnectingRedis is returned when the redis queue backend cannot be
	// reached at startup.
	ErrConnectingRedis = errors.New("error connecting to redis")

	// ErrMalformedQueueItem is returned by a queue whose head is not a note
	// identifier. The item is consumed.
	ErrMalformedQueueItem = errors.New("malformed queue item")

	// ErrDequeue wraps a queue failure that stops the note processor.
	ErrDequeue = errors.New("error dequeuing note")

	// ErrWorkerStopped is reported when a supervised worker returns without
	// an error before shutdown.
	ErrWorkerStopped = errors.New("worker stopped unexpectedly")

	// ErrWorkerPanicked is reported when a worker or a single note
	// processing step panics.
	ErrWorkerPanicked = errors.New("worker panicked")

	// ErrRequeue is returned when queued notes cannot be re-enqueued at
	// startup.
	ErrRequeue = errors.New("error requeueing queued notes")
)
