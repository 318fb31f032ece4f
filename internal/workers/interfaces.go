// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

//go:generate mockgen -source=interfaces.go -destination=../mock/queue_mock.go -package=mock

import "context"

// Worker is a long-running background task.
//
// Run blocks until ctx is cancelled or the worker stops on its own. A nil
// error after cancellation is a clean shutdown; any other return is treated as
// an unexpected exit by [Supervisor].
type Worker interface {
	Run(ctx context.Context) error
}

// Queue is a FIFO of note identifiers waiting to be summarized.
// Duplicates are allowed.
type Queue interface {
	// Enqueue appends noteID to the tail of the queue.
	Enqueue(ctx context.Context, noteID int64) error

	// Dequeue removes and returns the head of the queue, blocking while the
	// queue is empty. It returns ctx.Err() once ctx is cancelled.
	Dequeue(ctx context.Context) (int64, error)

	// Len returns the number of identifiers waiting.
	Len(ctx context.Context) (int64, error)
}

// Summarizer turns raw note text into a summary. Implementations never fail.
type Summarizer interface {
	Summarize(ctx context.Context, text string) string
}
