// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-summarizer/internal/logger"
	"github.com/MKhiriev/go-notes-summarizer/internal/store"
	"github.com/MKhiriev/go-notes-summarizer/models"
)

// RequeueQueued enqueues every note still in queued status, ordered by id,
// and returns how many were enqueued. It is meant to run once at startup,
// before the processor starts.
func RequeueQueued(ctx context.Context, notes store.NoteRepository, queue Queue, log *logger.Logger) (int, error) {
	ids, err := notes.ListNoteIDsByStatus(ctx, models.NoteStatusQueued)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRequeue, err)
	}

	for i, id := range ids {
		if err = queue.Enqueue(ctx, id); err != nil {
			return i, fmt.Errorf("%w: note %d: %w", ErrRequeue, id, err)
		}
	}

	log.Info().Int("count", len(ids)).Msg("requeued pending notes")
	return len(ids), nil
}
