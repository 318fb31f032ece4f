// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-summarizer/internal/logger"
	"github.com/MKhiriev/go-notes-summarizer/internal/metrics"
	"github.com/MKhiriev/go-notes-summarizer/internal/store"
	"github.com/MKhiriev/go-notes-summarizer/models"
)

// NoteProcessor drains the note queue one identifier at a time and drives
// each note through queued -> processing -> done | failed.
//
// Exactly one NoteProcessor may consume a queue; the state machine relies on
// that.
type NoteProcessor struct {
	queue      Queue
	notes      store.NoteRepository
	summarizer Summarizer
	metrics    *metrics.NotesMetrics
	logger     *logger.Logger
}

// NewNoteProcessor returns a processor reading from queue.
func NewNoteProcessor(
	queue Queue,
	notes store.NoteRepository,
	summarizer Summarizer,
	m *metrics.NotesMetrics,
	log *logger.Logger,
) *NoteProcessor {
	return &NoteProcessor{
		queue:      queue,
		notes:      notes,
		summarizer: summarizer,
		metrics:    m,
		logger:     log.Component("note-processor"),
	}
}

// Run implements [Worker]. It returns nil once ctx is cancelled. A note that
// was already dequeued is processed to completion with a context detached
// from ctx.
func (p *NoteProcessor) Run(ctx context.Context) error {
	p.logger.Info().Msg("note processor started")
	defer p.logger.Info().Msg("note processor stopped")

	for {
		noteID, err := p.queue.Dequeue(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, ErrMalformedQueueItem) {
				p.logger.Warn().Err(err).Msg("skipping queue item")
				continue
			}
			return fmt.Errorf("%w: %w", ErrDequeue, err)
		}

		p.ProcessNote(context.WithoutCancel(ctx), noteID)
	}
}

// ProcessNote runs a single note through the lifecycle and returns the status
// it ended in. An empty status means the note was skipped: it does not exist,
// could not be loaded, or is no longer queued.
//
// Errors and panics never escape; they end in [models.NoteStatusFailed].
func (p *NoteProcessor) ProcessNote(ctx context.Context, noteID int64) (status models.NoteStatus) {
	log := p.logger.With().Int64("note_id", noteID).Logger()

	var (
		note   models.Note
		loaded bool
	)
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%w: %v", ErrWorkerPanicked, r)
			if !loaded {
				log.Error().Err(err).Msg("note processing panicked before the note was loaded")
				status = ""
				return
			}
			status = p.fail(ctx, note, err)
		}
	}()

	note, err := p.notes.GetNoteByID(ctx, noteID)
	if errors.Is(err, store.ErrNoteNotFound) {
		log.Debug().Msg("note no longer exists, skipping")
		return ""
	}
	if err != nil {
		log.Warn().Err(err).Msg("failed to load note, skipping")
		return ""
	}
	loaded = true

	if !note.Status.CanTransitionTo(models.NoteStatusProcessing) {
		log.Debug().Str("status", note.Status.String()).Msg("note is not queued, skipping")
		return ""
	}

	claimed := note
	claimed.Status = models.NoteStatusProcessing
	claimed, err = p.notes.UpdateNote(ctx, claimed)
	if err != nil {
		return p.fail(ctx, note, fmt.Errorf("claiming note: %w", err))
	}
	note = claimed

	summary := p.summarizer.Summarize(ctx, note.RawText)

	done := note
	done.Status = models.NoteStatusDone
	done.Summary = &summary
	done.FailureReason = nil
	if _, err = p.notes.UpdateNote(ctx, done); err != nil {
		return p.fail(ctx, note, fmt.Errorf("saving summary: %w", err))
	}

	p.metrics.RecordNoteProcessed(models.NoteStatusDone.String())
	log.Info().Str("status", models.NoteStatusDone.String()).Msg("note processed")
	return models.NoteStatusDone
}

// fail marks note failed and persists it on a best-effort basis. The summary
// is left as it was loaded.
func (p *NoteProcessor) fail(ctx context.Context, note models.Note, cause error) models.NoteStatus {
	reason := cause.Error()
	note.Status = models.NoteStatusFailed
	note.FailureReason = &reason

	log := p.logger.With().Int64("note_id", note.ID).Logger()
	if _, err := p.notes.UpdateNote(ctx, note); err != nil {
		log.Error().Err(err).Msg("failed to persist failed status")
	}

	p.metrics.RecordNoteProcessed(models.NoteStatusFailed.String())
	log.Warn().Err(cause).Str("status", models.NoteStatusFailed.String()).Msg("note processing failed")
	return models.NoteStatusFailed
}
