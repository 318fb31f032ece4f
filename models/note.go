// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// NoteStatus is a step of the note processing lifecycle.
//
// Legal transitions:
//
//	queued -> processing -> done
//	                     -> failed
//
// done and failed are terminal.
type NoteStatus string

const (
	NoteStatusQueued     NoteStatus = "queued"
	NoteStatusProcessing NoteStatus = "processing"
	NoteStatusDone       NoteStatus = "done"
	NoteStatusFailed     NoteStatus = "failed"
)

// IsTerminal reports whether no further transitions are allowed from s.
func (s NoteStatus) IsTerminal() bool {
	return s == NoteStatusDone || s == NoteStatusFailed
}

// CanTransitionTo reports whether moving from s to next is a legal step of
// the processing lifecycle.
func (s NoteStatus) CanTransitionTo(next NoteStatus) bool {
	switch s {
	case NoteStatusQueued:
		return next == NoteStatusProcessing
	case NoteStatusProcessing:
		return next == NoteStatusDone || next == NoteStatusFailed
	default:
		return false
	}
}

// String returns the wire representation of the status.
func (s NoteStatus) String() string {
	return string(s)
}

// Note is a unit of user-submitted text tracked through the processing
// lifecycle to produce a summary.
type Note struct {
	// ID is the unique identifier of the note.
	ID int64 `json:"id"`

	// OwnerID references the [User] that submitted the note.
	OwnerID int64 `json:"owner_id"`

	// RawText is the text exactly as submitted.
	RawText string `json:"raw_text"`

	// Summary is nil until processing succeeds.
	Summary *string `json:"summary"`

	// Status is the current lifecycle step.
	Status NoteStatus `json:"status"`

	// FailureReason describes why processing failed. It is kept for
	// diagnostics and never returned by the API.
	FailureReason *string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

