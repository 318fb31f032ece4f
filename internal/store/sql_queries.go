// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-notes-summarizer/models"
)

const (
	usersTable = "users"
	notesTable = "notes"
)

var (
	userColumns = []string{"user_id", "email", "password_hash", "role", "created_at"}
	noteColumns = []string{"note_id", "owner_id", "raw_text", "summary", "status", "failure_reason", "created_at", "updated_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User, now time.Time) (string, []any, error) {
	query, args, err := b.
		Insert(usersTable).
		Columns("email", "password_hash", "role", "created_at").
		Values(user.Email, user.PasswordHash, user.Role, now).
		Suffix(returning(userColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildFindUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	query, args, err := b.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildCreateNoteQuery(b sq.StatementBuilderType, note models.Note, now time.Time) (string, []any, error) {
	query, args, err := b.
		Insert(notesTable).
		Columns("owner_id", "raw_text", "summary", "status", "failure_reason", "created_at", "updated_at").
		Values(note.OwnerID, note.RawText, note.Summary, note.Status, note.FailureReason, now, now).
		Suffix(returning(noteColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildGetNoteByIDQuery(b sq.StatementBuilderType, noteID int64) (string, []any, error) {
	query, args, err := b.
		Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"note_id": noteID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildUpdateNoteQuery(b sq.StatementBuilderType, note models.Note, now time.Time) (string, []any, error) {
	query, args, err := b.
		Update(notesTable).
		Set("status", note.Status).
		Set("summary", note.Summary).
		Set("failure_reason", note.FailureReason).
		Set("updated_at", now).
		Where(sq.Eq{"note_id": note.ID}).
		Suffix(returning(noteColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildListNoteIDsByStatusQuery(b sq.StatementBuilderType, status models.NoteStatus) (string, []any, error) {
	query, args, err := b.
		Select("note_id").
		From(notesTable).
		Where(sq.Eq{"status": status}).
		OrderBy("note_id ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
