// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // goose issues its own queries; none are expected

	err = Migrate(db, DialectPostgres)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, DialectSQLite)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	if err := Migrate(db, Dialect("mysql")); err == nil {
		t.Fatal("expected error for unknown dialect, got nil")
	}
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", "file::memory:?cache=shared&_foreign_keys=on")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if err := Migrate(db, DialectSQLite); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	// idempotent
	if err := Migrate(db, DialectSQLite); err != nil {
		t.Fatalf("expected second run to be a no-op, got: %v", err)
	}

	if _, err := db.Exec(`INSERT INTO users (email, password_hash, role) VALUES ('a@x.com', 'h', 'AGENT')`); err != nil {
		t.Fatalf("insert user: %v", err)
	}

	if _, err := db.Exec(`INSERT INTO users (email, password_hash, role) VALUES ('b@x.com', 'h', 'ROOT')`); err == nil {
		t.Error("expected role check to reject ROOT")
	}

	if _, err := db.Exec(`INSERT INTO notes (owner_id, raw_text, status) VALUES (1, 'x', 'done')`); err == nil {
		t.Error("expected done note without summary to be rejected")
	}

	if _, err := db.Exec(`INSERT INTO notes (owner_id, raw_text, status, summary) VALUES (1, 'x', 'done', 's')`); err != nil {
		t.Errorf("expected done note with summary to be accepted, got: %v", err)
	}

	if _, err := db.Exec(`INSERT INTO notes (owner_id, raw_text) VALUES (999, 'x')`); err == nil {
		t.Error("expected foreign key violation for unknown owner")
	}
}
