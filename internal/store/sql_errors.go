// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

func sqliteError(err error) sqlite3.ErrNoExtended {
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode
	}

	return 0
}

// isUniqueViolation reports whether err is a unique constraint failure in
// either supported database.
func isUniqueViolation(err error) bool {
	return postgresError(err) == pgerrcode.UniqueViolation ||
		sqliteError(err) == sqlite3.ErrConstraintUnique
}

// isCheckViolation reports whether err is a CHECK constraint failure in
// either supported database.
func isCheckViolation(err error) bool {
	return postgresError(err) == pgerrcode.CheckViolation ||
		sqliteError(err) == sqlite3.ErrConstraintCheck
}

// isForeignKeyViolation reports whether err is a foreign key failure in
// either supported database.
func isForeignKeyViolation(err error) bool {
	return postgresError(err) == pgerrcode.ForeignKeyViolation ||
		sqliteError(err) == sqlite3.ErrConstraintForeignKey
}
