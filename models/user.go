// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role is the authorization level of a [User].
type Role string

const (
	// RoleAdmin may read any note and access admin-only endpoints.
	RoleAdmin Role = "ADMIN"

	// RoleAgent may read only the notes it owns. This is the default role.
	RoleAgent Role = "AGENT"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleAgent
}

// String returns the wire representation of the role.
func (r Role) String() string {
	return string(r)
}

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique login identifier of the user.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// Role is the authorization level assigned at signup.
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin reports whether the user holds the [RoleAdmin] role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
