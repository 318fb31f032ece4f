// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid. The underlying field errors
// are joined to these sentinels.
var (
	// ErrInvalidAppConfigs indicates invalid token settings
	// (for example, an empty secret or an unsupported algorithm).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a missing HTTP address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidSummarizerConfigs indicates invalid remote model settings
	// (for example, USE_HF enabled without a model name).
	ErrInvalidSummarizerConfigs = errors.New("invalid summarizer configuration")
	// ErrInvalidWorkerConfigs indicates invalid queue settings
	// (for example, the redis backend without a redis address).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
