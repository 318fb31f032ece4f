// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges and validates the notes service settings.
//
// Sources, later ones overriding earlier non-zero fields:
//  1. .env file and environment variables (DATABASE_URL, JWT_SECRET, USE_HF, ...)
//  2. Command-line flags
//  3. JSON config file named by CONFIG or -c
//
// The main entry point is [GetStructuredConfig].
package config
