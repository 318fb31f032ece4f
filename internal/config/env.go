// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// dotEnvFile is loaded, when present, before environment variables are parsed.
// Variables already set in the process environment take precedence.
var dotEnvFile = ".env"

// loadDotEnv loads dotEnvFile into the process environment. A missing file is
// not an error.
func loadDotEnv() error {
	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading %s: %w", dotEnvFile, err)
	}

	return nil
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envDefault` tags
// defined on [StructuredConfig] and its nested types.
func parseEnv(cfg any) error {
	if err := loadDotEnv(); err != nil {
		return err
	}

	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
