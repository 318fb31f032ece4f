// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
	"time"
)

// Queue backends accepted by [Workers.QueueBackend].
const (
	QueueBackendMemory = "memory"
	QueueBackendRedis  = "redis"
)

// DefaultAppVersion is the APP_VERSION used when none is configured.
const DefaultAppVersion = "dev"

const redactedValue = "***"

// SQLiteMemory is the SQLite path of a private in-memory database.
const SQLiteMemory = ":memory:"

// StructuredConfig is the top-level configuration container for the notes
// service. It aggregates all sub-configurations and is populated by merging
// values from environment variables (and a .env file), command-line flags, and
// an optional JSON file.
//
// Env names are unprefixed to stay compatible with existing deployments
// (DATABASE_URL, JWT_SECRET, USE_HF, ...).
type StructuredConfig struct {
	// App holds token parameters and the application version.
	App App

	// Storage holds the relational database settings.
	Storage Storage

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server

	// Summarizer holds the remote summarization model settings.
	Summarizer Summarizer

	// Workers holds queue and worker supervision settings.
	Workers Workers

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// lifecycle and versioning.
type App struct {
	// TokenSignKey is the secret used to sign and verify JWT tokens.
	// Env: JWT_SECRET
	TokenSignKey string `env:"JWT_SECRET" envDefault:"dev-secret"`

	// TokenAlgorithm is the HMAC signing algorithm (HS256, HS384 or HS512).
	// Env: JWT_ALGO
	TokenAlgorithm string `env:"JWT_ALGO" envDefault:"HS256"`

	// TokenExpiresMin is the token lifetime in minutes.
	// Env: JWT_EXPIRES_MIN
	TokenExpiresMin int `env:"JWT_EXPIRES_MIN" envDefault:"60"`

	// Version is reported by GET /.
	// Env: APP_VERSION
	Version string `env:"APP_VERSION" envDefault:"dev"`
}

// Redacted returns a copy of cfg with secrets masked, suitable for logging.
// The DSN password is masked the way [url.URL.Redacted] does it.
func (cfg StructuredConfig) Redacted() StructuredConfig {
	if cfg.App.TokenSignKey != "" {
		cfg.App.TokenSignKey = redactedValue
	}
	if cfg.Summarizer.APIToken != "" {
		cfg.Summarizer.APIToken = redactedValue
	}
	if cfg.Workers.RedisPassword != "" {
		cfg.Workers.RedisPassword = redactedValue
	}
	if u, err := url.Parse(cfg.Storage.DB.DSN); err == nil && u.User != nil {
		if _, ok := u.User.Password(); ok {
			cfg.Storage.DB.DSN = u.Redacted()
		}
	}
	return cfg
}

// TokenDuration converts TokenExpiresMin to a [time.Duration].
func (a App) TokenDuration() time.Duration {
	return time.Duration(a.TokenExpiresMin) * time.Minute
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver by its scheme:
	//   - postgres:// or postgresql:// selects PostgreSQL through pgx;
	//   - sqlite:///<path> or a bare file path selects SQLite (see [DB.SQLitePath]).
	// Env: DATABASE_URL
	DSN string `env:"DATABASE_URL" envDefault:"sqlite:///./app.db"`
}

// IsPostgres reports whether the DSN points at a PostgreSQL server.
func (d DB) IsPostgres() bool {
	return strings.HasPrefix(d.DSN, "postgres://") || strings.HasPrefix(d.DSN, "postgresql://")
}

// SQLitePath extracts the database file path from the DSN:
//   - "sqlite:///app.db" and "sqlite:///./app.db" are relative paths;
//   - "sqlite:////var/lib/app.db" is the absolute path "/var/lib/app.db";
//   - "sqlite://" and "sqlite:///:memory:" select an in-memory database;
//   - anything without the scheme is returned as is.
func (d DB) SQLitePath() string {
	path, ok := strings.CutPrefix(d.DSN, "sqlite://")
	if !ok {
		return d.DSN
	}
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return SQLiteMemory
	}
	return path
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"SERVER_ADDRESS" envDefault:"0.0.0.0:8000"`

	// GRPCAddress is the TCP address of the gRPC health service.
	// The service is disabled when empty.
	// Env: GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
}

// Summarizer holds the settings of the remote summarization model.
type Summarizer struct {
	// UseHF enables the remote model. The local heuristic is always used as
	// fallback.
	// Env: USE_HF
	UseHF bool `env:"USE_HF" envDefault:"false"`

	// Model names the model to call.
	// Env: HF_MODEL
	Model string `env:"HF_MODEL" envDefault:"sshleifer/tiny-distilbart-cnn-6-6"`

	// Endpoint is the base URL of the inference API.
	// Env: HF_ENDPOINT
	Endpoint string `env:"HF_ENDPOINT" envDefault:"https://api-inference.huggingface.co"`

	// APIToken is sent as a bearer token when non-empty.
	// Env: HF_API_TOKEN
	APIToken string `env:"HF_API_TOKEN"`

	// Timeout bounds a single model HTTP call.
	// Env: HF_TIMEOUT
	Timeout time.Duration `env:"HF_TIMEOUT" envDefault:"60s"`

	// CacheTTL is how long model summaries are memoized by input text.
	// Env: SUMMARY_CACHE_TTL
	CacheTTL time.Duration `env:"SUMMARY_CACHE_TTL" envDefault:"1h"`
}

// Workers holds the note queue and worker supervision settings.
type Workers struct {
	// QueueBackend is "memory" (default) or "redis".
	// Env: QUEUE_BACKEND
	QueueBackend string `env:"QUEUE_BACKEND" envDefault:"memory"`

	// RedisAddr is the host:port of the redis server for the redis backend.
	// Env: REDIS_ADDR
	RedisAddr string `env:"REDIS_ADDR"`

	// RedisPassword is optional.
	// Env: REDIS_PASSWORD
	RedisPassword string `env:"REDIS_PASSWORD"`

	// RedisQueueKey is the redis list holding queued note identifiers.
	// Env: REDIS_QUEUE_KEY
	RedisQueueKey string `env:"REDIS_QUEUE_KEY" envDefault:"notes:queue"`

	// RestartDelay is the pause before the supervisor restarts a worker that
	// exited unexpectedly.
	// Env: WORKER_RESTART_DELAY
	RestartDelay time.Duration `env:"WORKER_RESTART_DELAY" envDefault:"1s"`

	// RequeueOnStart re-enqueues notes left in "queued" status by a previous
	// process.
	// Env: WORKER_REQUEUE_ON_START
	RequeueOnStart bool `env:"WORKER_REQUEUE_ON_START" envDefault:"false"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. .env file and environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
