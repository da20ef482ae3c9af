// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Catalog    CatalogConfig    `koanf:"catalog"`
	Recommend  RecommendConfig  `koanf:"recommend"`
	Session    SessionConfig    `koanf:"session"`
	Feedback   FeedbackConfig   `koanf:"feedback"`
	Security   SecurityConfig   `koanf:"security"`
	Logging    LoggingConfig    `koanf:"logging"`
	Supervisor SupervisorConfig `koanf:"supervisor"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// Addr returns host:port for net/http.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// CatalogConfig locates the song dataset.
type CatalogConfig struct {
	// Path is the CSV file loaded once at startup.
	Path string `koanf:"path"`
}

// RecommendConfig tunes the recommendation engine.
type RecommendConfig struct {
	DefaultK  int    `koanf:"default_k"`
	MaxK      int    `koanf:"max_k"`
	Measure   string `koanf:"measure"` // cosine or inverse_distance
	Precision int    `koanf:"precision"`
}

// SessionConfig sizes the in-memory session store.
type SessionConfig struct {
	Capacity      int           `koanf:"capacity"`
	TTL           time.Duration `koanf:"ttl"`
	SweepInterval time.Duration `koanf:"sweep_interval"`
}

// FeedbackConfig controls the feedback log.
type FeedbackConfig struct {
	Enabled bool `koanf:"enabled"`

	// Path is the BadgerDB directory. Ignored when InMemory is set.
	Path     string `koanf:"path"`
	InMemory bool   `koanf:"in_memory"`

	Buffer               int64         `koanf:"buffer"`
	RetryCount           int           `koanf:"retry_count"`
	RetryInitialInterval time.Duration `koanf:"retry_initial_interval"`
	RetryMaxInterval     time.Duration `koanf:"retry_max_interval"`
	CloseTimeout         time.Duration `koanf:"close_timeout"`

	BreakerFailureThreshold uint32        `koanf:"breaker_failure_threshold"`
	BreakerTimeout          time.Duration `koanf:"breaker_timeout"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`

	// MaxBodyBytes caps JSON request bodies.
	MaxBodyBytes int64 `koanf:"max_body_bytes"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	// Caller adds file:line to every event.
	Caller bool `koanf:"caller"`
}

// SupervisorConfig mirrors suture's restart policy knobs.
type SupervisorConfig struct {
	FailureThreshold float64       `koanf:"failure_threshold"`
	FailureDecay     float64       `koanf:"failure_decay"`
	FailureBackoff   time.Duration `koanf:"failure_backoff"`
	ShutdownTimeout  time.Duration `koanf:"shutdown_timeout"`
}
