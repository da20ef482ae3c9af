// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/moodwave/config.yaml",
	"/etc/moodwave/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Catalog: CatalogConfig{
			Path: "data/songs.csv",
		},
		Recommend: RecommendConfig{
			DefaultK:  5,
			MaxK:      50,
			Measure:   "cosine",
			Precision: 3,
		},
		Session: SessionConfig{
			Capacity:      10000,
			TTL:           2 * time.Hour,
			SweepInterval: 5 * time.Minute,
		},
		Feedback: FeedbackConfig{
			Enabled:                 true,
			Path:                    "/data/feedback",
			InMemory:                false,
			Buffer:                  256,
			RetryCount:              3,
			RetryInitialInterval:    200 * time.Millisecond,
			RetryMaxInterval:        5 * time.Second,
			CloseTimeout:            10 * time.Second,
			BreakerFailureThreshold: 5,
			BreakerTimeout:          15 * time.Second,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			MaxBodyBytes:      64 << 10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Supervisor: SupervisorConfig{
			FailureThreshold: 5.0,
			FailureDecay:     30.0,
			FailureBackoff:   15 * time.Second,
			ShutdownTimeout:  10 * time.Second,
		},
	}
}

// LoadWithKoanf loads configuration in layers:
//  1. struct defaults
//  2. YAML config file (CONFIG_PATH or DefaultConfigPaths), when present
//  3. environment variables, through envTransformFunc
//
// The result is validated before it is returned.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := FindConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// FindConfigFile returns the config file LoadWithKoanf would read, or "".
func FindConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths lists keys that accept comma-separated env values.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields splits comma-separated strings into slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to koanf paths.
var envMappings = map[string]string{
	"http_host":          "server.host",
	"http_port":          "server.port",
	"http_read_timeout":  "server.read_timeout",
	"http_write_timeout": "server.write_timeout",
	"http_idle_timeout":  "server.idle_timeout",

	"catalog_path": "catalog.path",

	"recommend_default_k": "recommend.default_k",
	"recommend_max_k":     "recommend.max_k",
	"recommend_measure":   "recommend.measure",
	"recommend_precision": "recommend.precision",

	"session_capacity":       "session.capacity",
	"session_ttl":            "session.ttl",
	"session_sweep_interval": "session.sweep_interval",

	"feedback_enabled":           "feedback.enabled",
	"feedback_path":              "feedback.path",
	"feedback_in_memory":         "feedback.in_memory",
	"feedback_buffer":            "feedback.buffer",
	"feedback_retry_count":       "feedback.retry_count",
	"feedback_retry_interval":    "feedback.retry_initial_interval",
	"feedback_retry_max":         "feedback.retry_max_interval",
	"feedback_close_timeout":     "feedback.close_timeout",
	"feedback_breaker_threshold": "feedback.breaker_failure_threshold",
	"feedback_breaker_timeout":   "feedback.breaker_timeout",

	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"max_body_bytes":      "security.max_body_bytes",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	"supervisor_failure_threshold": "supervisor.failure_threshold",
	"supervisor_failure_decay":     "supervisor.failure_decay",
	"supervisor_failure_backoff":   "supervisor.failure_backoff",
	"supervisor_shutdown_timeout":  "supervisor.shutdown_timeout",
}

// envTransformFunc maps environment variable names to config paths.
// Unmapped variables return "" and are skipped so that unrelated
// environment does not leak into the config.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

// WatchConfigFile calls callback whenever the file at path changes.
// The caller must synchronise access to any config it reloads.
func WatchConfigFile(path string, callback func()) error {
	return file.Provider(path).Watch(func(_ interface{}, err error) {
		if err != nil {
			return
		}
		callback()
	})
}
