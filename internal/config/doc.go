// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

/*
Package config loads Moodwave configuration with koanf.

# Configuration Sources

Values are layered, later sources overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. A YAML file: $CONFIG_PATH, else config.yaml / config.yml in the working
    directory, else /etc/moodwave/config.yaml
 3. Environment variables

Only the environment variables listed below are read; anything else in the
environment is ignored.

# Environment Variables

HTTP server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8080)
  - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT

Catalog and engine:
  - CATALOG_PATH: Song CSV (default: data/songs.csv)
  - RECOMMEND_DEFAULT_K: Songs returned when k is omitted (default: 5)
  - RECOMMEND_MAX_K: Upper bound for k (default: 50)
  - RECOMMEND_MEASURE: cosine or inverse_distance (default: cosine)
  - RECOMMEND_PRECISION: Decimal places in similarity (default: 3)

Sessions:
  - SESSION_CAPACITY (default: 10000)
  - SESSION_TTL (default: 2h)
  - SESSION_SWEEP_INTERVAL (default: 5m)

Feedback log:
  - FEEDBACK_ENABLED (default: true)
  - FEEDBACK_PATH: BadgerDB directory (default: /data/feedback)
  - FEEDBACK_IN_MEMORY: Keep the log in memory only
  - FEEDBACK_BUFFER, FEEDBACK_RETRY_COUNT, FEEDBACK_RETRY_INTERVAL,
    FEEDBACK_RETRY_MAX, FEEDBACK_CLOSE_TIMEOUT
  - FEEDBACK_BREAKER_THRESHOLD, FEEDBACK_BREAKER_TIMEOUT

Security:
  - CORS_ORIGINS: Comma-separated origins (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
  - MAX_BODY_BYTES (default: 64KiB)

Logging:
  - LOG_LEVEL (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER

Supervisor:
  - SUPERVISOR_FAILURE_THRESHOLD, SUPERVISOR_FAILURE_DECAY,
    SUPERVISOR_FAILURE_BACKOFF, SUPERVISOR_SHUTDOWN_TIMEOUT

Durations use Go syntax (30s, 5m, 2h).
*/
package config
