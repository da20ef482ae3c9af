// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tomtom215/moodwave/internal/logging"
	"github.com/tomtom215/moodwave/internal/recommend"
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	if err := c.validateSession(); err != nil {
		return err
	}
	if err := c.validateFeedback(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	if err := c.validateSupervisor(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("HTTP_READ_TIMEOUT and HTTP_WRITE_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if strings.TrimSpace(c.Catalog.Path) == "" {
		return fmt.Errorf("CATALOG_PATH is required")
	}
	return nil
}

// validateRecommend reuses the engine's own checks so the two never drift.
func (c *Config) validateRecommend() error {
	if err := c.RecommendEngineConfig().Validate(); err != nil {
		return fmt.Errorf("recommend: %w", err)
	}
	return nil
}

// RecommendEngineConfig converts the recommend section for the engine.
func (c *Config) RecommendEngineConfig() *recommend.Config {
	cfg := recommend.DefaultConfig()
	cfg.DefaultK = c.Recommend.DefaultK
	cfg.MaxK = c.Recommend.MaxK
	cfg.Measure = c.Recommend.Measure
	cfg.Precision = c.Recommend.Precision
	return cfg
}

func (c *Config) validateSession() error {
	if c.Session.Capacity < 1 {
		return fmt.Errorf("SESSION_CAPACITY must be at least 1")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.Session.SweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive")
	}
	return nil
}

func (c *Config) validateFeedback() error {
	if !c.Feedback.Enabled {
		return nil
	}
	if !c.Feedback.InMemory && strings.TrimSpace(c.Feedback.Path) == "" {
		return fmt.Errorf("FEEDBACK_PATH is required unless FEEDBACK_IN_MEMORY=true")
	}
	if c.Feedback.RetryCount < 0 {
		return fmt.Errorf("FEEDBACK_RETRY_COUNT must be non-negative")
	}
	if c.Feedback.Buffer < 0 {
		return fmt.Errorf("FEEDBACK_BUFFER must be non-negative")
	}
	if c.Feedback.BreakerFailureThreshold < 1 {
		return fmt.Errorf("FEEDBACK_BREAKER_THRESHOLD must be at least 1")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1")
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

// ShouldWarnAboutCORS reports whether any origin is allowed.
func (c *Config) ShouldWarnAboutCORS() bool {
	return slices.Contains(c.Security.CORSOrigins, "*")
}

func (c *Config) validateSupervisor() error {
	if c.Supervisor.FailureThreshold < 0 || c.Supervisor.FailureDecay < 0 {
		return fmt.Errorf("supervisor failure settings must be non-negative")
	}
	return nil
}

var validLogFormats = map[string]bool{"json": true, "console": true}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL %q is not a known level (trace, debug, info, warn, error)", c.Logging.Level)
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
