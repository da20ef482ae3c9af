// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Addr() != "0.0.0.0:8080" {
		t.Errorf("Server.Addr() = %q, want 0.0.0.0:8080", cfg.Server.Addr())
	}
	if cfg.Catalog.Path != "data/songs.csv" {
		t.Errorf("Catalog.Path = %q, want data/songs.csv", cfg.Catalog.Path)
	}
	if cfg.Recommend.DefaultK != 5 || cfg.Recommend.MaxK != 50 {
		t.Errorf("Recommend K = %d/%d, want 5/50", cfg.Recommend.DefaultK, cfg.Recommend.MaxK)
	}
	if cfg.Recommend.Measure != "cosine" {
		t.Errorf("Recommend.Measure = %q, want cosine", cfg.Recommend.Measure)
	}
	if cfg.Session.TTL != 2*time.Hour {
		t.Errorf("Session.TTL = %v, want 2h", cfg.Session.TTL)
	}
	if !cfg.Feedback.Enabled || cfg.Feedback.InMemory {
		t.Errorf("Feedback enabled/in_memory = %v/%v, want true/false", cfg.Feedback.Enabled, cfg.Feedback.InMemory)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want info/json", cfg.Logging)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env  string
		want string
	}{
		{"HTTP_PORT", "server.port"},
		{"http_port", "server.port"},
		{"CATALOG_PATH", "catalog.path"},
		{"RECOMMEND_MEASURE", "recommend.measure"},
		{"FEEDBACK_IN_MEMORY", "feedback.in_memory"},
		{"FEEDBACK_BREAKER_THRESHOLD", "feedback.breaker_failure_threshold"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"LOG_LEVEL", "logging.level"},
		{"SUPERVISOR_SHUTDOWN_TIMEOUT", "supervisor.shutdown_timeout"},
		{"PATH", ""},
		{"HOME", ""},
	}
	for _, tt := range tests {
		if got := envTransformFunc(tt.env); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}

// isolate points config discovery at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(ConfigPathEnvVar, filepath.Join(dir, "absent.yaml"))
	for env := range envMappings {
		t.Setenv(strings.ToUpper(env), "")
		os.Unsetenv(strings.ToUpper(env))
	}
	return dir
}

func TestLoadWithKoanfEnvVars(t *testing.T) {
	isolate(t)

	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RECOMMEND_MEASURE", "inverse_distance")
	t.Setenv("SESSION_TTL", "45m")
	t.Setenv("FEEDBACK_IN_MEMORY", "true")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Recommend.Measure != "inverse_distance" {
		t.Errorf("Recommend.Measure = %q, want inverse_distance", cfg.Recommend.Measure)
	}
	if cfg.Session.TTL != 45*time.Minute {
		t.Errorf("Session.TTL = %v, want 45m", cfg.Session.TTL)
	}
	if !cfg.Feedback.InMemory {
		t.Error("Feedback.InMemory = false, want true")
	}
	wantOrigins := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, wantOrigins) {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, wantOrigins)
	}

	// Untouched values keep their defaults.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
	if cfg.Recommend.DefaultK != 5 {
		t.Errorf("Recommend.DefaultK = %d, want 5 (default)", cfg.Recommend.DefaultK)
	}
}

func TestLoadWithKoanfConfigFile(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 7000
catalog:
  path: /srv/songs.csv
recommend:
  default_k: 3
  max_k: 10
feedback:
  enabled: false
logging:
  format: console
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	if got := FindConfigFile(); got != path {
		t.Fatalf("FindConfigFile() = %q, want %q", got, path)
	}

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("Server.Port = %d, want 7000", cfg.Server.Port)
	}
	if cfg.Catalog.Path != "/srv/songs.csv" {
		t.Errorf("Catalog.Path = %q", cfg.Catalog.Path)
	}
	if cfg.Recommend.DefaultK != 3 || cfg.Recommend.MaxK != 10 {
		t.Errorf("Recommend K = %d/%d, want 3/10", cfg.Recommend.DefaultK, cfg.Recommend.MaxK)
	}
	if cfg.Feedback.Enabled {
		t.Error("Feedback.Enabled = true, want false")
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want console", cfg.Logging.Format)
	}
}

func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 7000\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "7100")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 7100 {
		t.Errorf("Server.Port = %d, want 7100 (env beats file)", cfg.Server.Port)
	}
}

func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"bad port", map[string]string{"HTTP_PORT": "70000"}, "HTTP_PORT"},
		{"bad measure", map[string]string{"RECOMMEND_MEASURE": "euclid"}, "measure"},
		{"max below default", map[string]string{"RECOMMEND_MAX_K": "2"}, "max_k"},
		{"bad level", map[string]string{"LOG_LEVEL": "loud"}, "LOG_LEVEL"},
		{"bad format", map[string]string{"LOG_FORMAT": "xml"}, "LOG_FORMAT"},
		{"empty catalog", map[string]string{"CATALOG_PATH": " "}, "CATALOG_PATH"},
		{"zero capacity", map[string]string{"SESSION_CAPACITY": "0"}, "SESSION_CAPACITY"},
		{"feedback without path", map[string]string{"FEEDBACK_PATH": " "}, "FEEDBACK_PATH"},
		{"zero rate limit", map[string]string{"RATE_LIMIT_REQUESTS": "0"}, "RATE_LIMIT_REQUESTS"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadWithKoanf()
			if err == nil {
				t.Fatal("LoadWithKoanf() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_SkipsDisabledSections(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.Feedback.Enabled = false
	cfg.Feedback.Path = ""
	cfg.Security.RateLimitDisabled = true
	cfg.Security.RateLimitReqs = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestRecommendEngineConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.Recommend.DefaultK = 7
	cfg.Recommend.Measure = "inverse_distance"
	got := cfg.RecommendEngineConfig()
	if got.DefaultK != 7 || got.Measure != "inverse_distance" || got.MaxK != 50 {
		t.Errorf("RecommendEngineConfig() = %+v", got)
	}
	if got.Epsilon <= 0 {
		t.Errorf("Epsilon = %g, want the engine default", got.Epsilon)
	}
}

func TestShouldWarnAboutCORS(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	if !cfg.ShouldWarnAboutCORS() {
		t.Error("wildcard origin should warn")
	}
	cfg.Security.CORSOrigins = []string{"https://moodwave.example"}
	if cfg.ShouldWarnAboutCORS() {
		t.Error("explicit origin should not warn")
	}
}
