// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// Default values applied when neither the config file nor flags set them.
const (
	DefaultQuestionCount  = 5
	DefaultTimeoutSeconds = 30
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags or environment variables.
type Config struct {
	// Backend
	APIBaseURL string `json:"api_base_url,omitempty"` // Base URL of the prep backend
	APIToken   string `json:"api_token,omitempty"`    // Bearer token for authenticated calls

	// Behavior
	QuestionCount  int  `json:"question_count,omitempty"`  // Practice questions requested per batch
	TimeoutSeconds int  `json:"timeout_seconds,omitempty"` // Per-request HTTP timeout
	Verbose        bool `json:"verbose,omitempty"`         // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv fills unset fields from environment variables:
// PREP_API_URL and PREP_API_TOKEN.
func (c *Config) FromEnv() {
	if c.APIBaseURL == "" {
		c.APIBaseURL = os.Getenv("PREP_API_URL")
	}
	if c.APIToken == "" {
		c.APIToken = os.Getenv("PREP_API_TOKEN")
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.APIBaseURL != "" {
		parsed, err := url.Parse(c.APIBaseURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config error: 'api_base_url' must be an absolute URL, got %q", c.APIBaseURL)
		}
	}
	if c.QuestionCount < 0 {
		return fmt.Errorf("config error: 'question_count' must be non-negative")
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIBaseURL == "" {
		result.APIBaseURL = defaults.APIBaseURL
	}
	if result.APIToken == "" {
		result.APIToken = defaults.APIToken
	}

	if result.QuestionCount == 0 {
		if defaults.QuestionCount > 0 {
			result.QuestionCount = defaults.QuestionCount
		} else {
			result.QuestionCount = DefaultQuestionCount
		}
	}
	if result.TimeoutSeconds == 0 {
		if defaults.TimeoutSeconds > 0 {
			result.TimeoutSeconds = defaults.TimeoutSeconds
		} else {
			result.TimeoutSeconds = DefaultTimeoutSeconds
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
