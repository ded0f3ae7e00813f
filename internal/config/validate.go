package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Issue captures a validation problem in a config file.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("config validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Normalize trims string fields and fills defaults in place.
func Normalize(cfg *Config) {
	cfg.Endpoint = strings.TrimSpace(cfg.Endpoint)
	cfg.ItemID = strings.TrimSpace(cfg.ItemID)
	cfg.UI.Mode = strings.ToLower(strings.TrimSpace(cfg.UI.Mode))
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = "auto"
	}
	if cfg.TimeoutSeconds == 0 {
		cfg.TimeoutSeconds = defaultTimeoutSeconds
	}
}

// Validate checks field values after normalization.
func Validate(cfg *Config) error {
	collector := &issueCollector{}
	if cfg.Endpoint != "" {
		parsed, err := url.Parse(cfg.Endpoint)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			collector.add("endpoint", fmt.Sprintf("not an absolute URL: %q", cfg.Endpoint))
		}
	}
	if cfg.TimeoutSeconds < 0 {
		collector.add("timeout_seconds", "must not be negative")
	}
	switch cfg.UI.Mode {
	case "auto", "live", "plain":
	default:
		collector.add("ui.mode", fmt.Sprintf("unknown mode %q (expected auto|live|plain)", cfg.UI.Mode))
	}
	return collector.result()
}
