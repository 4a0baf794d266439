// Package config provides internal configuration loading and processing.
package config

import (
	"time"

	"github.com/lintkit/rufflink/pkg/config"
)

// DefaultTimeout is the default bound on a single ruff invocation.
const DefaultTimeout = 10 * time.Second

// DefaultErrorCodes are rule codes classified as errors out of the box.
// E999 is ruff's syntax-error code.
var DefaultErrorCodes = []string{"E999"}

// DefaultUnusedCodes are rule codes classified as unused code out of the
// box: unused imports, redefinitions and unused locals.
var DefaultUnusedCodes = []string{"F401", "F811", "F841"}

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *config.Config {
	return &config.Config{
		Version: config.CurrentConfigVersion,
		Ruff: &config.RuffConfig{
			Executable: "ruff",
			Timeout:    config.Duration(DefaultTimeout),
		},
		Rules: &config.RulesConfig{
			ErrorCodes:  append([]string(nil), DefaultErrorCodes...),
			UnusedCodes: append([]string(nil), DefaultUnusedCodes...),
		},
		Check: &config.CheckConfig{
			Exclude: []string{},
		},
	}
}

// defaultsToMap converts DefaultConfig to a map for koanf loading.
func defaultsToMap() map[string]any {
	return map[string]any{
		"version":            config.CurrentConfigVersion,
		"ruff.executable":    "ruff",
		"ruff.timeout":       DefaultTimeout.String(),
		"rules.error_codes":  append([]string(nil), DefaultErrorCodes...),
		"rules.unused_codes": append([]string(nil), DefaultUnusedCodes...),
		"check.exclude":      []string{},
	}
}
