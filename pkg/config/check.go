package config

import "runtime"

// CheckConfig configures the check command.
type CheckConfig struct {
	// Exclude are doublestar glob patterns for paths to skip.
	Exclude []string `json:"exclude,omitempty" koanf:"exclude" toml:"exclude,omitempty"`

	// MaxWorkers is the maximum number of files checked concurrently.
	// Default: runtime.NumCPU().
	MaxWorkers *int `json:"max_workers,omitempty" koanf:"max_workers" toml:"max_workers,omitempty"`
}

// GetMaxWorkers returns the configured worker bound or the default.
func (c *CheckConfig) GetMaxWorkers() int {
	if c == nil || c.MaxWorkers == nil || *c.MaxWorkers < 1 {
		return runtime.NumCPU()
	}

	return *c.MaxWorkers
}
