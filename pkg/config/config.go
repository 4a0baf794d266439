// Package config provides configuration schema types for rufflink.
package config

// CurrentConfigVersion is the latest config schema version.
const CurrentConfigVersion = 1

// Config represents the root configuration for rufflink.
type Config struct {
	// Version is the config schema version. Defaults to 1 when omitted.
	Version int `json:"version,omitempty" koanf:"version" toml:"version,omitempty"`

	// Ruff configures the external ruff executable.
	Ruff *RuffConfig `json:"ruff,omitempty" koanf:"ruff" toml:"ruff,omitempty"`

	// Rules configures severity classification of rule codes.
	Rules *RulesConfig `json:"rules,omitempty" koanf:"rules" toml:"rules,omitempty"`

	// Check configures the check command.
	Check *CheckConfig `json:"check,omitempty" koanf:"check" toml:"check,omitempty"`
}

// GetRuff returns the ruff config, creating it if it doesn't exist.
func (c *Config) GetRuff() *RuffConfig {
	if c.Ruff == nil {
		c.Ruff = &RuffConfig{}
	}

	return c.Ruff
}

// GetRules returns the rules config, creating it if it doesn't exist.
func (c *Config) GetRules() *RulesConfig {
	if c.Rules == nil {
		c.Rules = &RulesConfig{}
	}

	return c.Rules
}

// GetCheck returns the check config, creating it if it doesn't exist.
func (c *Config) GetCheck() *CheckConfig {
	if c.Check == nil {
		c.Check = &CheckConfig{}
	}

	return c.Check
}
