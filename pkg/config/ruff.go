package config

// RuffConfig configures the external ruff executable.
type RuffConfig struct {
	// Executable is the name or path of the ruff binary. Default: "ruff".
	Executable string `json:"executable,omitempty" koanf:"executable" toml:"executable,omitempty"`

	// Timeout bounds a single ruff invocation. Zero means no timeout,
	// matching the blocking model of an editor request.
	// Default: "10s" for the CLI.
	Timeout Duration `json:"timeout,omitempty" koanf:"timeout" toml:"timeout,omitempty"`

	// MinVersion is the minimum ruff version accepted by doctor checks
	// (semver, without the leading "v").
	MinVersion string `json:"min_version,omitempty" koanf:"min_version" toml:"min_version,omitempty"`
}

// GetExecutable returns the configured executable name or the default.
func (r *RuffConfig) GetExecutable() string {
	if r == nil || r.Executable == "" {
		return "ruff"
	}

	return r.Executable
}
