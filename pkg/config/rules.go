package config

// RulesConfig maps rule codes onto severity categories. The two sets must
// stay disjoint; any code in neither set classifies as a plain warning.
// Adding a new category member is a config change, never a code change.
type RulesConfig struct {
	// ErrorCodes are rule codes reported at error severity (e.g. "E999").
	ErrorCodes []string `json:"error_codes,omitempty" koanf:"error_codes" toml:"error_codes,omitempty"`

	// UnusedCodes are rule codes reported as unused/unnecessary code
	// (e.g. "F401", "F841").
	UnusedCodes []string `json:"unused_codes,omitempty" koanf:"unused_codes" toml:"unused_codes,omitempty"`
}
