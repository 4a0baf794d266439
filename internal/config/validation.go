package config

import (
	"github.com/cockroachdb/errors"

	"github.com/lintkit/rufflink/internal/lsp"
	"github.com/lintkit/rufflink/pkg/config"
)

var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnsupportedVersion is returned for unknown config schema versions.
	ErrUnsupportedVersion = errors.New("unsupported config version")
)

// Validator validates configuration semantics.
type Validator struct{}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate validates the entire configuration.
func (v *Validator) Validate(cfg *config.Config) error {
	if cfg == nil {
		return errors.WithMessage(ErrInvalidConfig, "config is nil")
	}

	if cfg.Version != 0 && cfg.Version != config.CurrentConfigVersion {
		return errors.Wrapf(ErrUnsupportedVersion, "got %d, want %d",
			cfg.Version, config.CurrentConfigVersion)
	}

	if cfg.Rules != nil {
		// The classifier owns the disjointness rule; building one surfaces
		// overlaps at load time instead of first use.
		if _, err := lsp.NewClassifier(cfg.Rules.ErrorCodes, cfg.Rules.UnusedCodes); err != nil {
			return errors.WithMessage(ErrInvalidConfig, err.Error())
		}
	}

	return nil
}
