package doctor

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/cockroachdb/errors"

	execpkg "github.com/lintkit/rufflink/internal/exec"
	"github.com/lintkit/rufflink/pkg/config"
)

// BinaryCheck verifies the configured linter executable is resolvable.
type BinaryCheck struct {
	checker    execpkg.ToolChecker
	executable string
}

// NewBinaryCheck creates a BinaryCheck for the given executable.
func NewBinaryCheck(checker execpkg.ToolChecker, executable string) *BinaryCheck {
	return &BinaryCheck{checker: checker, executable: executable}
}

// Name returns the check name.
func (*BinaryCheck) Name() string {
	return "ruff binary"
}

// Check resolves the executable in PATH.
func (c *BinaryCheck) Check(_ context.Context) CheckResult {
	path, err := c.checker.Resolve(c.executable)
	if err != nil {
		return Fail(c.Name(), fmt.Sprintf("%q not found in PATH", c.executable)).
			WithDetails("install ruff or set ruff.executable in rufflink.toml")
	}

	return Pass(c.Name(), path)
}

// VersionCheck verifies the linter version satisfies the configured minimum.
type VersionCheck struct {
	runner     execpkg.CommandRunner
	executable string
	minVersion string
}

// NewVersionCheck creates a VersionCheck.
func NewVersionCheck(runner execpkg.CommandRunner, executable, minVersion string) *VersionCheck {
	return &VersionCheck{runner: runner, executable: executable, minVersion: minVersion}
}

// Name returns the check name.
func (*VersionCheck) Name() string {
	return "ruff version"
}

// Check runs "ruff --version" and compares against the configured minimum.
func (c *VersionCheck) Check(ctx context.Context) CheckResult {
	result, err := c.runner.Run(ctx, c.executable, "--version")
	if err != nil {
		return Fail(c.Name(), "could not run "+c.executable).WithDetails(err.Error())
	}

	if result.ExitCode != 0 {
		return Fail(c.Name(), fmt.Sprintf("%s --version exited with %d", c.executable, result.ExitCode)).
			WithDetails(strings.TrimSpace(result.Stderr))
	}

	version, err := parseVersion(result.Stdout)
	if err != nil {
		return Fail(c.Name(), "could not parse version output").
			WithDetails(strings.TrimSpace(result.Stdout))
	}

	if c.minVersion == "" {
		return Pass(c.Name(), version.String())
	}

	minimum, err := semver.NewVersion(c.minVersion)
	if err != nil {
		return Fail(c.Name(), fmt.Sprintf("invalid ruff.min_version %q", c.minVersion)).
			WithDetails(err.Error())
	}

	if version.LessThan(minimum) {
		return Fail(c.Name(), fmt.Sprintf("%s is older than required %s", version, minimum))
	}

	return Pass(c.Name(), fmt.Sprintf("%s (>= %s)", version, minimum))
}

// parseVersion extracts a semver from output like "ruff 0.6.8".
func parseVersion(output string) (*semver.Version, error) {
	fields := strings.Fields(output)
	if len(fields) == 0 {
		return nil, errors.New("empty version output")
	}

	candidate := fields[len(fields)-1]

	version, err := semver.NewVersion(candidate)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %q", candidate)
	}

	return version, nil
}

// ConfigCheck verifies the layered configuration loads and validates.
type ConfigCheck struct {
	load func() (*config.Config, error)
}

// NewConfigCheck creates a ConfigCheck around the given loader.
func NewConfigCheck(load func() (*config.Config, error)) *ConfigCheck {
	return &ConfigCheck{load: load}
}

// Name returns the check name.
func (*ConfigCheck) Name() string {
	return "configuration"
}

// Check loads the configuration and reports the effective rule sets.
func (c *ConfigCheck) Check(_ context.Context) CheckResult {
	cfg, err := c.load()
	if err != nil {
		return Fail(c.Name(), "configuration failed to load").WithDetails(err.Error())
	}

	rules := cfg.GetRules()

	return Pass(c.Name(), "loaded").WithDetails(
		fmt.Sprintf("error codes: %s", strings.Join(rules.ErrorCodes, ", ")),
		fmt.Sprintf("unused codes: %s", strings.Join(rules.UnusedCodes, ", ")),
	)
}
