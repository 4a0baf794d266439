package ruff

//go:generate mockgen -source=invoker.go -destination=invoker_mock.go -package=ruff

import (
	"context"

	"github.com/cockroachdb/errors"

	execpkg "github.com/lintkit/rufflink/internal/exec"
	"github.com/lintkit/rufflink/pkg/logger"
)

var (
	// ErrLinterLaunch is returned when the ruff process could not start.
	ErrLinterLaunch = errors.New("linter process failed to launch")

	// ErrLinterStderr is returned when ruff wrote anything to stderr.
	// Any diagnostic noise is treated as total failure for that invocation,
	// regardless of exit code.
	ErrLinterStderr = errors.New("linter wrote to stderr")
)

// DefaultExecutable is the ruff binary name used when none is configured.
const DefaultExecutable = "ruff"

// checkArgs is the fixed argument contract for a check-mode invocation.
// The buffer travels over stdin; "-" tells ruff to read it.
func checkArgs(path string) []string {
	return []string{
		"check",
		"--stdin-filename", path,
		"--quiet",
		"--output-format=json",
		"--force-exclude",
		"-",
	}
}

// fixOnlyArgs is the check contract plus --fix-only: stdout carries the
// rewritten source instead of findings.
func fixOnlyArgs(path string) []string {
	return []string{
		"check",
		"--stdin-filename", path,
		"--quiet",
		"--output-format=json",
		"--force-exclude",
		"--fix-only",
		"-",
	}
}

// Invoker is the process-boundary capability for ruff. Both operations block
// until the external process exits; callers choose their own timeout policy
// through ctx.
type Invoker interface {
	// Check runs ruff in check mode over buffer and returns its stdout,
	// a JSON array of raw diagnostics.
	Check(ctx context.Context, path, buffer string) (string, error)

	// FixOnly runs ruff in autofix mode over buffer and returns its stdout,
	// the rewritten source text.
	FixOnly(ctx context.Context, path, buffer string) (string, error)
}

// ProcessInvoker implements Invoker by spawning the ruff executable.
type ProcessInvoker struct {
	runner     execpkg.CommandRunner
	executable string
	log        logger.Logger
}

// NewProcessInvoker creates a ProcessInvoker. An empty executable falls back
// to DefaultExecutable.
func NewProcessInvoker(runner execpkg.CommandRunner, executable string, log logger.Logger) *ProcessInvoker {
	if executable == "" {
		executable = DefaultExecutable
	}

	return &ProcessInvoker{
		runner:     runner,
		executable: executable,
		log:        log,
	}
}

// Check runs ruff in check mode.
func (i *ProcessInvoker) Check(ctx context.Context, path, buffer string) (string, error) {
	return i.invoke(ctx, "check", buffer, checkArgs(path))
}

// FixOnly runs ruff in autofix mode.
func (i *ProcessInvoker) FixOnly(ctx context.Context, path, buffer string) (string, error) {
	return i.invoke(ctx, "fix-only", buffer, fixOnlyArgs(path))
}

func (i *ProcessInvoker) invoke(ctx context.Context, mode, buffer string, args []string) (string, error) {
	i.log.Debug("invoking linter", "executable", i.executable, "mode", mode)

	result, err := i.runner.RunWithStdin(ctx, buffer, i.executable, args...)
	if err != nil {
		return "", errors.Wrapf(ErrLinterLaunch, "%s: %v", i.executable, err)
	}

	if result.Stderr != "" {
		return "", errors.Wrapf(ErrLinterStderr, "%s: %s", i.executable, result.Stderr)
	}

	return result.Stdout, nil
}
