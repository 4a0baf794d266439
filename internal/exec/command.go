// Package exec provides abstractions for executing external commands.
package exec

//go:generate mockgen -source=command.go -destination=command_mock.go -package=exec

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/cockroachdb/errors"
)

// CommandResult contains the result of a command execution.
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// CommandRunner executes external commands with output capture.
type CommandRunner interface {
	// Run executes a command and returns the result.
	Run(ctx context.Context, name string, args ...string) (*CommandResult, error)

	// RunWithStdin executes a command with the given string on stdin.
	RunWithStdin(ctx context.Context, stdin string, name string, args ...string) (*CommandResult, error)
}

// commandRunner implements CommandRunner.
type commandRunner struct{}

// NewCommandRunner creates a new CommandRunner.
func NewCommandRunner() CommandRunner {
	return &commandRunner{}
}

// Run executes a command and returns the result.
func (r *commandRunner) Run(ctx context.Context, name string, args ...string) (*CommandResult, error) {
	return r.run(ctx, nil, name, args...)
}

// RunWithStdin executes a command with the given string on stdin.
func (r *commandRunner) RunWithStdin(
	ctx context.Context,
	stdin string,
	name string,
	args ...string,
) (*CommandResult, error) {
	return r.run(ctx, strings.NewReader(stdin), name, args...)
}

func (*commandRunner) run(
	ctx context.Context,
	stdin *strings.Reader,
	name string,
	args ...string,
) (*CommandResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if stdin != nil {
		cmd.Stdin = stdin
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := &CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// Non-zero exit is not a launch failure; the caller decides what
		// the exit code means for its tool.
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}

	if err != nil {
		return result, errors.Wrapf(err, "executing %s", name)
	}

	return result, nil
}
