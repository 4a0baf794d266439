package exec

//go:generate mockgen -source=tool.go -destination=tool_mock.go -package=exec

import "os/exec"

// ToolChecker resolves tools in PATH.
type ToolChecker interface {
	// Resolve returns the absolute path of the tool, or an error if it is
	// not in PATH.
	Resolve(tool string) (string, error)
}

// toolChecker implements ToolChecker.
type toolChecker struct{}

// NewToolChecker creates a new ToolChecker.
func NewToolChecker() *toolChecker {
	return &toolChecker{}
}

// Resolve returns the absolute path of the tool.
func (*toolChecker) Resolve(tool string) (string, error) {
	path, err := exec.LookPath(tool)
	if err != nil {
		return "", &ToolNotFoundError{Tool: tool}
	}

	return path, nil
}

// ToolNotFoundError is returned when a required tool is not found.
type ToolNotFoundError struct {
	Tool string
}

// Error returns the error message.
func (e *ToolNotFoundError) Error() string {
	return "tool not found in PATH: " + e.Tool
}
