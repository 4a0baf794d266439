// Package doctor provides environment health checks for rufflink.
package doctor

//go:generate mockgen -source=types.go -destination=types_mock.go -package=doctor

import "context"

// Status represents the status of a health check.
type Status string

const (
	// StatusPass indicates the check passed.
	StatusPass Status = "pass"
	// StatusFail indicates the check failed.
	StatusFail Status = "fail"
	// StatusSkipped indicates the check was skipped.
	StatusSkipped Status = "skipped"
)

// CheckResult represents the result of a health check.
type CheckResult struct {
	// Name is the human-readable name of the check.
	Name string

	// Status indicates whether the check passed, failed, or was skipped.
	Status Status

	// Message is the primary message describing the result.
	Message string

	// Details contains additional context about the result.
	Details []string
}

// HealthChecker performs a health check and returns a result.
type HealthChecker interface {
	// Name returns the human-readable name of the check.
	Name() string

	// Check performs the health check and returns a result.
	Check(ctx context.Context) CheckResult
}

// Pass creates a passing check result.
func Pass(name, message string) CheckResult {
	return CheckResult{Name: name, Status: StatusPass, Message: message}
}

// Fail creates a failing check result.
func Fail(name, message string) CheckResult {
	return CheckResult{Name: name, Status: StatusFail, Message: message}
}

// Skip creates a skipped check result.
func Skip(name, message string) CheckResult {
	return CheckResult{Name: name, Status: StatusSkipped, Message: message}
}

// WithDetails adds details to a CheckResult.
func (r CheckResult) WithDetails(details ...string) CheckResult {
	r.Details = append(r.Details, details...)
	return r
}

// IsFailed returns true if the check failed.
func (r CheckResult) IsFailed() bool {
	return r.Status == StatusFail
}
