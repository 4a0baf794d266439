package doctor

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/lintkit/rufflink/pkg/logger"
)

// ErrChecksFailed is returned by Run when any check fails.
var ErrChecksFailed = errors.New("health checks failed")

// Reporter formats and outputs check results.
type Reporter interface {
	// Report outputs the results of health checks.
	Report(results []CheckResult, verbose bool)
}

// Runner orchestrates health checks.
type Runner struct {
	checkers []HealthChecker
	reporter Reporter
	logger   logger.Logger
}

// NewRunner creates a new Runner.
func NewRunner(checkers []HealthChecker, reporter Reporter, log logger.Logger) *Runner {
	return &Runner{
		checkers: checkers,
		reporter: reporter,
		logger:   log,
	}
}

// Run executes every check in order and reports the results. It returns
// ErrChecksFailed when any check fails.
func (r *Runner) Run(ctx context.Context, verbose bool) error {
	r.logger.Info("starting doctor run", "checks", len(r.checkers))

	results := make([]CheckResult, 0, len(r.checkers))

	failed := 0

	for _, checker := range r.checkers {
		result := checker.Check(ctx)
		if result.IsFailed() {
			failed++
		}

		r.logger.Debug("check completed",
			"name", result.Name,
			"status", string(result.Status),
		)

		results = append(results, result)
	}

	r.reporter.Report(results, verbose)

	r.logger.Info("doctor run finished", "total", len(results), "failed", failed)

	if failed > 0 {
		return ErrChecksFailed
	}

	return nil
}
