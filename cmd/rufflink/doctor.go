package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/lintkit/rufflink/internal/color"
	internalconfig "github.com/lintkit/rufflink/internal/config"
	"github.com/lintkit/rufflink/internal/doctor"
	execpkg "github.com/lintkit/rufflink/internal/exec"
)

var verboseFlag bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the environment and configuration",
	Long: `Verify that the ruff binary is resolvable, that its version satisfies
the configured minimum, and that the layered configuration loads cleanly.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&verboseFlag, "verbose", false, "Show details for passing checks too")
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	log := newLogger()

	// The config check reports load failures itself, so fall back to
	// defaults here to keep the remaining checks running.
	cfg, err := loadConfig()
	if err != nil {
		cfg = internalconfig.DefaultConfig()
	}

	runner := doctor.NewRunner(
		[]doctor.HealthChecker{
			doctor.NewBinaryCheck(execpkg.NewToolChecker(), cfg.GetRuff().GetExecutable()),
			doctor.NewVersionCheck(
				execpkg.NewCommandRunner(),
				cfg.GetRuff().GetExecutable(),
				cfg.GetRuff().MinVersion,
			),
			doctor.NewConfigCheck(loadConfig),
		},
		doctor.NewTableReporter(os.Stdout, color.NewTheme(color.Profile(noColorFlag))),
		log,
	)

	if err := runner.Run(cmd.Context(), verboseFlag); err != nil {
		if errors.Is(err, doctor.ErrChecksFailed) {
			os.Exit(ExitFindings)
		}

		return err
	}

	return nil
}
