// Package main provides the CLI entry point for rufflink.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	internalconfig "github.com/lintkit/rufflink/internal/config"
	"github.com/lintkit/rufflink/pkg/config"
	"github.com/lintkit/rufflink/pkg/logger"
)

const (
	// ExitOK indicates success with nothing blocking.
	ExitOK = 0

	// ExitFindings indicates error-category diagnostics were reported.
	ExitFindings = 1

	// ExitFailure indicates the command itself failed.
	ExitFailure = 2
)

var (
	debugMode      bool
	noColorFlag    bool
	executableFlag string
	timeoutFlag    string
)

func main() {
	os.Exit(mainWithExitCode())
}

func mainWithExitCode() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return ExitFailure
	}

	return ExitOK
}

var rootCmd = &cobra.Command{
	Use:   "rufflink",
	Short: "Translate ruff diagnostics into LSP diagnostics and code actions",
	Long: `rufflink runs ruff over Python sources and translates its findings into
language-server diagnostics, quick fixes, organize-imports and fix-all
code actions.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		checkVersionFlag()
	},
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(
		&executableFlag,
		"executable",
		"",
		"Path to the ruff binary (default: ruff from config or PATH)",
	)
	rootCmd.PersistentFlags().StringVar(
		&timeoutFlag,
		"timeout",
		"",
		"Timeout for a single ruff invocation (e.g. 30s; 0 disables)",
	)
}

// newLogger builds the CLI logger honoring --debug.
//
//nolint:ireturn // callers take the interface
func newLogger() logger.Logger {
	return logger.NewStderrLogger(debugMode)
}

// flagOverrides collects persistent flag values into koanf's highest
// precedence layer.
func flagOverrides() map[string]any {
	flags := map[string]any{}

	if executableFlag != "" {
		flags["ruff.executable"] = executableFlag
	}

	if timeoutFlag != "" {
		flags["ruff.timeout"] = timeoutFlag
	}

	return flags
}

// loadConfig loads configuration with flag overrides applied.
func loadConfig() (*config.Config, error) {
	loader, err := internalconfig.NewKoanfLoader()
	if err != nil {
		return nil, err
	}

	return loader.Load(flagOverrides())
}
