package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	execpkg "github.com/lintkit/rufflink/internal/exec"
	"github.com/lintkit/rufflink/internal/ruff"
)

var (
	diffFlag  bool
	writeFlag bool
)

var fixCmd = &cobra.Command{
	Use:   "fix [path]",
	Short: "Apply all automatic fixes to a file",
	Long: `Run ruff in fix-only mode over a single file and print the fixed source.
With "-" the buffer is read from standard input. When the tool fails the
original source is printed unchanged.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFix,
}

func init() {
	rootCmd.AddCommand(fixCmd)
	fixCmd.Flags().BoolVarP(&diffFlag, "diff", "d", false, "Print a unified diff instead of the fixed source")
	fixCmd.Flags().BoolVarP(&writeFlag, "write", "w", false, "Rewrite the file in place")
	fixCmd.Flags().StringVar(
		&stdinFilename,
		"stdin-filename",
		"stdin.py",
		"Filename reported to ruff for stdin input",
	)
}

func runFix(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := newLogger()

	path := "-"
	if len(args) == 1 {
		path = args[0]
	}

	var buffer []byte

	fromStdin := path == "-"
	if fromStdin {
		if writeFlag {
			return errors.New("--write requires a file path, not stdin")
		}

		path = stdinFilename

		buffer, err = io.ReadAll(os.Stdin)
		if err != nil {
			return errors.Wrap(err, "reading stdin")
		}
	} else {
		buffer, err = os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "reading %s", path)
		}
	}

	invoker := ruff.NewProcessInvoker(
		execpkg.NewCommandRunner(),
		cfg.GetRuff().GetExecutable(),
		log,
	)

	ctx, cancel := withTimeout(cmd.Context(), cfg)
	defer cancel()

	fixed, err := invoker.FixOnly(ctx, path, string(buffer))
	if err != nil {
		// A binary that cannot be launched is a user-fixable setup
		// problem; only tool-side failures degrade to unchanged output.
		if errors.Is(err, ruff.ErrLinterLaunch) {
			return err
		}

		log.Error("fix failed, source unchanged", "path", path, "error", err)

		fixed = string(buffer)
	}

	switch {
	case diffFlag:
		return printDiff(path, string(buffer), fixed)
	case writeFlag:
		return writeFixed(path, string(buffer), fixed)
	default:
		fmt.Print(fixed)
		return nil
	}
}

func printDiff(path, original, fixed string) error {
	if original == fixed {
		return nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(fixed),
		FromFile: path,
		ToFile:   path + " (fixed)",
		Context:  3,
	})
	if err != nil {
		return errors.Wrap(err, "rendering diff")
	}

	fmt.Print(diff)

	return nil
}

func writeFixed(path, original, fixed string) error {
	if original == fixed {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "stat %s", path)
	}

	if err := os.WriteFile(path, []byte(fixed), info.Mode().Perm()); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}

	fmt.Printf("fixed %s\n", path)

	return nil
}
