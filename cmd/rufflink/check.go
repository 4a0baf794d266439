package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"golang.org/x/sync/errgroup"

	"github.com/lintkit/rufflink/internal/color"
	execpkg "github.com/lintkit/rufflink/internal/exec"
	"github.com/lintkit/rufflink/internal/lsp"
	"github.com/lintkit/rufflink/internal/ruff"
	"github.com/lintkit/rufflink/pkg/config"
	"github.com/lintkit/rufflink/pkg/logger"
)

var (
	outputFormat  string
	stdinFilename string
)

var checkCmd = &cobra.Command{
	Use:   "check [path ...]",
	Short: "Run ruff and report translated diagnostics",
	Long: `Run ruff over the given files or directories and report the translated
diagnostics. With "-" (or no arguments and piped stdin) the buffer is read
from standard input.

Exit status is 1 when any error-category diagnostic is found.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&outputFormat, "output", "o", "table", "Output format: table or json")
	checkCmd.Flags().StringVar(
		&stdinFilename,
		"stdin-filename",
		"stdin.py",
		"Filename reported to ruff for stdin input",
	)
}

// fileDiagnostics pairs a checked path with its translated diagnostics.
type fileDiagnostics struct {
	Path        string           `json:"path"`
	Diagnostics []lsp.Diagnostic `json:"diagnostics"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := newLogger()

	service, err := newService(cfg, log)
	if err != nil {
		return err
	}

	reports, err := checkTargets(cmd.Context(), cfg, service, args)
	if err != nil {
		return err
	}

	sort.Slice(reports, func(i, j int) bool { return reports[i].Path < reports[j].Path })

	if err := renderReports(reports); err != nil {
		return err
	}

	if hasErrorCategory(reports) {
		os.Exit(ExitFindings)
	}

	return nil
}

// newService wires a Service from config.
func newService(cfg *config.Config, log logger.Logger) (*lsp.Service, error) {
	classifier, err := lsp.NewClassifier(cfg.GetRules().ErrorCodes, cfg.GetRules().UnusedCodes)
	if err != nil {
		return nil, err
	}

	invoker := ruff.NewProcessInvoker(
		execpkg.NewCommandRunner(),
		cfg.GetRuff().GetExecutable(),
		log,
	)

	return lsp.NewService(invoker, classifier, log), nil
}

func checkTargets(
	ctx context.Context,
	cfg *config.Config,
	service *lsp.Service,
	args []string,
) ([]fileDiagnostics, error) {
	if useStdin(args) {
		buffer, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, errors.Wrap(err, "reading stdin")
		}

		checkCtx, cancel := withTimeout(ctx, cfg)
		defer cancel()

		diags := service.Diagnostics(checkCtx, stdinFilename, string(buffer))

		return []fileDiagnostics{{Path: stdinFilename, Diagnostics: diags}}, nil
	}

	files, err := collectFiles(args, cfg.GetCheck().Exclude)
	if err != nil {
		return nil, err
	}

	reports := make([]fileDiagnostics, 0, len(files))

	var mu sync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(cfg.GetCheck().GetMaxWorkers())

	for _, path := range files {
		group.Go(func() error {
			buffer, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrapf(err, "reading %s", path)
			}

			checkCtx, cancel := withTimeout(groupCtx, cfg)
			defer cancel()

			diags := service.Diagnostics(checkCtx, path, string(buffer))

			mu.Lock()
			reports = append(reports, fileDiagnostics{Path: path, Diagnostics: diags})
			mu.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

func useStdin(args []string) bool {
	return len(args) == 1 && args[0] == "-"
}

// collectFiles expands directory arguments into Python files, applying the
// configured exclude globs to slash-separated paths.
func collectFiles(args []string, excludes []string) ([]string, error) {
	if len(args) == 0 {
		args = []string{"."}
	}

	var files []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "stat %s", arg)
		}

		if !info.IsDir() {
			if !excluded(arg, excludes) {
				files = append(files, arg)
			}

			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if excluded(path, excludes) {
					return filepath.SkipDir
				}

				return nil
			}

			if !isPythonFile(path) || excluded(path, excludes) {
				return nil
			}

			files = append(files, path)

			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "walking %s", arg)
		}
	}

	return files, nil
}

func isPythonFile(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".py" || ext == ".pyi"
}

func excluded(path string, excludes []string) bool {
	slashed := filepath.ToSlash(path)

	for _, pattern := range excludes {
		if ok, err := doublestar.Match(pattern, slashed); err == nil && ok {
			return true
		}
	}

	return false
}

func withTimeout(ctx context.Context, cfg *config.Config) (context.Context, context.CancelFunc) {
	timeout := cfg.GetRuff().Timeout.ToDuration()
	if timeout <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, timeout)
}

func renderReports(reports []fileDiagnostics) error {
	if outputFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")

		return enc.Encode(reports)
	}

	theme := color.NewTheme(color.Profile(noColorFlag))

	total := 0
	fixable := 0

	t := tablewriter.NewTable(os.Stdout)
	t.Header([]string{"Path", "Location", "Code", "Category", "Message"})

	for _, report := range reports {
		for _, d := range report.Diagnostics {
			total++

			if d.Action != nil {
				fixable++
			}

			_ = t.Append([]string{
				theme.Path.Render(report.Path),
				formatLocation(d.Range.Start),
				theme.Code.Render(d.Code),
				renderCategory(theme, d.Category),
				d.Message,
			})
		}
	}

	if total > 0 {
		_ = t.Render()
	}

	fmt.Printf("%d diagnostics (%d fixable)\n", total, fixable)

	return nil
}

func formatLocation(pos protocol.Position) string {
	return fmt.Sprintf("%d:%d", pos.Line+1, pos.Character+1)
}

func renderCategory(theme color.Theme, category lsp.Category) string {
	name := category.String()

	switch category {
	case lsp.CategoryError:
		return theme.Error.Render(name)
	case lsp.CategoryUnusedCode:
		return theme.Unused.Render(name)
	case lsp.CategoryWarning:
		return theme.Warning.Render(name)
	default:
		return name
	}
}

func hasErrorCategory(reports []fileDiagnostics) bool {
	for _, report := range reports {
		for _, d := range report.Diagnostics {
			if d.Category == lsp.CategoryError {
				return true
			}
		}
	}

	return false
}
