package doctor

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/lintkit/rufflink/internal/color"
)

// TableReporter renders check results as a table.
type TableReporter struct {
	out   io.Writer
	theme color.Theme
}

// NewTableReporter creates a TableReporter writing to out.
func NewTableReporter(out io.Writer, theme color.Theme) *TableReporter {
	return &TableReporter{out: out, theme: theme}
}

// Report renders the results. Details are shown only in verbose mode, except
// for failed checks which always print them.
func (r *TableReporter) Report(results []CheckResult, verbose bool) {
	t := tablewriter.NewTable(r.out)
	t.Header([]string{"Check", "Status", "Message"})

	for _, result := range results {
		_ = t.Append([]string{
			result.Name,
			r.renderStatus(result.Status),
			result.Message,
		})
	}

	_ = t.Render()

	for _, result := range results {
		if len(result.Details) == 0 || (!verbose && !result.IsFailed()) {
			continue
		}

		fmt.Fprintf(r.out, "\n%s:\n", result.Name)

		for _, detail := range result.Details {
			fmt.Fprintf(r.out, "  %s\n", detail)
		}
	}
}

func (r *TableReporter) renderStatus(status Status) string {
	switch status {
	case StatusPass:
		return r.theme.Success.Render(string(status))
	case StatusFail:
		return r.theme.Error.Render(string(status))
	case StatusSkipped:
		return r.theme.Muted.Render(string(status))
	default:
		return string(status)
	}
}
