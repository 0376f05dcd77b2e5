package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/mdpad/internal/ui/pretty"
	"github.com/yaklabco/mdpad/pkg/analysis"
)

// TextReporter writes one stats block per file.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewThemedStyles(colorEnabled, opts.Theme),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(ctx context.Context, report *analysis.Report) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if report == nil || len(report.Files) == 0 {
		fmt.Fprintln(r.bw, r.styles.Dim.Render("No files to measure."))
		return 0, nil
	}

	for i, file := range report.Files {
		if err := ctx.Err(); err != nil {
			return failures(report), fmt.Errorf("report: %w", err)
		}
		if i > 0 {
			fmt.Fprintln(r.bw)
		}
		if file.Error != "" {
			fmt.Fprintf(r.bw, "%s  %s\n", r.styles.FilePath.Render(file.Path), r.styles.Error.Render(file.Error))
			continue
		}
		fmt.Fprint(r.bw, r.styles.FormatStats(file.Path, file.Stats))
	}

	if r.opts.ShowSummary && len(report.Files) > 1 {
		fmt.Fprintln(r.bw)
		fmt.Fprint(r.bw, r.styles.FormatTotals(report.Totals))
	}

	return failures(report), nil
}
