// Package reporter writes document statistics reports.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/mdpad/pkg/analysis"
)

// Reporter formats and writes analysis reports.
type Reporter interface {
	// Report writes formatted output for the given report.
	// It returns the number of files that failed and any write error.
	Report(ctx context.Context, report *analysis.Report) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatTable:
		return NewTableReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func failures(report *analysis.Report) int {
	if report == nil {
		return 0
	}
	return report.Totals.Failed
}
