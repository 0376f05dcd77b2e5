package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/mdpad/pkg/analysis"
)

// JSONReporter writes the report as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter. A nil report is written as an empty report.
func (r *JSONReporter) Report(_ context.Context, report *analysis.Report) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if report == nil {
		report = analysis.Summarize(nil, analysis.DefaultOptions())
	}
	if report.Files == nil {
		report.Files = []analysis.FileStats{}
	}

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(report); err != nil {
		return 0, fmt.Errorf("encode json: %w", err)
	}

	return failures(report), nil
}
