package runner

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/mdpad/pkg/analysis"
	"github.com/yaklabco/mdpad/pkg/fsutil"
	"github.com/yaklabco/mdpad/pkg/langdetect"
)

// ErrNotText marks files skipped because they are binary or not UTF-8.
var ErrNotText = errors.New("not a text file")

// Run discovers files and measures them on a bounded pool of goroutines.
// Per-file failures are recorded in the result, not returned.
func Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}
	return Measure(ctx, files, opts)
}

// Measure measures the given files. Output order matches input order.
func Measure(ctx context.Context, files []string, opts Options) (*Result, error) {
	result := &Result{
		Files: make([]analysis.FileStats, len(files)),
		Stats: Stats{FilesDiscovered: len(files)},
	}
	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(min(jobs, len(files)))

	wpm := opts.wordsPerMinute()
	for i, path := range files {
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// Each goroutine owns its slot.
			result.Files[i] = measureFile(gctx, path, wpm, opts.MaxSize)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}

	for _, file := range result.Files {
		if file.Error != "" {
			result.Stats.FilesFailed++
		} else {
			result.Stats.FilesProcessed++
		}
	}

	return result, nil
}

func measureFile(ctx context.Context, path string, wpm int, limit int64) analysis.FileStats {
	out := analysis.FileStats{Path: path}

	content, _, err := fsutil.ReadFileLimit(ctx, path, limit)
	if err != nil {
		out.Error = err.Error()
		return out
	}

	if kind := langdetect.Classify(path, content).Kind; kind == langdetect.KindBinary || kind == langdetect.KindImage {
		out.Error = ErrNotText.Error()
		return out
	}

	out.Stats = analysis.Measure(string(content), wpm)
	return out
}
