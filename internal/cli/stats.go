package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdpad/internal/logging"
	"github.com/yaklabco/mdpad/pkg/analysis"
	"github.com/yaklabco/mdpad/pkg/config"
	"github.com/yaklabco/mdpad/pkg/reporter"
	"github.com/yaklabco/mdpad/pkg/runner"
)

type statsFlags struct {
	format    string
	sortBy    string
	ascending bool
	exclude   []string
	jobs      int
	compact   bool
	noSummary bool
}

func newStatsCommand() *cobra.Command {
	flags := &statsFlags{}

	cmd := &cobra.Command{
		Use:   "stats [paths...]",
		Short: "Count words and characters and estimate reading time",
		Long:  statsLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, table, json")
	cmd.Flags().StringVar(&flags.sortBy, "sort", "path", "sort files by: path, words, chars")
	cmd.Flags().BoolVar(&flags.ascending, "asc", false, "sort counts smallest first")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "glob patterns to skip")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "minified JSON output")
	cmd.Flags().BoolVar(&flags.noSummary, "no-summary", false, "omit the totals line")

	return cmd
}

const statsLongDescription = `Measure markdown and text files.

Reports words, characters (Unicode code points), lines, headings and the
estimated reading time for each file, with totals. Directories are walked for
.md, .markdown and .txt files; hidden files are skipped.

Examples:
  mdpad stats                     # Every document under the current directory
  mdpad stats README.md docs/     # Specific files and directories
  mdpad stats --format table      # Aligned table with totals
  mdpad stats --sort words        # Longest documents first
  mdpad stats --format json       # Machine-readable report`

func runStats(cmd *cobra.Command, args []string, flags *statsFlags) error {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return usageError(err)
	}
	sortBy := analysis.SortField(flags.sortBy)
	if !sortBy.IsValid() {
		return usageError(fmt.Errorf("invalid sort field %q: must be path, words or chars", flags.sortBy))
	}

	overrides := &config.Config{}
	if cmd.Flags().Changed("jobs") {
		overrides.Jobs = flags.jobs
	}
	cfg, err := loadConfig(cmd, overrides)
	if err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	runOpts := runner.Options{
		Paths:          args,
		WorkingDir:     workDir,
		ExcludeGlobs:   flags.exclude,
		Jobs:           cfg.Jobs,
		WordsPerMinute: cfg.ReadingSpeed,
	}

	logger.Debug("starting stats run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := runner.Run(ctx, runOpts)
	if err != nil {
		return fmt.Errorf("stats run failed: %w", err)
	}

	logger.Debug("stats run finished",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesFailed, result.Stats.FilesFailed,
	)

	report := analysis.Summarize(result.Files, analysis.Options{
		SortBy:         sortBy,
		SortDesc:       !flags.ascending,
		WordsPerMinute: cfg.ReadingSpeed,
		WorkingDir:     workDir,
	})

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       cfg.Color,
		Theme:       configuredTheme(cfg),
		ShowSummary: !flags.noSummary,
		Compact:     flags.compact,
	})
	if err != nil {
		return usageError(fmt.Errorf("create reporter: %w", err))
	}

	failed, err := rep.Report(ctx, report)
	if err != nil {
		return fmt.Errorf("report results: %w", err)
	}
	if failed > 0 {
		return ErrFilesFailed
	}

	return nil
}
