package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdpad/internal/logging"
	"github.com/yaklabco/mdpad/pkg/config"
	"github.com/yaklabco/mdpad/pkg/export"
)

type exportFlags struct {
	format    string
	output    string
	clipboard bool
	noBackup  bool
}

func newExportCommand() *cobra.Command {
	flags := &exportFlags{}

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export the document as markdown, text or HTML",
		Long: `Export the saved document, or a file, as markdown, plain text or HTML.

HTML is the rendered body fragment with heading anchors that match the table
of contents. Without --output the file is written to the configured export
directory as markdown-export.<ext>. An existing file is backed up first unless
--no-backup is given or backups are disabled in the configuration.

Examples:
  mdpad export                          # markdown-export.md
  mdpad export --format html -o page.html
  mdpad export --format txt -o -        # Print to stdout
  mdpad export --format html --clipboard`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args, flags)
		},
	}

	formats := make([]string, 0, len(export.Formats()))
	for _, format := range export.Formats() {
		formats = append(formats, string(format))
	}
	cmd.Flags().StringVar(&flags.format, "format", string(export.FormatMarkdown),
		"export format: "+strings.Join(formats, ", "))
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file or directory, - for stdout")
	cmd.Flags().BoolVar(&flags.clipboard, "clipboard", false, "copy to the clipboard instead of writing a file")
	cmd.Flags().BoolVar(&flags.noBackup, "no-backup", false, "do not back up an existing output file")

	return cmd
}

func runExport(cmd *cobra.Command, args []string, flags *exportFlags) error {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	format, err := export.ParseFormat(flags.format)
	if err != nil {
		return usageError(err)
	}

	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}

	var arg string
	if len(args) == 1 {
		arg = args[0]
	}
	name, text, err := readDocument(ctx, cfg, arg)
	if err != nil {
		return err
	}

	artifact, err := export.Build(text, format, htmlRenderer(cfg))
	if err != nil {
		return fmt.Errorf("export %s: %w", name, err)
	}

	if flags.clipboard {
		if err := artifact.CopyToClipboard(); err != nil {
			return err
		}
		logger.Info("copied to clipboard", logging.FieldFormat, format, logging.FieldBytes, len(artifact.Content))
		if flags.output == "" {
			return nil
		}
	}

	if flags.output == "-" {
		fmt.Fprint(cmd.OutOrStdout(), artifact.Content)
		return nil
	}

	written, err := artifact.WriteFile(ctx, flags.output, export.WriteOptions{
		Dir:    cfg.Export.Dir,
		Backup: backupsEnabled(cfg, flags),
	})
	if err != nil {
		return &ExitError{Code: ExitIOError, Err: err}
	}

	logger.Info("exported",
		logging.FieldFormat, format,
		logging.FieldInput, name,
		logging.FieldOutput, written,
	)
	return nil
}

func backupsEnabled(cfg *config.Config, flags *exportFlags) bool {
	return cfg.ExportBackups() && !flags.noBackup
}
