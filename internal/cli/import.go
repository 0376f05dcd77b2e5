package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdpad/internal/logging"
	"github.com/yaklabco/mdpad/pkg/diff"
	"github.com/yaklabco/mdpad/pkg/importer"
)

type importFlags struct {
	dryRun   bool
	wrapCode bool
	image    bool
}

func newImportCommand() *cobra.Command {
	flags := &importFlags{}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the saved document with a file",
		Long: `Replace the saved document with the contents of a file.

Markdown and plain text files are taken as they are. Source files are wrapped
in a fenced code block with --wrap-code. Binary and non-UTF-8 files are
rejected and the saved document is left unchanged.

With --image, an image file is appended to the document as an inline
data URI instead.

Examples:
  mdpad import notes.md            # Replace the saved document
  mdpad import --dry-run notes.md  # Show what would change
  mdpad import --image chart.png   # Embed an image at the end`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0], flags)
		},
	}

	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "print a diff instead of saving")
	cmd.Flags().BoolVar(&flags.wrapCode, "wrap-code", false, "accept source files as a fenced code block")
	cmd.Flags().BoolVar(&flags.image, "image", false, "append an image as an inline data URI")

	return cmd
}

func runImport(cmd *cobra.Command, path string, flags *importFlags) error {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}

	sess, store, err := openSession(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	current := sess.Document().Text()

	var next string
	if flags.image {
		img, err := importer.ReadImage(ctx, path)
		if err != nil {
			if errors.Is(err, importer.ErrNotImage) {
				return &ExitError{Code: ExitIOError, Err: err}
			}
			return err
		}
		next = current + img
	} else {
		res, err := importer.Read(ctx, path, importer.Options{WrapCode: flags.wrapCode})
		if err != nil {
			return err
		}
		next = res.Content
	}

	if flags.dryRun {
		changes := diff.Compute(filepath.Base(path), current, next)
		if !changes.HasChanges() {
			fmt.Fprintln(cmd.OutOrStdout(), "No changes")
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), newStyles(cmd, cfg).FormatDiff(changes))
		return nil
	}

	sess.SetContent(next)
	if err := sess.Save(ctx); err != nil {
		return &ExitError{Code: ExitIOError, Err: err}
	}

	stats := sess.Document().Stats()
	logger.Info("imported",
		logging.FieldPath, path,
		logging.FieldWords, stats.Words,
		logging.FieldHeadings, stats.Headings,
	)
	return nil
}
