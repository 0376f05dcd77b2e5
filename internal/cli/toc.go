package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdpad/pkg/toc"
)

type tocFlags struct {
	format   string
	maxLevel int
}

func newTOCCommand() *cobra.Command {
	flags := &tocFlags{}

	cmd := &cobra.Command{
		Use:   "toc [file]",
		Short: "Print the table of contents",
		Long: `Print the headings of a document with their anchor IDs.

Without a file, or with "-", the saved document is used.

Examples:
  mdpad toc README.md                 # Indented outline
  mdpad toc --format markdown doc.md  # Linked list to paste into the document
  mdpad toc --format json             # Headings of the saved document`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTOC(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, markdown")
	cmd.Flags().IntVar(&flags.maxLevel, "max-level", toc.MaxLevel, "deepest heading level to include (1-6)")

	return cmd
}

func runTOC(cmd *cobra.Command, args []string, flags *tocFlags) error {
	ctx := commandContext(cmd)

	switch flags.format {
	case "text", "json", "markdown":
	default:
		return usageError(fmt.Errorf("invalid format %q: must be text, json or markdown", flags.format))
	}
	if flags.maxLevel < 1 || flags.maxLevel > toc.MaxLevel {
		return usageError(fmt.Errorf("invalid max level %d: must be 1-%d", flags.maxLevel, toc.MaxLevel))
	}

	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}

	var arg string
	if len(args) == 1 {
		arg = args[0]
	}
	_, text, err := readDocument(ctx, cfg, arg)
	if err != nil {
		return err
	}

	entries := make([]toc.Entry, 0)
	for _, entry := range toc.ExtractWithOptions(text, toc.Options{Dedupe: cfg.DedupeAnchors()}) {
		if entry.Level <= flags.maxLevel {
			entries = append(entries, entry)
		}
	}

	out := cmd.OutOrStdout()
	switch flags.format {
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(entries); err != nil {
			return fmt.Errorf("encode toc: %w", err)
		}
	case "markdown":
		fmt.Fprint(out, toc.Markdown(entries))
	default:
		fmt.Fprint(out, newStyles(cmd, cfg).FormatTOC(entries))
	}

	return nil
}
