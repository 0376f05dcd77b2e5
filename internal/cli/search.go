package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdpad/internal/logging"
	"github.com/yaklabco/mdpad/pkg/search"
)

type searchFlags struct {
	format string
	count  bool
}

// searchOutput is the JSON shape of search results.
type searchOutput struct {
	Query   string         `json:"query"`
	Path    string         `json:"path"`
	Matches []search.Match `json:"matches"`
}

func newSearchCommand() *cobra.Command {
	flags := &searchFlags{}

	cmd := &cobra.Command{
		Use:   "search <query> [file]",
		Short: "Find text in a document",
		Long: `Find every occurrence of a literal query, ignoring case.

Matches are printed as line:column with the query highlighted. Overlapping
occurrences are all reported. Without a file, or with "-", the saved document
is searched. Exits with status 2 when nothing matches.

Examples:
  mdpad search todo notes.md        # Every "todo", "TODO", "Todo"
  mdpad search --count "a.b"        # Number of literal "a.b" in the saved document
  mdpad search --format json api doc.md`,
		Args: usageArgs(cobra.RangeArgs(1, 2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().BoolVar(&flags.count, "count", false, "print only the number of matches")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string, flags *searchFlags) error {
	ctx := commandContext(cmd)

	if flags.format != "text" && flags.format != "json" {
		return usageError(fmt.Errorf("invalid format %q: must be text or json", flags.format))
	}

	query := args[0]
	var arg string
	if len(args) == 2 {
		arg = args[1]
	}

	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}

	name, text, err := readDocument(ctx, cfg, arg)
	if err != nil {
		return err
	}

	matches := search.FindMatches(text, query)
	logging.Default().Debug("search finished",
		logging.FieldQuery, query,
		logging.FieldInput, name,
		logging.FieldMatches, len(matches),
	)

	out := cmd.OutOrStdout()
	switch {
	case flags.count:
		fmt.Fprintln(out, len(matches))
	case flags.format == "json":
		if matches == nil {
			matches = []search.Match{}
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(searchOutput{Query: query, Path: name, Matches: matches}); err != nil {
			return fmt.Errorf("encode matches: %w", err)
		}
	case len(matches) > 0:
		fmt.Fprint(out, newStyles(cmd, cfg).FormatMatches(name, text, query, matches))
	}

	if len(matches) == 0 {
		return ErrNoMatches
	}
	return nil
}
