package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdpad/internal/logging"
	"github.com/yaklabco/mdpad/internal/ui/pretty"
	"github.com/yaklabco/mdpad/pkg/analysis"
	"github.com/yaklabco/mdpad/pkg/state"
	"github.com/yaklabco/mdpad/pkg/theme"
)

func newStateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Inspect or reset the saved editor state",
		Long: `Inspect or reset the saved editor state.

The state holds the document, theme, view mode and layout toggles. It is
stored under the configured backend (file or sqlite).`,
	}

	cmd.AddCommand(newStateShowCommand())
	cmd.AddCommand(newStatePathCommand())
	cmd.AddCommand(newStateResetCommand())

	return cmd
}

func newStateShowCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the saved state",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStateShow(cmd, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")

	return cmd
}

func runStateShow(cmd *cobra.Command, format string) error {
	ctx := commandContext(cmd)

	if format != "text" && format != "json" {
		return usageError(fmt.Errorf("invalid format %q: must be text or json", format))
	}

	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	persister := state.NewPersister(store, state.WithLogger(logging.Default()))
	st, storedErr := persister.Inspect(ctx)
	if storedErr != nil {
		st = persister.Load(ctx)
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(st); err != nil {
			return fmt.Errorf("encode state: %w", err)
		}
		return nil
	}

	styles := newStyles(cmd, cfg)
	writeState(out, styles, st, state.Location(store, persister.Key()), cfg.ReadingSpeed)
	if storedErr != nil {
		fmt.Fprintf(out, "\n%s\n", styles.Dim.Render("No usable saved state ("+storedErr.Error()+"); showing defaults."))
	}
	return nil
}

func writeState(out io.Writer, styles *pretty.Styles, st state.EditorState, location string, wpm int) {
	row := func(label, value string) {
		fmt.Fprintf(out, "  %-14s %s\n", label, value)
	}

	fmt.Fprintln(out, styles.SummaryTitle.Render("Editor state"))
	row("Location", location)
	row("Theme", theme.Get(st.Theme).Name)
	row("View mode", st.ViewMode.Title())
	row("Split view", strconv.FormatBool(st.IsSplitView))
	row("Zen mode", strconv.FormatBool(st.IsZenMode))
	row("Focus mode", strconv.FormatBool(st.FocusMode))
	row("Mobile", strconv.FormatBool(st.IsMobilePreview))
	row("Fullscreen", strconv.FormatBool(st.IsFullscreen))
	row("Contents", strconv.FormatBool(st.ShowTOC))
	row("Search bar", strconv.FormatBool(st.ShowSearch))
	row("Last saved", pretty.FormatLastSaved(st.LastSaved))
	fmt.Fprintln(out)

	fmt.Fprint(out, styles.FormatStats("Document", analysis.Measure(st.Content, wpm)))
}

func newStatePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where the state is stored",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, nil)
			if err != nil {
				return err
			}

			store, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			fmt.Fprintln(cmd.OutOrStdout(), state.Location(store, state.Key))
			return nil
		},
	}
}

func newStateResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Discard the saved state and start from the welcome document",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			if err := sess.Reset(ctx, now()); err != nil {
				return &ExitError{Code: ExitIOError, Err: err}
			}

			logger.Info("state reset", logging.FieldPath, state.Location(store, state.Key))
			return nil
		},
	}
}
