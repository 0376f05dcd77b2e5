package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdpad/internal/configloader"
	"github.com/yaklabco/mdpad/internal/logging"
	"github.com/yaklabco/mdpad/internal/ui/pretty"
	"github.com/yaklabco/mdpad/pkg/config"
	"github.com/yaklabco/mdpad/pkg/document"
	"github.com/yaklabco/mdpad/pkg/fsutil"
	"github.com/yaklabco/mdpad/pkg/importer"
	"github.com/yaklabco/mdpad/pkg/langdetect"
	"github.com/yaklabco/mdpad/pkg/render"
	"github.com/yaklabco/mdpad/pkg/session"
	"github.com/yaklabco/mdpad/pkg/state"
	"github.com/yaklabco/mdpad/pkg/theme"
	"github.com/yaklabco/mdpad/pkg/toc"
)

// appName names the state directory and the log file.
const appName = "mdpad"

// savedDocumentName labels the persisted document in command output.
const savedDocumentName = "(saved document)"

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// loadConfig resolves configuration for cmd. Overrides holds values taken
// from command flags and may be nil.
func loadConfig(cmd *cobra.Command, overrides *config.Config) (*config.Config, error) {
	logger := logging.FromContext(commandContext(cmd))

	if overrides == nil {
		overrides = &config.Config{}
	}
	if cmd.Flags().Changed("color") {
		colorMode, err := cmd.Flags().GetString("color")
		if err != nil {
			return nil, fmt.Errorf("get color flag: %w", err)
		}
		overrides.Color = colorMode
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	result, err := configloader.Load(commandContext(cmd), configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    overrides,
	})
	if err != nil {
		return nil, &ExitError{
			Code: ExitConfigError,
			Err:  errors.Join(errors.New("failed to load configuration"), err),
		}
	}

	if len(result.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, result.LoadedFrom)
	}
	logger.Debug("configuration loaded",
		logging.FieldTheme, result.Config.Theme,
		logging.FieldBackend, result.Config.Storage.Backend,
		logging.FieldInterval, result.Config.AutosaveInterval,
	)

	return result.Config, nil
}

func configuredTheme(cfg *config.Config) theme.Theme {
	if t, ok := theme.Lookup(cfg.Theme); ok {
		return t
	}
	return theme.Default()
}

func newStyles(cmd *cobra.Command, cfg *config.Config) *pretty.Styles {
	colorEnabled := pretty.IsColorEnabled(cfg.Color, cmd.OutOrStdout())
	return pretty.NewThemedStyles(colorEnabled, configuredTheme(cfg))
}

func htmlRenderer(cfg *config.Config) *render.HTML {
	return render.NewHTML(render.Options{
		Extensions:       cfg.Render.Extensions,
		UnsafeHTML:       cfg.UnsafeHTML(),
		DedupeIDs:        cfg.DedupeAnchors(),
		StripFrontMatter: true,
	})
}

func documentOptions(cfg *config.Config) []document.Option {
	return []document.Option{
		document.WithTOCOptions(toc.Options{Dedupe: cfg.DedupeAnchors()}),
		document.WithWordsPerMinute(cfg.ReadingSpeed),
	}
}

func openStore(cfg *config.Config) (state.Store, error) {
	store, err := state.Open(state.Backend(cfg.Storage.Backend), cfg.Storage.Path)
	if err != nil {
		return nil, &ExitError{Code: ExitIOError, Err: fmt.Errorf("open state store: %w", err)}
	}
	return store, nil
}

// openSession loads the saved session. When nothing has been saved yet the
// configured theme and view mode seed the fresh state. The caller closes the
// returned store.
func openSession(ctx context.Context, cfg *config.Config, logger *log.Logger) (*session.Session, state.Store, error) {
	store, err := openStore(cfg)
	if err != nil {
		return nil, nil, err
	}

	persister := state.NewPersister(store, state.WithLogger(logger))
	sess := session.Open(ctx, persister, logger, documentOptions(cfg)...)

	if _, err := persister.Inspect(ctx); errors.Is(err, state.ErrNotFound) {
		sess.Update(func(st *state.EditorState) {
			st.Theme = configuredTheme(cfg).ID
			if mode, ok := theme.ParseViewMode(cfg.ViewMode); ok {
				st.ViewMode = mode
			}
		})
	}

	logger.Debug("session opened",
		logging.FieldBackend, cfg.Storage.Backend,
		logging.FieldPath, state.Location(store, persister.Key()),
	)
	return sess, store, nil
}

// readDocument returns the text to operate on: the named file, or the saved
// document when arg is empty or "-".
func readDocument(ctx context.Context, cfg *config.Config, arg string) (string, string, error) {
	if arg == "" || arg == "-" {
		store, err := openStore(cfg)
		if err != nil {
			return "", "", err
		}
		defer store.Close()

		st := state.NewPersister(store, state.WithLogger(logging.Default())).Load(ctx)
		return savedDocumentName, st.Content, nil
	}

	data, _, err := fsutil.ReadFileLimit(ctx, arg, importer.DefaultMaxSize)
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", arg, err)
	}

	switch langdetect.Classify(arg, data).Kind {
	case langdetect.KindBinary, langdetect.KindImage:
		return "", "", fmt.Errorf("%w: %s", importer.ErrNotText, arg)
	default:
		return arg, string(data), nil
	}
}

// now is the clock for template dates and state resets.
//
//nolint:gochecknoglobals // Test seam
var now = time.Now
