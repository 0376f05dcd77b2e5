package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/mdpad/internal/logging"
	"github.com/yaklabco/mdpad/pkg/render"
)

const (
	defaultPreviewWidth = 80
	watchDebounce       = 100 * time.Millisecond
	clearScreen         = "\x1b[H\x1b[2J"
)

type previewFlags struct {
	watch bool
	width int
	style string
}

func newPreviewCommand() *cobra.Command {
	flags := &previewFlags{}

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Render markdown in the terminal",
		Long: `Render a markdown file, or the saved document, with terminal styling.

With --watch the file is rendered again whenever it changes on disk, until
interrupted.

Examples:
  mdpad preview README.md
  mdpad preview --watch notes.md
  mdpad preview --style dark --width 100`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "re-render when the file changes")
	cmd.Flags().IntVar(&flags.width, "width", 0, "wrap width (default: terminal width)")
	cmd.Flags().StringVar(&flags.style, "style", "", "glamour style: auto, dark, light, notty or a style file")

	return cmd
}

func runPreview(cmd *cobra.Command, args []string, flags *previewFlags) error {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	var arg string
	if len(args) == 1 {
		arg = args[0]
	}
	if flags.watch && (arg == "" || arg == "-") {
		return usageError(fmt.Errorf("--watch needs a file"))
	}

	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}

	style := flags.style
	if style == "" {
		style = cfg.Render.GlamourStyle
	}
	renderer, err := render.NewTerminal(render.TerminalOptions{
		Style: style,
		Width: previewWidth(cmd, flags.width),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	interactive := isTerminal(out)

	draw := func() error {
		_, text, err := readDocument(ctx, cfg, arg)
		if err != nil {
			return err
		}
		rendered, err := renderer.Render(text)
		if err != nil {
			return err
		}
		if flags.watch && interactive {
			fmt.Fprint(out, clearScreen)
		}
		fmt.Fprint(out, rendered)
		return nil
	}

	if err := draw(); err != nil {
		return err
	}
	if !flags.watch {
		return nil
	}

	logger.Debug("watching for changes", logging.FieldPath, arg)
	return watchFile(ctx, arg, logger, func() {
		if err := draw(); err != nil {
			logger.Warn("preview failed", logging.FieldPath, arg, logging.FieldError, err)
		}
	})
}

func previewWidth(cmd *cobra.Command, flagWidth int) int {
	if flagWidth > 0 {
		return flagWidth
	}
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultPreviewWidth
}

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// watchFile calls onChange after path is written, replaced or recreated,
// until ctx is done. The parent directory is watched because editors often
// save by renaming a temporary file over the original.
func watchFile(ctx context.Context, path string, logger *log.Logger, onChange func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(watchDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", logging.FieldError, err)
		case <-timer.C:
			onChange()
		}
	}
}
