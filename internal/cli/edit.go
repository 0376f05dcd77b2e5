package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdpad/internal/logging"
	"github.com/yaklabco/mdpad/internal/tui"
	"github.com/yaklabco/mdpad/pkg/fsutil"
	"github.com/yaklabco/mdpad/pkg/importer"
)

type editFlags struct {
	logFile  string
	wrapCode bool
}

func newEditCommand() *cobra.Command {
	flags := &editFlags{}

	cmd := &cobra.Command{
		Use:   "edit [file]",
		Short: "Open the interactive editor",
		Long: `Open the interactive editor on the saved document.

With a file argument the file is imported first and replaces the saved
document. Changes are saved automatically and when the editor exits.

Logs go to a file so they do not disturb the screen.

Examples:
  mdpad edit                 # Continue the saved document
  mdpad edit notes.md        # Import notes.md and edit it
  mdpad --debug edit         # Debug logging to the log file`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.logFile, "log-file", "",
		"log file (default: $XDG_STATE_HOME/mdpad/mdpad.log)")
	cmd.Flags().BoolVar(&flags.wrapCode, "wrap-code", true,
		"import source files as a fenced code block")

	return cmd
}

func runEdit(cmd *cobra.Command, args []string, flags *editFlags) error {
	ctx := commandContext(cmd)

	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}

	level := "info"
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = "debug"
	}

	logPath := flags.logFile
	if logPath == "" {
		logPath = filepath.Join(fsutil.StateDir(appName), appName+".log")
	}
	logger, closer, err := logging.NewFile(logPath, level)
	if err != nil {
		return &ExitError{Code: ExitIOError, Err: err}
	}
	defer closer.Close()
	ctx = logging.WithLogger(ctx, logger)

	sess, store, err := openSession(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	var notice string
	if len(args) == 1 {
		res, err := importer.Read(ctx, args[0], importer.Options{WrapCode: flags.wrapCode})
		if err != nil {
			return err
		}
		sess.SetContent(res.Content)
		notice = "Imported " + filepath.Base(args[0])
		logger.Info("imported", logging.FieldPath, args[0], logging.FieldBytes, len(res.Content))
	}

	logger.Info("editor started", logging.FieldTheme, sess.State().Theme)

	if err := tui.Run(ctx, tui.Options{
		Session:          sess,
		Logger:           logger,
		AutosaveInterval: cfg.AutosaveInterval,
		GlamourStyle:     cfg.Render.GlamourStyle,
		HTML:             htmlRenderer(cfg),
		ExportDir:        cfg.Export.Dir,
		ExportBackups:    cfg.ExportBackups(),
		Notice:           notice,
	}); err != nil {
		return fmt.Errorf("editor: %w", err)
	}

	logger.Info("editor closed")
	return nil
}
