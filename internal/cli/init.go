package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdpad/internal/configloader"
	"github.com/yaklabco/mdpad/internal/logging"
	"github.com/yaklabco/mdpad/pkg/config"
	"github.com/yaklabco/mdpad/pkg/theme"
)

// defaultProjectConfig is the file init writes in the current directory.
const defaultProjectConfig = ".mdpad.yml"

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	user   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new mdpad configuration file",
		Long: `Create a new .mdpad.yml configuration file in the current directory.

Every setting is listed with its default and a short description. Settings are
commented out unless --full is given.

Examples:
  mdpad init                       Create .mdpad.yml with commented settings
  mdpad init --full                Write every setting with its default
  mdpad init --user                Create the user config in $XDG_CONFIG_HOME/mdpad
  mdpad init --output custom.yml   Write to a custom file path`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Write every setting uncommented")
	cmd.Flags().BoolVar(&flags.user, "user", false, "Write the user configuration file instead")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .mdpad.yml)")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive()

	if flags.user && flags.output != "" {
		return usageError(errors.New("--user and --output are mutually exclusive"))
	}

	outputPath := flags.output
	switch {
	case flags.user:
		outputPath = filepath.Join(configloader.UserConfigDir(os.Getenv), "config.yaml")
	case outputPath == "":
		outputPath = defaultProjectConfig
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if flags.force {
		if _, err := os.Stat(absPath); err == nil {
			logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
		}
	}

	ids := theme.IDs()
	themes := make([]string, len(ids))
	for i, id := range ids {
		themes[i] = id.String()
	}
	modes := theme.ViewModes()
	viewModes := make([]string, len(modes))
	for i, mode := range modes {
		viewModes[i] = string(mode)
	}

	content := config.GenerateTemplate(config.TemplateOptions{
		Full:      flags.full,
		Themes:    themes,
		ViewModes: viewModes,
	})

	if err := configloader.WriteTemplate(commandContext(cmd), absPath, content, flags.force); err != nil {
		if errors.Is(err, configloader.ErrConfigExists) {
			return &ExitError{
				Code: ExitFailure,
				Err:  fmt.Errorf("file %q already exists; use --force to overwrite", outputPath),
			}
		}
		return &ExitError{Code: ExitIOError, Err: err}
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("run 'mdpad edit' to start writing")

	return nil
}
