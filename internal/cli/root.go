// Package cli provides the Cobra command structure for mdpad.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdpad/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root mdpad command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "mdpad",
		Short: "A terminal markdown editor with live preview",
		Long: `mdpad is a markdown editor for the terminal.

It keeps a single working document with live word and character counts,
reading time, a table of contents and in-document search, and saves the
editor state between sessions. Documents can be started from templates,
imported from files and exported as markdown, plain text or HTML.

Run "mdpad edit" for the interactive editor. The other commands work on
files or on the saved document from scripts.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	// Add subcommands.
	rootCmd.AddGroup(commandGroups()...)
	addGrouped(rootCmd, groupEditor, newEditCommand(), newPreviewCommand())
	addGrouped(rootCmd, groupDocument,
		newStatsCommand(), newTOCCommand(), newSearchCommand(),
		newExportCommand(), newImportCommand(), newTemplateCommand())
	addGrouped(rootCmd, groupSetup, newStateCommand(), newInitCommand(), newVersionCommand(info))
	rootCmd.SetHelpCommandGroupID(groupSetup)
	rootCmd.SetCompletionCommandGroupID(groupSetup)

	// Apply styled help formatting.
	applyHelp(rootCmd, newHelpFormatter(&color))

	return rootCmd
}

func addGrouped(parent *cobra.Command, groupID string, cmds ...*cobra.Command) {
	for _, cmd := range cmds {
		cmd.GroupID = groupID
		parent.AddCommand(cmd)
	}
}
