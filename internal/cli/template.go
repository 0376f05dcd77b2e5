package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdpad/internal/logging"
	"github.com/yaklabco/mdpad/pkg/templates"
)

func newTemplateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "List and apply document templates",
		Long: `Start a document from a template.

Templates: Blog Post, Documentation, Meeting Notes and Task List. Dates in
templates are filled with today's date.`,
	}

	cmd.AddCommand(newTemplateListCommand())
	cmd.AddCommand(newTemplateApplyCommand())

	return cmd
}

func newTemplateListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available templates",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, nil)
			if err != nil {
				return err
			}
			styles := newStyles(cmd, cfg)

			out := cmd.OutOrStdout()
			for _, tpl := range templates.Catalog() {
				fmt.Fprintf(out, "  %s %s\n", styles.Bold.Render(fmt.Sprintf("%-16s", tpl.Slug())), tpl.Name)
			}
			return nil
		},
	}
}

func newTemplateApplyCommand() *cobra.Command {
	var stdout bool

	cmd := &cobra.Command{
		Use:   "apply <name>",
		Short: "Replace the saved document with a template",
		Long: `Replace the saved document with a template. The name is the slug shown by
"mdpad template list" or the display name.

Examples:
  mdpad template apply meeting-notes
  mdpad template apply "Blog Post" --stdout`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplateApply(cmd, args[0], stdout)
		},
	}

	cmd.Flags().BoolVar(&stdout, "stdout", false, "print the template instead of saving it")

	return cmd
}

func runTemplateApply(cmd *cobra.Command, name string, stdout bool) error {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	content, err := templates.Render(name, now())
	if err != nil {
		return usageError(err)
	}

	if stdout {
		fmt.Fprint(cmd.OutOrStdout(), content)
		return nil
	}

	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}

	sess, store, err := openSession(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	sess.SetContent(content)
	if err := sess.Save(ctx); err != nil {
		return &ExitError{Code: ExitIOError, Err: err}
	}

	logger.Info("applied template", "template", name)
	return nil
}
