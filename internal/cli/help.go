package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/mdpad/internal/configloader"
	"github.com/yaklabco/mdpad/internal/ui/pretty"
	"github.com/yaklabco/mdpad/pkg/fsutil"
	"github.com/yaklabco/mdpad/pkg/state"
	"github.com/yaklabco/mdpad/pkg/theme"
)

// Command groups shown in the root help.
const (
	groupEditor   = "editor"
	groupDocument = "document"
	groupSetup    = "setup"
)

func commandGroups() []*cobra.Group {
	return []*cobra.Group{
		{ID: groupEditor, Title: "Editor Commands:"},
		{ID: groupDocument, Title: "Document Commands:"},
		{ID: groupSetup, Title: "Setup Commands:"},
	}
}

// helpStyles colors help output with the default theme's accent.
type helpStyles struct {
	command lipgloss.Style
	heading lipgloss.Style
	name    lipgloss.Style
	flag    lipgloss.Style
	dim     lipgloss.Style
}

func newHelpStyles(colorEnabled bool, palette theme.Theme) helpStyles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return helpStyles{command: plain, heading: plain, name: plain, flag: plain, dim: plain}
	}
	return helpStyles{
		command: lipgloss.NewStyle().Bold(true),
		heading: lipgloss.NewStyle().Foreground(palette.Accent).Bold(true),
		name:    lipgloss.NewStyle().Foreground(palette.Accent),
		flag:    lipgloss.NewStyle().Foreground(palette.Accent),
		dim:     lipgloss.NewStyle().Faint(true),
	}
}

// helpFormatter renders command help with grouped commands, the MDPAD_*
// variables and the file locations mdpad uses.
type helpFormatter struct {
	styles helpStyles
}

// newHelpFormatter resolves colorMode against the help writer when help is
// rendered, after --color has been parsed.
func newHelpFormatter(colorMode *string) func(writer io.Writer) *helpFormatter {
	return func(writer io.Writer) *helpFormatter {
		return &helpFormatter{
			styles: newHelpStyles(pretty.IsColorEnabled(*colorMode, writer), theme.Default()),
		}
	}
}

const usageTemplate = `{{ heading "Usage:" }}
{{- if .Runnable }}
  {{ command .UseLine }}{{ end }}
{{- if .HasAvailableSubCommands }}
  {{ command .CommandPath }} [command]{{ end }}

{{- if .HasExample }}

{{ heading "Examples:" }}
{{ dim .Example }}
{{- end }}

{{- if .HasAvailableSubCommands }}
{{- $cmds := .Commands }}
{{- if eq (len .Groups) 0 }}

{{ heading "Commands:" }}
{{- range $cmds }}{{ if .IsAvailableCommand }}
  {{ name (rpad .Name .NamePadding) }} {{ .Short }}{{ end }}{{ end }}
{{- else }}
{{- range $group := .Groups }}

{{ heading $group.Title }}
{{- range $cmds }}{{ if and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")) }}
  {{ name (rpad .Name .NamePadding) }} {{ .Short }}{{ end }}{{ end }}
{{- end }}
{{- end }}
{{- end }}

{{- if .HasAvailableLocalFlags }}

{{ heading "Flags:" }}
{{ flags .LocalFlags }}
{{- end }}

{{- if .HasAvailableInheritedFlags }}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags }}
{{- end }}

{{- if not .HasParent }}

{{ heading "Environment:" }}
{{ environment }}

{{ heading "Files:" }}
{{ files }}
{{- end }}

{{- if .HasAvailableSubCommands }}

Run "{{ command (print .CommandPath " [command] --help") }}" for more about a command.
{{- end }}
`

const helpTemplate = `{{ with (or .Long .Short) }}{{ trimRight . }}

{{ end }}` + usageTemplate

func (h *helpFormatter) funcs() template.FuncMap {
	return template.FuncMap{
		"command":     h.styles.command.Render,
		"heading":     h.styles.heading.Render,
		"name":        h.styles.name.Render,
		"dim":         h.styles.dim.Render,
		"rpad":        rpad,
		"trimRight":   trimTrailingWhitespaces,
		"flags":       h.flags,
		"environment": h.environment,
		"files":       h.files,
	}
}

func (h *helpFormatter) render(w io.Writer, text string, cmd *cobra.Command) error {
	tmpl, err := template.New("help").Funcs(h.funcs()).Parse(text)
	if err != nil {
		return fmt.Errorf("parse help template: %w", err)
	}
	return tmpl.Execute(w, cmd)
}

// applyHelp installs the help and usage functions on root; subcommands
// inherit them.
func applyHelp(root *cobra.Command, formatter func(io.Writer) *helpFormatter) {
	root.SetUsageFunc(func(cmd *cobra.Command) error {
		out := cmd.OutOrStderr()
		if err := formatter(out).render(out, usageTemplate, cmd); err != nil {
			return fmt.Errorf("render usage: %w", err)
		}
		return nil
	})
	root.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		if err := formatter(out).render(out, helpTemplate, cmd); err != nil {
			cmd.PrintErrln(err)
		}
	})
}

// flags lists the visible flags of set as "-s, --name type   usage (default x)".
func (h *helpFormatter) flags(set *pflag.FlagSet) string {
	type row struct{ left, right string }

	var rows []row
	width := 0
	set.VisitAll(func(flag *pflag.Flag) {
		if flag.Hidden {
			return
		}

		left := "    --" + flag.Name
		if flag.Shorthand != "" {
			left = "-" + flag.Shorthand + ", --" + flag.Name
		}
		typeName, usage := pflag.UnquoteUsage(flag)
		if typeName != "" {
			left += " " + typeName
		}
		if def := flagDefault(flag); def != "" {
			usage += " " + h.styles.dim.Render("(default "+def+")")
		}

		rows = append(rows, row{left: left, right: usage})
		width = max(width, len(left))
	})

	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = "  " + h.styles.flag.Render(rpad(r.left, width)) + "   " + r.right
	}
	return strings.Join(lines, "\n")
}

func flagDefault(flag *pflag.Flag) string {
	switch flag.DefValue {
	case "", "false", "0", "[]", "0s":
		return ""
	}
	if flag.Value.Type() == "string" {
		return fmt.Sprintf("%q", flag.DefValue)
	}
	return flag.DefValue
}

// environment lists the MDPAD_* variables.
func (h *helpFormatter) environment() string {
	vars := configloader.ListEnvVars()
	names := make([]string, 0, len(vars))
	width := 0
	for name := range vars {
		names = append(names, name)
		width = max(width, len(name))
	}
	slices.Sort(names)

	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = "  " + h.styles.flag.Render(rpad(name, width)) + "   " + vars[name]
	}
	return strings.Join(lines, "\n")
}

// files lists where mdpad looks for configuration and keeps its state, as
// resolved for the current environment.
func (h *helpFormatter) files() string {
	userConfig := "(no home directory)"
	if dir := configloader.UserConfigDir(os.Getenv); dir != "" {
		userConfig = filepath.Join(dir, "config.yaml")
	}

	rows := [][2]string{
		{"Project config", defaultProjectConfig + " (searched upward from the working directory)"},
		{"User config", userConfig},
		{"State", state.DefaultDir() + " (unless storage.path is set)"},
		{"Editor log", filepath.Join(fsutil.StateDir(appName), appName+".log")},
	}

	width := 0
	for _, r := range rows {
		width = max(width, len(r[0]))
	}

	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = "  " + h.styles.name.Render(rpad(r[0], width)) + "   " + r[1]
	}
	return strings.Join(lines, "\n")
}

func rpad(str string, padding int) string {
	if len(str) >= padding {
		return str
	}
	return str + strings.Repeat(" ", padding-len(str))
}

func trimTrailingWhitespaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
