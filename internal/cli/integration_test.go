package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdpad/internal/cli"
	"github.com/yaklabco/mdpad/pkg/state"
)

// env is an isolated mdpad setup: a config file pointing the state store
// and export directory into a temp dir.
type env struct {
	dir        string
	configPath string
}

func newEnv(t *testing.T) *env {
	t.Helper()

	dir := t.TempDir()
	configPath := filepath.Join(dir, "mdpad.yml")
	content := "storage:\n" +
		"  backend: file\n" +
		"  path: " + filepath.Join(dir, "state") + "\n" +
		"export:\n" +
		"  dir: " + filepath.Join(dir, "exports") + "\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	return &env{dir: dir, configPath: configPath}
}

func (e *env) write(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(e.dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// run executes mdpad with args and returns stdout and the error.
func (e *env) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(testInfo())
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", e.configPath, "--color", "never"}, args...))

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func (e *env) savedState(t *testing.T) state.EditorState {
	t.Helper()

	out, err := e.run(t, "state", "show", "--format", "json")
	require.NoError(t, err)

	var st state.EditorState
	require.NoError(t, json.Unmarshal([]byte(out), &st))
	return st
}

func TestStats_JSON(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	e.write(t, "docs/a.md", "# One\n\nalpha beta gamma\n")
	e.write(t, "docs/b.md", "# Two\n\n## Sub\n\ndelta\n")

	out, err := e.run(t, "stats", "--format", "json", filepath.Join(e.dir, "docs"))
	require.NoError(t, err)

	var report struct {
		Files   []map[string]any `json:"files"`
		Summary struct {
			Files    int `json:"files"`
			Failed   int `json:"failed"`
			Words    int `json:"words"`
			Headings int `json:"headings"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	assert.Len(t, report.Files, 2)
	assert.Equal(t, 2, report.Summary.Files)
	assert.Zero(t, report.Summary.Failed)
	assert.Equal(t, 3, report.Summary.Headings)
	// Heading markers count as words.
	assert.Equal(t, 10, report.Summary.Words)
}

func TestStats_InvalidFormat(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	_, err := e.run(t, "stats", "--format", "xml", e.dir)
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))
}

func TestTOC_Markdown(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	path := e.write(t, "doc.md", "# Intro\n\n## Setup\n\n## Setup\n")

	out, err := e.run(t, "toc", "--format", "markdown", path)
	require.NoError(t, err)

	assert.Equal(t, "- [Intro](#intro)\n  - [Setup](#setup)\n  - [Setup](#setup-2)\n", out)
}

func TestTOC_JSONEmpty(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	path := e.write(t, "plain.md", "no headings here\n")

	out, err := e.run(t, "toc", "--format", "json", path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

func TestSearch(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	path := e.write(t, "doc.md", "Markdown is fun.\nI like markdown.\nversion a.b and axb\n")

	t.Run("count", func(t *testing.T) {
		t.Parallel()

		out, err := e.run(t, "search", "--count", "MARKDOWN", path)
		require.NoError(t, err)
		assert.Equal(t, "2\n", out)
	})

	t.Run("json positions", func(t *testing.T) {
		t.Parallel()

		out, err := e.run(t, "search", "--format", "json", "markdown", path)
		require.NoError(t, err)

		var got struct {
			Query   string `json:"query"`
			Matches []struct {
				Offset int `json:"offset"`
				Line   int `json:"line"`
				Column int `json:"column"`
			} `json:"matches"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		require.Len(t, got.Matches, 2)
		assert.Equal(t, 0, got.Matches[0].Offset)
		assert.Equal(t, 2, got.Matches[1].Line)
		assert.Equal(t, 8, got.Matches[1].Column)
	})

	t.Run("literal metacharacters", func(t *testing.T) {
		t.Parallel()

		out, err := e.run(t, "search", "--count", "a.b", path)
		require.NoError(t, err)
		assert.Equal(t, "1\n", out)
	})

	t.Run("no matches", func(t *testing.T) {
		t.Parallel()

		_, err := e.run(t, "search", "zebra", path)
		require.ErrorIs(t, err, cli.ErrNoMatches)
		assert.Equal(t, cli.ExitNoMatches, cli.ExitCode(err))
	})
}

func TestSearch_MissingQuery(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	_, err := e.run(t, "search")
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))
}

func TestSearch_MissingFile(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	_, err := e.run(t, "search", "x", filepath.Join(e.dir, "missing.md"))
	require.Error(t, err)
	assert.Equal(t, cli.ExitIOError, cli.ExitCode(err))
}

func TestImport_ThenSavedDocument(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	path := e.write(t, "notes.md", "# Notes\n\n## Today\n\nwrite tests\n")

	_, err := e.run(t, "import", path)
	require.NoError(t, err)

	st := e.savedState(t)
	assert.Equal(t, "# Notes\n\n## Today\n\nwrite tests\n", st.Content)

	out, err := e.run(t, "toc", "--format", "markdown")
	require.NoError(t, err)
	assert.Equal(t, "- [Notes](#notes)\n  - [Today](#today)\n", out)
}

func TestImport_DryRun(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	path := e.write(t, "draft.md", "# Draft\n")

	out, err := e.run(t, "import", "--dry-run", path)
	require.NoError(t, err)
	assert.Contains(t, out, "+# Draft")
	assert.Contains(t, out, "additions")

	assert.Equal(t, state.WelcomeContent, e.savedState(t).Content)
}

func TestImport_Binary(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	path := e.write(t, "blob.md", "abc\x00\x01\x02def")

	_, err := e.run(t, "import", path)
	require.Error(t, err)
	assert.Equal(t, cli.ExitIOError, cli.ExitCode(err))
}

func TestExport_HTMLToFile(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	src := e.write(t, "doc.md", "# Hello\n\nsome *text*\n")
	dest := filepath.Join(e.dir, "out", "doc.html")

	_, err := e.run(t, "export", "--format", "html", "-o", dest, src)
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<h1 id="hello">Hello</h1>`)
	assert.Contains(t, string(data), "<em>text</em>")
}

func TestExport_DefaultNameInExportDir(t *testing.T) {
	t.Parallel()

	e := newEnv(t)

	_, err := e.run(t, "export")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(e.dir, "exports", "markdown-export.md"))
	require.NoError(t, err)
	assert.Equal(t, state.WelcomeContent, string(data))
}

func TestExport_Stdout(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	src := e.write(t, "doc.md", "# Title\n")

	out, err := e.run(t, "export", "--format", "txt", "-o", "-", src)
	require.NoError(t, err)
	assert.Equal(t, "# Title\n", out)
}

func TestExport_UnknownFormat(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	_, err := e.run(t, "export", "--format", "pdf")
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))
}

func TestTemplate(t *testing.T) {
	t.Parallel()

	e := newEnv(t)

	out, err := e.run(t, "template", "list")
	require.NoError(t, err)
	for _, slug := range []string{"meeting-notes", "task-list", "blog-post", "documentation"} {
		assert.Contains(t, out, slug)
	}

	out, err = e.run(t, "template", "apply", "task-list", "--stdout")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# Project Tasks"), out)
	assert.Equal(t, state.WelcomeContent, e.savedState(t).Content)

	_, err = e.run(t, "template", "apply", "documentation")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(e.savedState(t).Content, "# Project Name"))

	_, err = e.run(t, "template", "apply", "nope")
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))
}

func TestState_PathAndReset(t *testing.T) {
	t.Parallel()

	e := newEnv(t)

	out, err := e.run(t, "state", "path")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), filepath.Join(e.dir, "state")), out)

	path := e.write(t, "doc.md", "changed\n")
	_, err = e.run(t, "import", path)
	require.NoError(t, err)
	require.Equal(t, "changed\n", e.savedState(t).Content)

	_, err = e.run(t, "state", "reset")
	require.NoError(t, err)
	assert.Equal(t, state.WelcomeContent, e.savedState(t).Content)
}

func TestState_ShowText(t *testing.T) {
	t.Parallel()

	e := newEnv(t)

	out, err := e.run(t, "state", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Editor state")
	assert.Contains(t, out, "Light Pastel")
	assert.Contains(t, out, "No usable saved state")
}

func TestInit(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	target := filepath.Join(e.dir, "generated.yml")

	_, err := e.run(t, "init", "-o", target)
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "reading_speed")

	_, err = e.run(t, "init", "-o", target)
	require.Error(t, err)
	assert.Equal(t, cli.ExitFailure, cli.ExitCode(err))
	assert.Contains(t, err.Error(), "already exists")

	_, err = e.run(t, "init", "-o", target, "--force", "--full")
	require.NoError(t, err)
}

func TestInvalidConfig(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	bad := e.write(t, "bad.yml", "theme: no-such-theme\n")

	cmd := cli.NewRootCommand(testInfo())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", bad, "state", "path"})

	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCode(err))
}

func TestUnknownFlag(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	_, err := e.run(t, "toc", "--bogus")
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))
}
