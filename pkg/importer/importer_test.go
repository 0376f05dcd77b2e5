package importer_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdpad/pkg/fsutil"
	"github.com/yaklabco/mdpad/pkg/importer"
	"github.com/yaklabco/mdpad/pkg/langdetect"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestRead_Markdown(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "notes.md", []byte("# Notes\n\nhello\n"))

	res, err := importer.Read(context.Background(), path, importer.Options{})
	require.NoError(t, err)
	assert.Equal(t, "# Notes\n\nhello\n", res.Content)
	assert.Equal(t, langdetect.KindMarkdown, res.Kind)
	require.NotNil(t, res.Info)
	assert.Equal(t, int64(15), res.Info.Size)
}

func TestRead_PlainText(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "todo.txt", []byte("buy milk"))

	res, err := importer.Read(context.Background(), path, importer.Options{})
	require.NoError(t, err)
	assert.Equal(t, "buy milk", res.Content)
	assert.Equal(t, langdetect.KindText, res.Kind)
}

func TestRead_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		data    []byte
		opts    importer.Options
		wantErr error
	}{
		{"binary", "blob.md", []byte{0x00, 0x01, 0xff}, importer.Options{}, importer.ErrNotText},
		{"invalid utf8", "latin1.txt", []byte("caf\xe9"), importer.Options{}, importer.ErrNotText},
		{"code without wrap", "main.go", []byte("package main\n"), importer.Options{}, importer.ErrUnsupported},
		{"image", "pic.png", []byte("\x89PNG\r\n\x1a\n"), importer.Options{}, importer.ErrUnsupported},
		{"too large", "big.md", []byte("0123456789"), importer.Options{MaxSize: 4}, fsutil.ErrTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, tt.file, tt.data)
			res, err := importer.Read(context.Background(), path, tt.opts)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, res)
		})
	}
}

func TestRead_Missing(t *testing.T) {
	t.Parallel()

	_, err := importer.Read(context.Background(), filepath.Join(t.TempDir(), "nope.md"), importer.Options{})
	require.ErrorIs(t, err, fsutil.ErrNotFound)
}

func TestRead_WrapCode(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "main.go", []byte("package main\n"))

	res, err := importer.Read(context.Background(), path, importer.Options{WrapCode: true})
	require.NoError(t, err)
	assert.Equal(t, "```go\npackage main\n```\n", res.Content)
	assert.Equal(t, langdetect.KindCode, res.Kind)
}

func TestFence(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "```\nplain\n```\n", importer.Fence(langdetect.Text, "plain"))
	assert.Equal(t, "````md\n```go\nx\n```\n````\n", importer.Fence("md", "```go\nx\n```\n"))
}

func TestImageMarkdown(t *testing.T) {
	t.Parallel()

	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

	got, err := importer.ImageMarkdown("pic.png", png)
	require.NoError(t, err)
	assert.Regexp(t, `^\n!\[pic\.png\]\(data:image/png;base64,[A-Za-z0-9+/=]+\)\n$`, got)

	svg, err := importer.ImageMarkdown("logo.svg", []byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`))
	require.NoError(t, err)
	assert.Contains(t, svg, "data:image/svg+xml;base64,")

	_, err = importer.ImageMarkdown("notes.txt", []byte("hello"))
	require.ErrorIs(t, err, importer.ErrNotImage)
}

func TestReadImage(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "dot.gif", []byte("GIF89a\x01\x00\x01\x00"))

	got, err := importer.ReadImage(context.Background(), path)
	require.NoError(t, err)
	assert.Contains(t, got, "![dot.gif](data:image/gif;base64,")
}
