package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdpad/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads content and metadata", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.md")
		require.NoError(t, os.WriteFile(path, []byte("# Doc\n"), 0o600))

		content, info, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)

		assert.Equal(t, "# Doc\n", string(content))
		assert.Equal(t, path, info.Path)
		assert.Equal(t, int64(6), info.Size)
		assert.NotEqual(t, [32]byte{}, info.Hash)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), filepath.Join(t.TempDir(), "nope.md"))
		require.ErrorIs(t, err, fsutil.ErrNotFound)
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), t.TempDir())
		require.ErrorIs(t, err, fsutil.ErrIsDirectory)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := fsutil.ReadFile(ctx, "whatever.md")
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestReadFileLimit(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "big.md")
	require.NoError(t, os.WriteFile(path, make([]byte, 128), 0o600))

	_, _, err := fsutil.ReadFileLimit(context.Background(), path, 64)
	require.ErrorIs(t, err, fsutil.ErrTooLarge)

	content, _, err := fsutil.ReadFileLimit(context.Background(), path, 128)
	require.NoError(t, err)
	assert.Len(t, content, 128)
}

func TestCheckModified(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("unchanged", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.md")
		require.NoError(t, os.WriteFile(path, []byte("same"), 0o600))
		_, info, err := fsutil.ReadFile(ctx, path)
		require.NoError(t, err)

		modified, err := fsutil.CheckModified(ctx, info)
		require.NoError(t, err)
		assert.False(t, modified)
	})

	t.Run("content changed with same size and time", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.md")
		require.NoError(t, os.WriteFile(path, []byte("aaaa"), 0o600))
		_, info, err := fsutil.ReadFile(ctx, path)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(path, []byte("bbbb"), 0o600))
		require.NoError(t, os.Chtimes(path, time.Now(), info.ModTime))

		modified, err := fsutil.CheckModified(ctx, info)
		require.NoError(t, err)
		assert.True(t, modified)
	})

	t.Run("deleted", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.md")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
		_, info, err := fsutil.ReadFile(ctx, path)
		require.NoError(t, err)
		require.NoError(t, os.Remove(path))

		modified, err := fsutil.CheckModified(ctx, info)
		require.NoError(t, err)
		assert.True(t, modified)
	})

	t.Run("nil info", func(t *testing.T) {
		t.Parallel()

		_, err := fsutil.CheckModified(ctx, nil)
		require.ErrorIs(t, err, fsutil.ErrNilFileInfo)
	})
}

func TestXDGDirs(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/config")

	assert.Equal(t, filepath.Join("/tmp/state", "mdpad"), fsutil.StateDir("mdpad"))
	assert.Equal(t, filepath.Join("/tmp/config", "mdpad"), fsutil.ConfigDir("mdpad"))

	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("HOME", "/home/writer")
	assert.Equal(t, filepath.Join("/home/writer", ".local", "state", "mdpad"), fsutil.StateDir("mdpad"))
}
