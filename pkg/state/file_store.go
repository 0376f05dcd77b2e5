package state

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yaklabco/mdpad/pkg/fsutil"
)

// stateFileMode keeps documents private to the user.
const stateFileMode os.FileMode = 0o600

// FileStore keeps one JSON file per key in a directory. Writes are atomic, so
// a crash mid-save leaves the previous value intact.
type FileStore struct {
	dir string
}

// NewFileStore creates a FileStore rooted at dir. The directory is created on
// first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// DefaultDir returns the default state directory for mdpad.
func DefaultDir() string {
	return fsutil.StateDir("mdpad")
}

// Dir returns the directory the store writes to.
func (f *FileStore) Dir() string {
	return f.dir
}

// Path returns the file backing key.
func (f *FileStore) Path(key string) string {
	return filepath.Join(f.dir, sanitizeKey(key)+".json")
}

// Get implements Store.
func (f *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, _, err := fsutil.ReadFile(ctx, f.Path(key))
	if err != nil {
		if errors.Is(err, fsutil.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("state: read %s: %w", key, err)
	}
	return data, nil
}

// Set implements Store.
func (f *FileStore) Set(ctx context.Context, key string, value []byte) error {
	if err := fsutil.WriteAtomic(ctx, f.Path(key), value, stateFileMode); err != nil {
		return fmt.Errorf("state: write %s: %w", key, err)
	}
	return nil
}

// Delete implements Store.
func (f *FileStore) Delete(_ context.Context, key string) error {
	if err := os.Remove(f.Path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("state: delete %s: %w", key, err)
	}
	return nil
}

// Close implements Store.
func (f *FileStore) Close() error { return nil }

// sanitizeKey maps a key onto a safe file name.
func sanitizeKey(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		default:
			return '_'
		}
	}, key)
}
