package state

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Backend names a Store implementation.
type Backend string

// Supported backends.
const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

// ErrUnknownBackend is returned by Open for unsupported backend names.
var ErrUnknownBackend = errors.New("state: unknown backend")

// sqliteFileName is the database name used when only a directory is given.
const sqliteFileName = "mdpad.db"

// Open returns the Store for backend. For the file backend path is a
// directory; for sqlite it is the database file, or a directory to hold
// mdpad.db. An empty path uses DefaultDir.
func Open(backend Backend, path string) (Store, error) {
	if path == "" {
		path = DefaultDir()
	}

	switch backend {
	case BackendFile, "":
		return NewFileStore(path), nil
	case BackendSQLite:
		if filepath.Ext(path) == "" {
			path = filepath.Join(path, sqliteFileName)
		}
		return OpenSQLite(path)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// Location describes where store keeps key, for display.
func Location(store Store, key string) string {
	switch s := store.(type) {
	case *FileStore:
		return s.Path(key)
	case *SQLiteStore:
		return s.Path() + "#" + key
	default:
		return "memory"
	}
}
