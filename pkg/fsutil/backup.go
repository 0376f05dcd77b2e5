package fsutil

import (
	"context"
	"fmt"
	"os"
)

// BackupSuffix is appended to a path to form its sidecar backup.
const BackupSuffix = ".mdpad.bak"

// BackupPath returns the sidecar backup path for path.
func BackupPath(path string) string {
	return path + BackupSuffix
}

// CreateBackup copies path to its sidecar backup before it is overwritten.
// A missing original is not an error. An existing backup is replaced so it
// always holds the content from just before the latest write.
// Returns true if a backup was written.
func CreateBackup(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("create backup: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat original for backup: %w", err)
	}
	if stat.IsDir() {
		return false, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read original for backup: %w", err)
	}

	if err := WriteAtomic(ctx, BackupPath(path), content, stat.Mode()); err != nil {
		return false, fmt.Errorf("write backup: %w", err)
	}

	return true, nil
}

// BackupExists reports whether a sidecar backup exists for path.
func BackupExists(path string) bool {
	_, err := os.Stat(BackupPath(path))
	return err == nil
}
