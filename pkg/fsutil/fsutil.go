// Package fsutil provides the file system primitives mdpad builds on:
// size-limited reads with content hashing, atomic writes, sidecar backups and
// XDG directory resolution.
package fsutil

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNilFileInfo is returned when a nil FileInfo is passed.
	ErrNilFileInfo = errors.New("nil FileInfo")

	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrTooLarge indicates the file exceeds the requested size limit.
	ErrTooLarge = errors.New("file too large")
)

// FileInfo captures the state of a file at the moment it was read.
// The editor keeps it to detect external edits before writing back.
type FileInfo struct {
	Path    string
	Mode    os.FileMode
	ModTime time.Time
	Size    int64

	// Hash is the SHA-256 of the content that was read.
	Hash [32]byte
}

// ReadFile reads a whole file and returns its content with metadata.
func ReadFile(ctx context.Context, path string) ([]byte, *FileInfo, error) {
	return ReadFileLimit(ctx, path, 0)
}

// ReadFileLimit is ReadFile that refuses files larger than limit bytes.
// A limit of zero or less disables the check.
func ReadFileLimit(ctx context.Context, path string, limit int64) ([]byte, *FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, nil, classify(path, err)
	}
	if stat.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	if limit > 0 && stat.Size() > limit {
		return nil, nil, fmt.Errorf("%w: %s is %d bytes (limit %d)", ErrTooLarge, path, stat.Size(), limit)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, nil, classify(path, err)
	}
	defer func() { _ = file.Close() }()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	return content, &FileInfo{
		Path:    path,
		Mode:    stat.Mode(),
		ModTime: stat.ModTime(),
		Size:    stat.Size(),
		Hash:    sha256.Sum256(content),
	}, nil
}

func classify(path string, err error) error {
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	case os.IsPermission(err):
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("stat %s: %w", path, err)
	}
}

// CheckModified reports whether the file changed since info was captured.
// Mod time and size are compared first; if they match the content is
// re-hashed. A deleted file counts as modified.
func CheckModified(ctx context.Context, info *FileInfo) (bool, error) {
	if info == nil {
		return false, ErrNilFileInfo
	}
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("check modified: %w", err)
	}

	stat, err := os.Stat(info.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, fmt.Errorf("stat %s: %w", info.Path, err)
	}

	if !stat.ModTime().Equal(info.ModTime) || stat.Size() != info.Size {
		return true, nil
	}

	content, err := os.ReadFile(info.Path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", info.Path, err)
	}

	return sha256.Sum256(content) != info.Hash, nil
}
