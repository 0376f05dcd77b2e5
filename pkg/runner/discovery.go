package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Discover resolves opts.Paths to a sorted, de-duplicated list of absolute
// file paths. Hidden files and directories inside walked trees are skipped.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	w := walker{ctx: ctx, workDir: workDir, opts: opts, exts: opts.effectiveExtensions(), seen: map[string]struct{}{}}

	for _, input := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		abs := input
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(workDir, abs)
		}
		abs = filepath.Clean(abs)

		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", input, err)
		}

		if info.IsDir() {
			if err := w.walk(abs); err != nil {
				return nil, err
			}
			continue
		}
		if !w.excluded(abs) {
			w.add(abs)
		}
	}

	slices.Sort(w.files)
	return w.files, nil
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return abs, nil
}

type walker struct {
	ctx     context.Context //nolint:containedctx // Scoped to one Discover call
	workDir string
	opts    Options
	exts    []string
	seen    map[string]struct{}
	files   []string
}

func (w *walker) add(path string) {
	if _, ok := w.seen[path]; ok {
		return
	}
	w.seen[path] = struct{}{}
	w.files = append(w.files, path)
}

func (w *walker) walk(root string) error {
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := w.ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		hidden := path != root && strings.HasPrefix(entry.Name(), ".")

		if entry.IsDir() {
			if hidden || w.excluded(path) {
				return filepath.SkipDir
			}
			return nil
		}
		if hidden {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			target, err := filepath.EvalSymlinks(path)
			if err != nil {
				return nil //nolint:nilerr // Broken symlinks are skipped
			}
			info, err := os.Stat(target)
			if err != nil {
				return nil //nolint:nilerr // Unreadable targets are skipped
			}
			if info.IsDir() {
				if !w.opts.FollowSymlinks {
					return nil
				}
				return w.walk(target)
			}
		}

		if w.hasExtension(path) && !w.excluded(path) {
			w.add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk directory %s: %w", root, err)
	}
	return nil
}

func (w *walker) hasExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range w.exts {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

func (w *walker) excluded(path string) bool {
	rel, err := filepath.Rel(w.workDir, path)
	if err != nil {
		rel = path
	}
	for _, pattern := range w.opts.ExcludeGlobs {
		if matchGlob(rel, pattern) {
			return true
		}
	}
	return false
}

// matchGlob matches a slash-separated relative path against pattern.
// Besides filepath.Match syntax it understands "dir/**" (anything under dir)
// and "**/name" (name at any depth). Patterns without a slash also match the
// base name.
func matchGlob(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if pattern == "**" {
		return true
	}
	if prefix, ok := strings.CutSuffix(pattern, "/**"); ok {
		if !strings.Contains(prefix, "**") {
			return path == prefix || strings.HasPrefix(path, prefix+"/") || matchAnySegmentPrefix(path, prefix)
		}
	}
	if suffix, ok := strings.CutPrefix(pattern, "**/"); ok {
		parts := strings.Split(path, "/")
		for i := range parts {
			if matchGlob(strings.Join(parts[i:], "/"), suffix) {
				return true
			}
		}
		return false
	}

	if ok, _ := filepath.Match(pattern, path); ok {
		return true
	}
	if !strings.Contains(pattern, "/") {
		ok, _ := filepath.Match(pattern, filepath.Base(path))
		return ok
	}
	return false
}

// matchAnySegmentPrefix reports whether the leading segments of path match a
// wildcard prefix such as "docs/*".
func matchAnySegmentPrefix(path, prefix string) bool {
	n := strings.Count(prefix, "/") + 1
	parts := strings.Split(path, "/")
	if len(parts) < n {
		return false
	}
	ok, _ := filepath.Match(prefix, strings.Join(parts[:n], "/"))
	return ok
}
