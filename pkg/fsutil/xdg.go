package fsutil

import (
	"os"
	"path/filepath"
)

// StateDir returns $XDG_STATE_HOME/app, falling back to ~/.local/state/app.
// When no home directory is known it returns a directory under os.TempDir.
func StateDir(app string) string {
	return xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state"), app)
}

// ConfigDir returns $XDG_CONFIG_HOME/app, falling back to ~/.config/app.
func ConfigDir(app string) string {
	return xdgDir("XDG_CONFIG_HOME", ".config", app)
}

func xdgDir(env, fallback, app string) string {
	if base := os.Getenv(env); base != "" {
		return filepath.Join(base, app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(os.TempDir(), app)
	}
	return filepath.Join(home, fallback, app)
}
