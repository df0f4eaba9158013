// Package xdg resolves where mockauth keeps its settings.
// MOCKAUTH_CONFIG_DIR wins over the XDG Base Directory lookup; otherwise the
// directory is $XDG_CONFIG_HOME/mockauth or ~/.config/mockauth.
package xdg

import (
	"os"
	"path/filepath"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "mockauth"

// EnvConfigDir overrides the config directory entirely.
const EnvConfigDir = "MOCKAUTH_CONFIG_DIR"

// ConfigDir returns the mockauth config directory, creating it with private
// permissions (0700) if missing.
func ConfigDir() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}

// ConfigPath returns the path of name inside ConfigDir.
func ConfigPath(name string) (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

func configDir() (string, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir, nil
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, AppName), nil
}
