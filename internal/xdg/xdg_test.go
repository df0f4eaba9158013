package xdg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDir(t *testing.T) {
	tests := []struct {
		name     string
		override bool
		xdgHome  bool
		want     func(tmp string) string
	}{
		{
			name:     "explicit override wins",
			override: true,
			xdgHome:  true,
			want:     func(tmp string) string { return filepath.Join(tmp, "override") },
		},
		{
			name:    "XDG_CONFIG_HOME",
			xdgHome: true,
			want:    func(tmp string) string { return filepath.Join(tmp, "xdg", AppName) },
		},
		{
			name: "home fallback",
			want: func(tmp string) string { return filepath.Join(tmp, "home", ".config", AppName) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmp := t.TempDir()
			t.Setenv("HOME", filepath.Join(tmp, "home"))
			t.Setenv(EnvConfigDir, "")
			t.Setenv("XDG_CONFIG_HOME", "")
			if tt.override {
				t.Setenv(EnvConfigDir, filepath.Join(tmp, "override"))
			}
			if tt.xdgHome {
				t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "xdg"))
			}

			dir, err := ConfigDir()
			require.NoError(t, err)
			assert.Equal(t, tt.want(tmp), dir)

			info, err := os.Stat(dir)
			require.NoError(t, err)
			assert.True(t, info.IsDir())
			assert.Equal(t, os.FileMode(0o700), info.Mode().Perm())
		})
	}
}

func TestConfigPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cfg")
	t.Setenv(EnvConfigDir, dir)

	p, err := ConfigPath("config.json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.json"), p)
}
