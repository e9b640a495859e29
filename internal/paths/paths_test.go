package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigDir_Linux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-only test")
	}

	t.Run("uses XDG_CONFIG_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/xdg-config/depot", got)
	})

	t.Run("falls back to ~/.config when XDG unset", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".config", "depot"), got)
	})
}

func TestResolveConfigDir(t *testing.T) {
	t.Run("flag wins over env", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/tmp/env-config")
		got, err := ResolveConfigDir("/tmp/flag-config")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/flag-config", got)
	})

	t.Run("env wins over default", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/tmp/env-config")
		got, err := ResolveConfigDir("")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/env-config", got)
	})

	t.Run("relative flag becomes absolute", func(t *testing.T) {
		got, err := ResolveConfigDir("rel-config")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
	})
}

func TestResolveAssetDir(t *testing.T) {
	t.Run("flag wins over everything", func(t *testing.T) {
		t.Setenv(EnvAssetDir, "/tmp/env-assets")
		got, err := ResolveAssetDir("/tmp/flag-assets", "/tmp/cfg-assets")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/flag-assets", got)
	})

	t.Run("config value wins over env", func(t *testing.T) {
		t.Setenv(EnvAssetDir, "/tmp/env-assets")
		got, err := ResolveAssetDir("", "/tmp/cfg-assets")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/cfg-assets", got)
	})

	t.Run("env wins over CWD default", func(t *testing.T) {
		t.Setenv(EnvAssetDir, "/tmp/env-assets")
		got, err := ResolveAssetDir("", "")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/env-assets", got)
	})

	t.Run("defaults to CWD-relative assets dir", func(t *testing.T) {
		t.Setenv(EnvAssetDir, "")
		cwd, err := os.Getwd()
		require.NoError(t, err)

		got, err := ResolveAssetDir("", "")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(cwd, DefaultAssetDirName), got)
	})
}
