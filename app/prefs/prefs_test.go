package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useConfigHome points the XDG config home to dir for the test
func useConfigHome(t *testing.T, dir string) {
	t.Helper()
	prev := xdg.ConfigHome
	xdg.ConfigHome = dir
	t.Cleanup(func() { xdg.ConfigHome = prev })
}

func writePrefs(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad(t *testing.T) {
	t.Run("missing file uses defaults", func(t *testing.T) {
		useConfigHome(t, t.TempDir())
		assert.Equal(t, Defaults(), Load(""))
	})
	t.Run("default path", func(t *testing.T) {
		configHome := t.TempDir()
		useConfigHome(t, configHome)
		writePrefs(t, filepath.Join(configHome, "word-lookup", "prefs.toml"),
			"player = \"ffplay -nodisp -autoexit\"\naccent = \"#ff79c6\"\n")
		p := Load("")
		assert.Equal(t, Prefs{Player: "ffplay -nodisp -autoexit", Accent: "#ff79c6"}, p)
		assert.Equal(t, []string{"ffplay", "-nodisp", "-autoexit"}, p.PlayerArgs())
	})
	t.Run("home relative path", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		writePrefs(t, filepath.Join(home, "dict.toml"), "player = \"vlc --intf dummy\"\n")
		assert.Equal(t, Prefs{Player: "vlc --intf dummy", Accent: defaultAccent}, Load("~/dict.toml"))
	})
	t.Run("explicit path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.toml")
		writePrefs(t, path, "accent = \"212\"\n")
		assert.Equal(t, Prefs{Player: defaultPlayer, Accent: "212"}, Load(path))
	})
	t.Run("empty values fall back", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prefs.toml")
		writePrefs(t, path, "player = \"  \"\naccent = \"\"\n")
		assert.Equal(t, Defaults(), Load(path))
	})
	t.Run("invalid toml falls back", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prefs.toml")
		writePrefs(t, path, "player = \"vlc\"\nnot valid toml {{{\n")
		assert.Equal(t, Defaults(), Load(path))
	})
}

func TestDefaultPath(t *testing.T) {
	useConfigHome(t, "/tmp/config")
	assert.Equal(t, "/tmp/config/word-lookup/prefs.toml", DefaultPath())
}
