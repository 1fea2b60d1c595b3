// Package prefs loads terminal UI preferences. The default file is
// prefs.toml in the word-lookup directory of the XDG config home.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
)

// Prefs holds terminal UI preferences
type Prefs struct {
	// Player is the command the pronunciation URL is appended to
	Player string `toml:"player"`
	// Accent is the lipgloss colour of headings
	Accent string `toml:"accent"`
}

const (
	appName       = "word-lookup"
	prefsFile     = "prefs.toml"
	defaultPlayer = "mpv --no-video --really-quiet"
	defaultAccent = "#bd93f9"
)

// Defaults returns preferences used when nothing is configured
func Defaults() Prefs {
	return Prefs{Player: defaultPlayer, Accent: defaultAccent}
}

// DefaultPath returns the default preferences file path.
// On Linux: ~/.config/word-lookup/prefs.toml
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appName, prefsFile)
}

// PlayerArgs splits the player command into program and arguments
func (p Prefs) PlayerArgs() []string {
	return strings.Fields(p.Player)
}

// Load reads preferences from the path, falling back to defaults for a
// missing or broken file and for empty values
func Load(path string) Prefs {
	prefs := Defaults()
	resolved, err := resolvePath(path)
	if err != nil {
		log.Warn().Err(err).Msg("failed to resolve prefs path")
		return prefs
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", resolved).Msg("failed to read prefs")
		}
		return prefs
	}
	if err := toml.Unmarshal(data, &prefs); err != nil {
		log.Warn().Err(err).Str("path", resolved).Msg("failed to parse prefs")
		return Defaults()
	}

	if strings.TrimSpace(prefs.Player) == "" {
		prefs.Player = defaultPlayer
	}
	if strings.TrimSpace(prefs.Accent) == "" {
		prefs.Accent = defaultAccent
	}
	return prefs
}

func resolvePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return DefaultPath(), nil
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
