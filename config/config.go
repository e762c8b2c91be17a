// Package config loads and persists editor settings as JSON under the
// user's config directory.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
)

// Config holds the user-tunable editor settings.
type Config struct {
	TabSize        int    `json:"tab_size"`
	Theme          string `json:"theme"`
	LineNumbers    bool   `json:"line_numbers"`
	ScrollPadding  int    `json:"scroll_padding"`
	RestoreSession bool   `json:"restore_session"`
}

// Theme maps the editor's drawing surfaces to tcell styles.
type Theme struct {
	Text       tcell.Style
	Selection  tcell.Style
	LineNumber tcell.Style
	StatusBar  tcell.Style
	StatusErr  tcell.Style
	Clip       tcell.Style
}

var themes = map[string]Theme{
	"default": {
		Text:       tcell.StyleDefault,
		Selection:  tcell.StyleDefault.Reverse(true),
		LineNumber: tcell.StyleDefault.Foreground(tcell.ColorGray),
		StatusBar:  tcell.StyleDefault.Reverse(true),
		StatusErr:  tcell.StyleDefault.Reverse(true).Foreground(tcell.ColorRed),
		Clip:       tcell.StyleDefault.Foreground(tcell.ColorYellow),
	},
	"mono": {
		Text:       tcell.StyleDefault,
		Selection:  tcell.StyleDefault.Reverse(true),
		LineNumber: tcell.StyleDefault.Dim(true),
		StatusBar:  tcell.StyleDefault.Bold(true),
		StatusErr:  tcell.StyleDefault.Bold(true).Underline(true),
		Clip:       tcell.StyleDefault.Dim(true),
	},
	"ocean": {
		Text:       tcell.StyleDefault.Foreground(tcell.NewHexColor(0xc0caf5)),
		Selection:  tcell.StyleDefault.Background(tcell.NewHexColor(0x33467c)),
		LineNumber: tcell.StyleDefault.Foreground(tcell.NewHexColor(0x3b4261)),
		StatusBar:  tcell.StyleDefault.Background(tcell.NewHexColor(0x33467c)).Foreground(tcell.NewHexColor(0xc0caf5)),
		StatusErr:  tcell.StyleDefault.Background(tcell.NewHexColor(0x33467c)).Foreground(tcell.NewHexColor(0xf7768e)),
		Clip:       tcell.StyleDefault.Foreground(tcell.NewHexColor(0xe0af68)),
	},
}

func Default() *Config {
	return &Config{
		TabSize:        4,
		Theme:          "default",
		LineNumbers:    true,
		ScrollPadding:  4,
		RestoreSession: true,
	}
}

// GetTheme resolves the configured theme name, falling back to the default
// theme for unknown names.
func (c *Config) GetTheme() Theme {
	if t, ok := themes[c.Theme]; ok {
		return t
	}
	return themes["default"]
}

// ConfigPath returns the settings file location, creating nothing.
func ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "nib", "settings.json"), nil
}

// Load reads the settings file, falling back to defaults when it does not
// exist. Fields absent from the file keep their default values.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.TabSize <= 0 {
		cfg.TabSize = 4
	}
	if cfg.ScrollPadding < 0 {
		cfg.ScrollPadding = 0
	}
	return cfg, nil
}

// Save writes the settings back to disk, creating the config directory if
// needed.
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
