package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Theme holds the color palette for the container chrome. Skins are
// plain YAML files with one key per slot.
type Theme struct {
	TabActiveFG   string `yaml:"tab-active-fg"`
	TabActiveBG   string `yaml:"tab-active-bg"`
	TabInactiveFG string `yaml:"tab-inactive-fg"`
	BarFG         string `yaml:"bar-fg"`
	BarBG         string `yaml:"bar-bg"`
	AccentFG      string `yaml:"accent-fg"`
}

// DefaultTheme is the built-in palette used when no skin is configured
// or a skin file fails to load.
func DefaultTheme() Theme {
	return Theme{
		TabActiveFG:   "230",
		TabActiveBG:   "62",
		TabInactiveFG: "243",
		BarFG:         "230",
		BarBG:         "24",
		AccentFG:      "203",
	}
}

var currentTheme = DefaultTheme()

// InitializeTheme loads the named skin from configDir/skins/<name>.yml
// and installs it as the active theme. An empty name keeps the default.
func InitializeTheme(name, configDir string) error {
	currentTheme = DefaultTheme()
	if name == "" {
		return nil
	}

	path := filepath.Join(configDir, "skins", name+".yml")
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load skin %q: %w", name, err)
	}

	theme := DefaultTheme()
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return fmt.Errorf("parse skin %q: %w", name, err)
	}

	currentTheme = theme
	return nil
}

// ActiveTheme returns the currently installed theme.
func ActiveTheme() Theme { return currentTheme }

func (t Theme) tabActiveStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.TabActiveFG)).
		Background(lipgloss.Color(t.TabActiveBG)).
		Bold(true).
		Padding(0, 1)
}

func (t Theme) tabInactiveStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.TabInactiveFG)).
		Padding(0, 1)
}

func (t Theme) barStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.BarFG)).
		Background(lipgloss.Color(t.BarBG))
}

func (t Theme) accentStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.AccentFG))
}
