// Package themes provides the color palette and lipgloss styles shared by
// the browser TUI, interactive forms, and error rendering.
package themes

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ColorPalette defines the colors a theme draws from.
type ColorPalette struct {
	// Brand colors
	Primary lipgloss.AdaptiveColor
	Accent  lipgloss.AdaptiveColor

	// Semantic colors
	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
	Info    lipgloss.AdaptiveColor

	// Text colors
	Text       lipgloss.AdaptiveColor
	TextMuted  lipgloss.AdaptiveColor
	TextSubtle lipgloss.AdaptiveColor

	// Border and selection colors
	Border      lipgloss.AdaptiveColor
	BorderFocus lipgloss.AdaptiveColor
	Selection   lipgloss.AdaptiveColor
}

// DarkPalette returns the default palette for dark terminals.
func DarkPalette() ColorPalette {
	return ColorPalette{
		Primary:     lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#F59E0B"},
		Accent:      lipgloss.AdaptiveColor{Light: "#0F766E", Dark: "#2DD4BF"},
		Success:     lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"},
		Warning:     lipgloss.AdaptiveColor{Light: "#A16207", Dark: "#FACC15"},
		Error:       lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"},
		Info:        lipgloss.AdaptiveColor{Light: "#0369A1", Dark: "#38BDF8"},
		Text:        lipgloss.AdaptiveColor{Light: "#1C1917", Dark: "#F5F5F4"},
		TextMuted:   lipgloss.AdaptiveColor{Light: "#57534E", Dark: "#A8A29E"},
		TextSubtle:  lipgloss.AdaptiveColor{Light: "#A8A29E", Dark: "#57534E"},
		Border:      lipgloss.AdaptiveColor{Light: "#E7E5E4", Dark: "#44403C"},
		BorderFocus: lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#F59E0B"},
		Selection:   lipgloss.AdaptiveColor{Light: "#FEF3C7", Dark: "#451A03"},
	}
}

// LightPalette returns the palette for light terminals.
func LightPalette() ColorPalette {
	return ColorPalette{
		Primary:     lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#B45309"},
		Accent:      lipgloss.AdaptiveColor{Light: "#0F766E", Dark: "#0F766E"},
		Success:     lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#15803D"},
		Warning:     lipgloss.AdaptiveColor{Light: "#A16207", Dark: "#A16207"},
		Error:       lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#B91C1C"},
		Info:        lipgloss.AdaptiveColor{Light: "#0369A1", Dark: "#0369A1"},
		Text:        lipgloss.AdaptiveColor{Light: "#1C1917", Dark: "#1C1917"},
		TextMuted:   lipgloss.AdaptiveColor{Light: "#57534E", Dark: "#57534E"},
		TextSubtle:  lipgloss.AdaptiveColor{Light: "#A8A29E", Dark: "#A8A29E"},
		Border:      lipgloss.AdaptiveColor{Light: "#E7E5E4", Dark: "#E7E5E4"},
		BorderFocus: lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#B45309"},
		Selection:   lipgloss.AdaptiveColor{Light: "#FEF3C7", Dark: "#FEF3C7"},
	}
}

// Theme bundles the styles the browser and status output share.
type Theme struct {
	// Name is the theme identifier
	Name string

	// Palette is the color palette for this theme
	Palette ColorPalette

	// Heading styles
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Status styles
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// List styles
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Count    lipgloss.Style

	// Pane styles
	Pane      lipgloss.Style
	PaneFocus lipgloss.Style
	PaneTitle lipgloss.Style

	// Tree styles
	TreeBranch lipgloss.Style

	// Footer styles
	StatusBar lipgloss.Style
	Help      lipgloss.Style
	HelpKey   lipgloss.Style
}

// buildStyles derives every style from the palette.
func (t *Theme) buildStyles() {
	p := t.Palette

	t.Title = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	t.Subtitle = lipgloss.NewStyle().Foreground(p.Accent).Bold(true)

	t.Success = lipgloss.NewStyle().Foreground(p.Success).Bold(true)
	t.Error = lipgloss.NewStyle().Foreground(p.Error).Bold(true)
	t.Warning = lipgloss.NewStyle().Foreground(p.Warning).Bold(true)
	t.Info = lipgloss.NewStyle().Foreground(p.Info)

	t.Selected = lipgloss.NewStyle().Foreground(p.Primary).Background(p.Selection).Bold(true)
	t.Muted = lipgloss.NewStyle().Foreground(p.TextMuted)
	t.Count = lipgloss.NewStyle().Foreground(p.TextSubtle)

	t.Pane = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)
	t.PaneFocus = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.BorderFocus).
		Padding(0, 1)
	t.PaneTitle = lipgloss.NewStyle().Foreground(p.Accent).Bold(true)

	t.TreeBranch = lipgloss.NewStyle().Foreground(p.TextSubtle)

	t.StatusBar = lipgloss.NewStyle().Foreground(p.TextMuted)
	t.Help = lipgloss.NewStyle().Foreground(p.TextSubtle)
	t.HelpKey = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
}

// HuhTheme returns a huh.Theme derived from this theme's palette, used by
// the interactive book forms and confirmation prompts.
func (t *Theme) HuhTheme() *huh.Theme {
	ht := huh.ThemeBase()
	p := t.Palette

	ht.Focused.Title = ht.Focused.Title.Foreground(p.Primary).Bold(true)
	ht.Focused.Description = ht.Focused.Description.Foreground(p.TextMuted)
	ht.Focused.Base = ht.Focused.Base.BorderForeground(p.Primary)
	ht.Focused.SelectedOption = ht.Focused.SelectedOption.Foreground(p.Primary)
	ht.Focused.SelectSelector = ht.Focused.SelectSelector.Foreground(p.Primary)
	ht.Focused.TextInput.Cursor = ht.Focused.TextInput.Cursor.Foreground(p.Primary)
	ht.Focused.TextInput.Placeholder = ht.Focused.TextInput.Placeholder.Foreground(p.TextSubtle)

	ht.Blurred.Title = ht.Blurred.Title.Foreground(p.TextMuted)
	ht.Blurred.Description = ht.Blurred.Description.Foreground(p.TextSubtle)

	return ht
}

// buildTheme creates a Theme from a palette.
func buildTheme(name string, palette ColorPalette) *Theme {
	t := &Theme{
		Name:    name,
		Palette: palette,
	}
	t.buildStyles()
	return t
}

// Dark returns the dark theme.
func Dark() *Theme {
	return buildTheme("dark", DarkPalette())
}

// Light returns the light theme.
func Light() *Theme {
	return buildTheme("light", LightPalette())
}

// Detect picks the dark or light theme based on the terminal background.
func Detect() *Theme {
	if lipgloss.HasDarkBackground() {
		return Dark()
	}
	return Light()
}
