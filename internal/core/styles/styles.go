// Package styles provides shared lipgloss styles for the CLI and TUI.
package styles

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Surface    lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color

	// Glamour names the glamour standard style used for markdown panels.
	Glamour string
}

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Style exports.
var (
	CommandHeaderStyle lipgloss.Style
	DividerStyle       lipgloss.Style

	PanelTitleStyle  lipgloss.Style
	PanelFrameStyle  lipgloss.Style
	PanelDimStyle    lipgloss.Style
	HeadlineStyle    lipgloss.Style
	CursorStyle      lipgloss.Style
	PlaceholderStyle lipgloss.Style

	FooterStyle     lipgloss.Style
	BreadcrumbStyle lipgloss.Style
	ProgressStyle   lipgloss.Style
	HelpStyle       lipgloss.Style

	ToastInfoStyle    lipgloss.Style
	ToastWarningStyle lipgloss.Style
	ToastErrorStyle   lipgloss.Style
)

func init() {
	p, _ := GetPalette(DefaultTheme)
	SetTheme(p)
}

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	DividerStyle = lipgloss.NewStyle().
		Foreground(p.Muted)

	PanelTitleStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true).
		Padding(0, 1)
	PanelFrameStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)
	PanelDimStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Faint(true)
	HeadlineStyle = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Bold(true)
	CursorStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Blink(true)
	PlaceholderStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)

	FooterStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Padding(0, 1)
	BreadcrumbStyle = lipgloss.NewStyle().
		Foreground(p.Foreground).
		Bold(true)
	ProgressStyle = lipgloss.NewStyle().
		Foreground(p.Primary)
	HelpStyle = lipgloss.NewStyle().
		Foreground(p.Muted)

	toast := lipgloss.NewStyle().
		Padding(0, 1).
		Bold(true)
	ToastInfoStyle = toast.
		Background(p.Success).
		Foreground(p.Background)
	ToastWarningStyle = toast.
		Background(p.Warning).
		Foreground(p.Background)
	ToastErrorStyle = toast.
		Background(p.Error).
		Foreground(p.Background)
}

// GlamourStyle returns the glamour standard style name for the active theme.
func GlamourStyle() string {
	if CurrentPalette.Glamour == "" {
		return "dark"
	}
	return CurrentPalette.Glamour
}

// FormTheme returns a huh theme matching the active palette.
func FormTheme() *huh.Theme {
	t := huh.ThemeBase()
	p := CurrentPalette

	t.Focused.Title = t.Focused.Title.Foreground(p.Primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(p.Muted)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(p.Primary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(p.Secondary)
	t.Focused.Option = t.Focused.Option.Foreground(p.Foreground)
	t.Blurred = t.Focused

	return t
}
