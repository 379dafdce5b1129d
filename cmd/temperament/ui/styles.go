// Package ui provides the visual styling for the temperament questionnaire.
// Palettes come in light and dark variants; the category colours are shared.
package ui

import (
	"os"
	"strconv"
	"strings"

	"temperament/internal/catalog"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Light Mode Colors (Default)
	LightForeground = lipgloss.Color("#111827") // gray-900
	LightPrimary    = lipgloss.Color("#3b82f6") // blue-500
	LightAccent     = lipgloss.Color("#2563eb") // blue-600
	LightMuted      = lipgloss.Color("#6b7280") // gray-500
	LightBorder     = lipgloss.Color("#e5e7eb") // gray-200

	// Dark Mode Colors
	DarkForeground = lipgloss.Color("#f3f4f6")
	DarkPrimary    = lipgloss.Color("#60a5fa") // blue-400
	DarkAccent     = lipgloss.Color("#93c5fd") // blue-300
	DarkMuted      = lipgloss.Color("#9ca3af") // gray-400
	DarkBorder     = lipgloss.Color("#374151") // gray-700

	// Semantic Colors (same in both modes)
	Destructive = lipgloss.Color("#e53935")

	// Category colors
	CategoryColors = map[catalog.Category]lipgloss.Color{
		catalog.Choleric:    lipgloss.Color("#ef4444"), // red
		catalog.Sanguine:    lipgloss.Color("#f59e0b"), // amber
		catalog.Melancholic: lipgloss.Color("#3b82f6"), // blue
		catalog.Phlegmatic:  lipgloss.Color("#10b981"), // green
	}
)

// Theme holds the current color scheme
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		IsDark:     true,
	}
}

// DetectTheme auto-detects based on terminal or returns light mode
func DetectTheme() Theme {
	// COLORFGBG is "foreground;background"; a background index of 0-6 or 8
	// is a dark terminal.
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
					return DarkTheme()
				}
			}
		}
	}

	if os.Getenv("TEMPERAMENT_DARK_MODE") == "1" {
		return DarkTheme()
	}

	return LightTheme()
}

// ThemeByName resolves a ui.theme config value. Anything other than
// "light" or "dark" falls back to detection.
func ThemeByName(name string) Theme {
	switch name {
	case "light":
		return LightTheme()
	case "dark":
		return DarkTheme()
	default:
		return DetectTheme()
	}
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	// Layout
	Card   lipgloss.Style
	Header lipgloss.Style
	Footer lipgloss.Style

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	// Checklist
	Cursor        lipgloss.Style
	Checked       lipgloss.Style
	Unchecked     lipgloss.Style
	SelectedLine  lipgloss.Style
	FocusedLine   lipgloss.Style
	PrimaryButton lipgloss.Style
	Button        lipgloss.Style
	DisabledBtn   lipgloss.Style

	// Results
	Badge lipgloss.Style
	Error lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			MarginTop(1),

		Title: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Cursor: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		Checked: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Unchecked: lipgloss.NewStyle().
			Foreground(theme.Muted),

		SelectedLine: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		FocusedLine: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		PrimaryButton: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2),

		Button: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Padding(0, 2),

		DisabledBtn: lipgloss.NewStyle().
			Foreground(theme.Border).
			Padding(0, 2),

		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),
	}
}

// DefaultStyles returns styles for the detected theme
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// CategoryBadge renders an uppercase pill for c in its category colour.
func (s Styles) CategoryBadge(c catalog.Category) string {
	color, ok := CategoryColors[c]
	if !ok {
		color = s.Theme.Muted
	}
	return s.Badge.Background(color).Render(strings.ToUpper(string(c)))
}

// RenderDivider returns a horizontal divider
func (s Styles) RenderDivider(width int) string {
	if width < 1 {
		width = 1
	}
	return s.Muted.Render(strings.Repeat("─", width))
}
