package config

// Theme names accepted by ui.theme.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ValidThemes lists the accepted ui.theme values.
var ValidThemes = []string{ThemeAuto, ThemeLight, ThemeDark}

// UIConfig holds user interface configuration.
type UIConfig struct {
	// Theme is "auto" (detect from the terminal), "light" or "dark"
	Theme string `json:"theme" yaml:"theme"`

	// AltScreen runs the questionnaire in the terminal's alternate screen
	AltScreen bool `json:"alt_screen" yaml:"alt_screen"`
}

// DefaultUIConfig returns sensible UI defaults.
func DefaultUIConfig() *UIConfig {
	return &UIConfig{
		Theme:     ThemeAuto,
		AltScreen: true,
	}
}
