package config

// Theme names accepted by ui.theme.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ValidThemes lists all supported themes.
var ValidThemes = []string{ThemeAuto, ThemeLight, ThemeDark}

// UIConfig holds user interface configuration.
type UIConfig struct {
	// Theme selects the color palette. "auto" detects it from the terminal.
	Theme string `yaml:"theme" json:"theme"`
}

// DefaultUIConfig returns sensible UI defaults.
func DefaultUIConfig() UIConfig {
	return UIConfig{Theme: ThemeAuto}
}
