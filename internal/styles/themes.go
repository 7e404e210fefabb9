package styles

import (
	"regexp"
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme names.
const (
	DarkThemeName  = "dark"
	LightThemeName = "light"
)

// themeMu protects access to themeRegistry and currentTheme for thread safety
var themeMu sync.RWMutex

// hexColorRegex validates hex color codes (#RRGGBB or #RRGGBBAA with alpha)
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}([0-9A-Fa-f]{2})?$`)

// ColorPalette holds all theme colors
type ColorPalette struct {
	// Brand colors
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`

	// Status colors
	Success string `json:"success"`
	Warning string `json:"warning"`
	Error   string `json:"error"`

	// Text colors
	TextPrimary   string `json:"textPrimary"`
	TextSecondary string `json:"textSecondary"`
	TextMuted     string `json:"textMuted"` // placeholders and hints

	// Background colors
	BgPrimary   string `json:"bgPrimary"`   // screen background
	BgSecondary string `json:"bgSecondary"` // surfaces
	BgTertiary  string `json:"bgTertiary"`  // cards and selected rows

	// Border colors
	BorderNormal string `json:"borderNormal"`
	BorderActive string `json:"borderActive"`

	ToastText string `json:"toastText"`

	// Glamour style name for note previews
	MarkdownTheme string `json:"markdownTheme"`
}

// Theme represents a complete theme configuration
type Theme struct {
	Name        string       `json:"name"`
	DisplayName string       `json:"displayName"`
	Dark        bool         `json:"dark"`
	Colors      ColorPalette `json:"colors"`
}

// Built-in themes
var (
	DarkTheme = Theme{
		Name:        DarkThemeName,
		DisplayName: "Dark",
		Dark:        true,
		Colors: ColorPalette{
			Primary:   "#FF453A",
			Secondary: "#5E5CE6",
			Accent:    "#FF9F0A",

			Success: "#30D158",
			Warning: "#FF9F0A",
			Error:   "#FF453A",

			TextPrimary:   "#FFFFFF",
			TextSecondary: "#8E8E93",
			TextMuted:     "#636366",

			BgPrimary:   "#000000",
			BgSecondary: "#1C1C1E",
			BgTertiary:  "#2C2C2E",

			BorderNormal: "#38383A",
			BorderActive: "#FF453A",

			ToastText: "#000000",

			MarkdownTheme: "dark",
		},
	}

	LightTheme = Theme{
		Name:        LightThemeName,
		DisplayName: "Light",
		Colors: ColorPalette{
			Primary:   "#FF3B30",
			Secondary: "#5856D6",
			Accent:    "#FF9500",

			Success: "#34C759",
			Warning: "#FF9500",
			Error:   "#FF3B30",

			TextPrimary:   "#000000",
			TextSecondary: "#666666",
			TextMuted:     "#8E8E93",

			BgPrimary:   "#F8F9FA",
			BgSecondary: "#FFFFFF",
			BgTertiary:  "#E5E5EA",

			BorderNormal: "#E5E5EA",
			BorderActive: "#FF3B30",

			ToastText: "#FFFFFF",

			MarkdownTheme: "light",
		},
	}
)

// themeRegistry holds all available themes
var themeRegistry = map[string]Theme{
	DarkThemeName:  DarkTheme,
	LightThemeName: LightTheme,
}

// currentTheme tracks the active theme name
var currentTheme = DarkThemeName

// IsValidHexColor checks if a string is a valid hex color code (#RRGGBB or #RRGGBBAA)
func IsValidHexColor(hex string) bool {
	return hexColorRegex.MatchString(hex)
}

// IsValidTheme checks if a theme name exists in the registry
func IsValidTheme(name string) bool {
	themeMu.RLock()
	defer themeMu.RUnlock()
	_, ok := themeRegistry[name]
	return ok
}

// GetTheme returns a theme by name, or the dark theme if not found
func GetTheme(name string) Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	if theme, ok := themeRegistry[name]; ok {
		return theme
	}
	return DarkTheme
}

// GetCurrentTheme returns the currently active theme
func GetCurrentTheme() Theme {
	themeMu.RLock()
	name := currentTheme
	themeMu.RUnlock()
	return GetTheme(name)
}

// ListThemes returns the names of all available themes in sorted order
func ListThemes() []string {
	themeMu.RLock()
	defer themeMu.RUnlock()
	names := make([]string, 0, len(themeRegistry))
	for name := range themeRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ForMode returns the theme name for a dark mode flag.
func ForMode(dark bool) string {
	if dark {
		return DarkThemeName
	}
	return LightThemeName
}

// ApplyTheme applies a theme by name, updating all style variables
func ApplyTheme(name string) {
	theme := GetTheme(name)
	ApplyThemeColors(theme)
	themeMu.Lock()
	currentTheme = theme.Name
	themeMu.Unlock()
}

// ApplyThemeColors updates the color variables and rebuilds styles.
func ApplyThemeColors(theme Theme) {
	c := theme.Colors

	Primary = lipgloss.Color(c.Primary)
	Secondary = lipgloss.Color(c.Secondary)
	Accent = lipgloss.Color(c.Accent)

	Success = lipgloss.Color(c.Success)
	Warning = lipgloss.Color(c.Warning)
	Error = lipgloss.Color(c.Error)

	TextPrimary = lipgloss.Color(c.TextPrimary)
	TextSecondary = lipgloss.Color(c.TextSecondary)
	TextMuted = lipgloss.Color(c.TextMuted)

	BgPrimary = lipgloss.Color(c.BgPrimary)
	BgSecondary = lipgloss.Color(c.BgSecondary)
	BgTertiary = lipgloss.Color(c.BgTertiary)

	BorderNormal = lipgloss.Color(c.BorderNormal)
	BorderActive = lipgloss.Color(c.BorderActive)

	ToastTextColor = lipgloss.Color(c.ToastText)

	CurrentMarkdownTheme = c.MarkdownTheme

	rebuildStyles()
}

// GetMarkdownTheme returns the glamour style for the active theme.
func GetMarkdownTheme() string {
	return CurrentMarkdownTheme
}

func init() {
	ApplyTheme(DarkThemeName)
}
