package main

import (
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	goghthemes "github.com/willyv3/gogh-themes"
)

const defaultThemeName = "Dracula"

// Theme provides all colors for the application.
type Theme struct {
	// Base colors
	Background string
	Foreground string
	Subtle     string

	// Semantic colors
	Blue   string // titles
	Green  string // glyph output
	Red    string // errors, unmatched characters
	Yellow string // warnings, punctuation
	Purple string // numerals
	Cyan   string // separators
	Gray   string // labels, muted text
	Dark   string

	// Cartouche frame and alphabet grid cells
	Frame   string
	CellBg  string
	CellAlt string
}

// themes registry - all themes from gogh-themes package
var themes = make(map[string]Theme)

// CurrentTheme is the active theme
var CurrentTheme Theme

// currentThemeName tracks the current theme name for cycling
var currentThemeName string

// themeOrder defines the order for cycling through themes
var themeOrder []string

// InitTheme loads the registry and activates the named theme. An empty name
// falls back to HIEROTUI_THEME, then to Dracula. A theme file, when given,
// is registered under its own name and wins over everything else.
func InitTheme(name, file string) error {
	loadAllThemes()

	if file == "" {
		file = os.Getenv("HIEROTUI_THEME_FILE")
	}
	if file != "" {
		yt, err := LoadThemeFromYAML(file)
		if err != nil {
			return err
		}
		name = themeKey(yt.Name)
		themes[name] = yt.ConvertToTheme()
		log.Printf("theme: loaded %q from %s", name, file)
	}

	buildThemeOrder()

	if name == "" {
		name = os.Getenv("HIEROTUI_THEME")
	}
	if name == "" {
		name = defaultThemeName
	}

	theme, exists := themes[name]
	if !exists {
		log.Printf("theme: %q not found, using first available", name)
		if len(themeOrder) > 0 {
			name = themeOrder[0]
			theme = themes[name]
		}
	}

	CurrentTheme = theme
	currentThemeName = name
	InitStyles()
	return nil
}

// loadAllThemes loads all themes from gogh-themes package
func loadAllThemes() {
	for name, gt := range goghthemes.All() {
		themes[name] = Theme{
			Background: gt.Background,
			Foreground: gt.Foreground,
			Subtle:     generateShade(gt.Background, 1.3), // 30% brighter

			Blue:   gt.Blue,
			Green:  gt.Green,
			Red:    gt.Red,
			Yellow: gt.Yellow,
			Purple: gt.Magenta,
			Cyan:   gt.Cyan,
			Gray:   gt.White,
			Dark:   gt.Black,

			Frame:   gt.BrightYellow,
			CellBg:  generateShade(gt.Background, 1.6),
			CellAlt: generateShade(gt.Background, 2.0),
		}
	}
}

// buildThemeOrder creates alphabetically sorted theme cycling order
func buildThemeOrder() {
	themeOrder = make([]string, 0, len(themes))
	for name := range themes {
		themeOrder = append(themeOrder, name)
	}
	sort.Strings(themeOrder)
}

// NextTheme cycles to the next theme in the rotation
func NextTheme() string {
	if len(themeOrder) == 0 {
		return currentThemeName
	}

	currentIndex := 0
	for i, name := range themeOrder {
		if name == currentThemeName {
			currentIndex = i
			break
		}
	}

	nextIndex := (currentIndex + 1) % len(themeOrder)
	nextThemeName := themeOrder[nextIndex]

	CurrentTheme = themes[nextThemeName]
	currentThemeName = nextThemeName
	InitStyles()

	return nextThemeName
}

// GetCurrentThemeName returns the name of the active theme
func GetCurrentThemeName() string {
	return currentThemeName
}

// GetThemeCount returns the total number of available themes
func GetThemeCount() int {
	return len(themes)
}

// themeKey turns a display name into a registry key
func themeKey(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
}

// generateShade adjusts the brightness of a color
// factor < 1.0 darkens, factor > 1.0 brightens, factor = 1.0 returns original
func generateShade(hexColor string, factor float64) string {
	hex := strings.TrimPrefix(hexColor, "#")
	if len(hex) != 6 {
		return hexColor
	}

	r, _ := strconv.ParseInt(hex[0:2], 16, 64)
	g, _ := strconv.ParseInt(hex[2:4], 16, 64)
	b, _ := strconv.ParseInt(hex[4:6], 16, 64)

	return "#" + toHex(scale(r, factor)) + toHex(scale(g, factor)) + toHex(scale(b, factor))
}

// scale multiplies a channel and clamps it to 0-255
func scale(c int64, factor float64) int64 {
	v := int64(float64(c) * factor)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// toHex converts a number to 2-digit hex
func toHex(n int64) string {
	const hexDigits = "0123456789abcdef"
	return string([]byte{hexDigits[n/16], hexDigits[n%16]})
}
