package main

import (
	"github.com/charmbracelet/lipgloss"

	"hierotui/hieroglyph"
)

// Styles are initialized after theme is loaded
// All styles dynamically use CurrentTheme for colors

// GetBaseStyle returns the base text style with theme foreground color
func GetBaseStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.Foreground))
}

// GetTitleStyle returns the title style with theme blue color
func GetTitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(CurrentTheme.Blue))
}

// GetLabelStyle returns the label style with theme gray color
func GetLabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.Gray))
}

// GetGlyphStyle returns the style for converted hieroglyph text
func GetGlyphStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.Green)).
		Bold(true)
}

// GetSubtleStyle returns the subtle style with theme subtle color
func GetSubtleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.Subtle))
}

// GetStatusBarStyle returns the status bar style
func GetStatusBarStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.Gray)).
		Background(lipgloss.Color(CurrentTheme.Subtle))
}

// GetErrorStyle returns the error style with theme red color
func GetErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.Red)).
		Bold(true)
}

// GetWarningStyle returns the warning style with theme yellow color
func GetWarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.Yellow))
}

// GetFrameStyle returns the cartouche frame style with theme frame color
func GetFrameStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.Frame))
}

var (
	baseStyle      = GetBaseStyle()
	titleStyle     = GetTitleStyle()
	labelStyle     = GetLabelStyle()
	glyphStyle     = GetGlyphStyle()
	subtleStyle    = GetSubtleStyle()
	statusBarStyle = GetStatusBarStyle()
	errorStyle     = GetErrorStyle()
	warningStyle   = GetWarningStyle()
	frameStyle     = GetFrameStyle()
)

// InitStyles must be called after the theme changes to refresh global styles
func InitStyles() {
	baseStyle = GetBaseStyle()
	titleStyle = GetTitleStyle()
	labelStyle = GetLabelStyle()
	glyphStyle = GetGlyphStyle()
	subtleStyle = GetSubtleStyle()
	statusBarStyle = GetStatusBarStyle()
	errorStyle = GetErrorStyle()
	warningStyle = GetWarningStyle()
	frameStyle = GetFrameStyle()
}

// categoryColor picks the theme color used to tint a table category
func categoryColor(c hieroglyph.Category) string {
	switch c {
	case hieroglyph.Letter:
		return CurrentTheme.Green
	case hieroglyph.Digit:
		return CurrentTheme.Purple
	case hieroglyph.Punctuation:
		return CurrentTheme.Yellow
	case hieroglyph.Whitespace:
		return CurrentTheme.Cyan
	default:
		return CurrentTheme.Gray
	}
}

// cellStyle styles one alphabet grid cell, alternating backgrounds
func cellStyle(c hieroglyph.Category, alt bool) lipgloss.Style {
	bg := CurrentTheme.CellBg
	if alt {
		bg = CurrentTheme.CellAlt
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(categoryColor(c))).
		Background(lipgloss.Color(bg)).
		Align(lipgloss.Center).
		Width(cellWidth)
}
