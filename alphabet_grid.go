package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hierotui/hieroglyph"
)

// Constants define the grid dimensions.
const (
	gridColumns      = 13 // half the alphabet per row
	cellWidth        = 5
	rowLabelWidth    = 7
	minTerminalWidth = rowLabelWidth + (gridColumns * cellWidth)
)

// Grid lays out table entries as rows of cells: the source character on
// top, its glyph underneath, tinted by category.
type Grid struct {
	entries    []hieroglyph.SymbolEntry
	title      string
	showLegend bool
}

// NewGrid creates a grid over the given entries.
func NewGrid(title string, entries []hieroglyph.SymbolEntry) *Grid {
	return &Grid{
		entries:    entries,
		title:      title,
		showLegend: true,
	}
}

// Render generates the complete grid as a string.
func (g *Grid) Render() string {
	var output strings.Builder

	output.WriteString(titleStyle.Render(g.title) + "\n\n")

	rows := g.buildRows()
	for i, row := range rows {
		output.WriteString(g.renderRow(row))
		if i < len(rows)-1 {
			output.WriteString("\n\n")
		}
	}

	if g.showLegend {
		output.WriteString("\n\n" + g.renderLegend())
	}

	return output.String()
}

// RenderResponsive renders the grid or a width warning based on terminal width.
func (g *Grid) RenderResponsive(terminalWidth int) string {
	if terminalWidth < minTerminalWidth {
		return renderWidthWarning(terminalWidth, minTerminalWidth)
	}
	return g.Render()
}

// buildRows splits the entries into rows of gridColumns.
func (g *Grid) buildRows() [][]hieroglyph.SymbolEntry {
	var rows [][]hieroglyph.SymbolEntry
	for start := 0; start < len(g.entries); start += gridColumns {
		end := start + gridColumns
		if end > len(g.entries) {
			end = len(g.entries)
		}
		rows = append(rows, g.entries[start:end])
	}
	return rows
}

// renderRow renders the character line and the glyph line for one row.
func (g *Grid) renderRow(row []hieroglyph.SymbolEntry) string {
	var chars, glyphs strings.Builder

	chars.WriteString(labelStyle.Width(rowLabelWidth).Render("char"))
	glyphs.WriteString(labelStyle.Width(rowLabelWidth).Render("glyph"))

	for i, e := range row {
		style := cellStyle(e.Category, i%2 == 1)
		chars.WriteString(style.Render(cellChar(e.Char)))
		glyphs.WriteString(style.Render(cellGlyph(e.Glyph)))
	}

	return chars.String() + "\n" + glyphs.String()
}

// renderLegend lists the category colors present in the grid.
func (g *Grid) renderLegend() string {
	seen := make(map[hieroglyph.Category]bool)
	var parts []string
	for _, e := range g.entries {
		if seen[e.Category] {
			continue
		}
		seen[e.Category] = true
		swatch := lipgloss.NewStyle().
			Foreground(lipgloss.Color(categoryColor(e.Category))).
			Render("■ " + e.Category.String())
		parts = append(parts, swatch)
	}
	return strings.Repeat(" ", rowLabelWidth) + strings.Join(parts, "  ")
}

// cellChar is the label shown above a glyph: letters upper-cased,
// invisible characters named.
func cellChar(r rune) string {
	switch r {
	case ' ':
		return "sp"
	case '\t':
		return "tab"
	case '\n':
		return "nl"
	case '\r':
		return "cr"
	case '\v':
		return "vt"
	case '\f':
		return "ff"
	case '\u00a0':
		return "nbsp"
	}
	return strings.ToUpper(string(r))
}

func cellGlyph(glyph string) string {
	switch glyph {
	case "":
		return "∅"
	case " ", "\n":
		return "·"
	}
	return glyph
}

// renderWidthWarning displays a helpful message when the terminal is too narrow.
// The message adapts to the available width.
func renderWidthWarning(currentWidth, minWidth int) string {
	maxBoxWidth := currentWidth - 4 // Leave margin for box border

	message := "Increase terminal width to view the alphabet grid"
	detail := fmt.Sprintf("Need %d columns, have %d", minWidth, currentWidth)

	if maxBoxWidth < len(message) {
		if maxBoxWidth < 30 {
			message = "Terminal too narrow"
			detail = ""
		} else {
			message = "Increase width for grid"
			detail = ""
		}
	}
	if maxBoxWidth < 1 {
		maxBoxWidth = 1
	}

	style := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(CurrentTheme.Blue)).
		Padding(1, 2).
		Width(maxBoxWidth).
		Align(lipgloss.Center)

	content := labelStyle.Bold(true).Render(message)
	if detail != "" {
		content = lipgloss.JoinVertical(lipgloss.Center, content, "", subtleStyle.Render(detail))
	}

	return style.Render(content)
}
