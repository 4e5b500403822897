package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cli/go-gh/v2/pkg/tableprinter"
	"github.com/mattn/go-runewidth"

	"hierotui/hieroglyph"
)

// breakdownLimit is the longest input that still gets a per-character
// breakdown in the interactive converter.
const breakdownLimit = 20

// displayChar shows an input character, naming the invisible ones
func displayChar(r rune) string {
	switch r {
	case ' ':
		return "[space]"
	case '\t':
		return "[tab]"
	case '\n':
		return "[newline]"
	case '\r':
		return "[return]"
	case '\v':
		return "[vtab]"
	case '\f':
		return "[formfeed]"
	case '\u00a0':
		return "[nbsp]"
	}
	return "'" + string(r) + "'"
}

// displayGlyph shows a glyph unit, naming empty and blank ones
func displayGlyph(glyph string) string {
	switch glyph {
	case "":
		return "[nothing]"
	case " ":
		return "[space]"
	case "\n":
		return "[newline]"
	}
	return glyph
}

// note is the parenthetical explanation for one breakdown entry
func note(be hieroglyph.BreakdownEntry) string {
	if !be.Matched {
		return "unsupported → stroke placeholder"
	}
	switch be.Entry.Category {
	case hieroglyph.Digit:
		return "Egyptian numeral: " + be.Meaning
	case hieroglyph.Punctuation:
		return "punctuation"
	case hieroglyph.Whitespace:
		return strings.ToLower(be.Meaning)
	case hieroglyph.Silent:
		return "not written"
	default:
		return be.Meaning
	}
}

// renderBreakdown lays out one line per entry with the character and glyph
// columns padded to a common display width.
func renderBreakdown(breakdown []hieroglyph.BreakdownEntry) string {
	charWidth, glyphWidth := 0, 0
	for _, be := range breakdown {
		charWidth = max(charWidth, runewidth.StringWidth(displayChar(be.Input)))
		glyphWidth = max(glyphWidth, runewidth.StringWidth(displayGlyph(be.Glyph)))
	}

	lines := make([]string, 0, len(breakdown))
	for _, be := range breakdown {
		char := runewidth.FillRight(displayChar(be.Input), charWidth)
		glyph := runewidth.FillRight(displayGlyph(be.Glyph), glyphWidth)

		noteStyle := labelStyle
		if !be.Matched {
			noteStyle = errorStyle
		}

		lines = append(lines, fmt.Sprintf("  %s → %s  %s",
			baseStyle.Render(char),
			glyphColor(be).Render(glyph),
			noteStyle.Render("("+note(be)+")"),
		))
	}
	return strings.Join(lines, "\n")
}

// glyphColor tints a glyph by the category it came from
func glyphColor(be hieroglyph.BreakdownEntry) lipgloss.Style {
	if !be.Matched {
		return errorStyle
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(categoryColor(be.Entry.Category)))
}

// renderUnsupportedWarning returns the warning shown above a conversion that
// contains characters outside the table, or "" when there are none.
func renderUnsupportedWarning(text string) string {
	ok, unsupported := hieroglyph.Validate(text)
	if ok {
		return ""
	}

	quoted := make([]string, len(unsupported))
	for i, r := range unsupported {
		quoted[i] = displayChar(r)
	}
	return warningStyle.Render(fmt.Sprintf("Warning: unsupported characters found: %s", strings.Join(quoted, ", "))) +
		"\n" + labelStyle.Render(fmt.Sprintf("These will be replaced with %s (stroke placeholder)", hieroglyph.Placeholder))
}

// renderConversion renders the full result block for one input line:
// warning, original, glyphs and, for short input, the breakdown.
func renderConversion(text string) string {
	res := hieroglyph.Translate(text)

	var sections []string
	if warn := renderUnsupportedWarning(text); warn != "" {
		sections = append(sections, warn, "")
	}

	sections = append(sections,
		labelStyle.Render("Original:     ")+baseStyle.Render(text),
		labelStyle.Render("Hieroglyphic: ")+glyphStyle.Render(res.String()),
	)

	if len(res.Breakdown) <= breakdownLimit {
		sections = append(sections, "", titleStyle.Render("Character breakdown:"), renderBreakdown(res.Breakdown))
	}

	return strings.Join(sections, "\n")
}

// writeAlphabetTable prints table entries through the gh table printer:
// aligned columns on a terminal, tab-separated otherwise.
func writeAlphabetTable(w io.Writer, entries []hieroglyph.SymbolEntry, isTTY bool, width int) error {
	tp := tableprinter.New(w, isTTY, width)
	tp.AddHeader([]string{"CHAR", "GLYPH", "MEANING", "CATEGORY"})
	for _, e := range entries {
		tp.AddField(cellChar(e.Char))
		tp.AddField(displayGlyph(e.Glyph))
		tp.AddField(e.Meaning)
		tp.AddField(e.Category.String())
		tp.EndRow()
	}
	return tp.Render()
}

// alphabetSection selects table entries by a -category flag value
func alphabetSection(category string) ([]hieroglyph.SymbolEntry, error) {
	switch strings.ToLower(category) {
	case "", "all":
		return hieroglyph.Alphabet(), nil
	case "letters":
		return hieroglyph.Letters(), nil
	case "digits", "numerals":
		return hieroglyph.Digits(), nil
	case "punctuation":
		return hieroglyph.PunctuationMarks(), nil
	default:
		return nil, fmt.Errorf("unknown category %q (want letters, digits, punctuation or all)", category)
	}
}
