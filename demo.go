package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"hierotui/hieroglyph"
)

// demoTexts are the sample phrases shown by the demo
var demoTexts = []string{
	"hello world",
	"ancient egypt",
	"pyramid power",
	"pharaoh king",
	"nile river",
	"hieroglyphics rock",
	"amazing discovery 123",
}

// exampleWords are the short samples listed by the interactive "examples" command
var exampleWords = []string{
	"hello", "egypt", "pyramid", "pharaoh",
	"nile", "ancient", "hieroglyph", "123",
}

// demoBreakdownSample is the word explained character by character
const demoBreakdownSample = "egypt"

// rule returns a horizontal divider of the given width
func rule(width int) string {
	return subtleStyle.Render(strings.Repeat("─", width))
}

// renderExamples lists each sample next to its conversion, padding the
// sample column to pad display cells.
func renderExamples(samples []string, pad int) string {
	converted := hieroglyph.ConvertAll(samples)
	lines := make([]string, len(samples))
	for i, s := range samples {
		lines[i] = fmt.Sprintf("%s → %s",
			baseStyle.Render(runewidth.FillRight(s, pad)),
			glyphStyle.Render(converted[i]))
	}
	return strings.Join(lines, "\n")
}

// RenderDemo builds the full demonstration: sample conversions, a detailed
// breakdown, the alphabet grid and the numerals.
func RenderDemo(width int) string {
	var sections []string

	banner := titleStyle.Render("HIEROGLYPHICS CONVERTER DEMONSTRATION")
	sections = append(sections, rule(70), banner, rule(70), "")

	sections = append(sections,
		titleStyle.Render("1. BASIC CONVERSIONS:"), rule(30),
		renderExamples(demoTexts, 22), "")

	res := hieroglyph.Translate(demoBreakdownSample)
	sections = append(sections,
		titleStyle.Render("2. DETAILED CONVERSION BREAKDOWN:"), rule(40),
		labelStyle.Render("Converting: ")+baseStyle.Render(fmt.Sprintf("'%s'", demoBreakdownSample)),
		labelStyle.Render("Result:     ")+glyphStyle.Render(res.String()),
		RenderCartouche(res.String()),
		"",
		labelStyle.Render("Breakdown:"),
		renderBreakdown(res.Breakdown), "")

	sections = append(sections,
		titleStyle.Render("3. HIEROGLYPHIC ALPHABET:"), rule(35),
		NewGrid("Uniliteral signs", hieroglyph.Letters()).RenderResponsive(width), "")

	var numerals []string
	for _, e := range hieroglyph.Digits() {
		numerals = append(numerals, fmt.Sprintf("%c: %s  %s",
			e.Char, glyphStyle.Render(e.Glyph), labelStyle.Render(e.Meaning)))
	}
	sections = append(sections,
		titleStyle.Render("4. EGYPTIAN NUMERALS:"), rule(25),
		strings.Join(numerals, "\n"), "",
		rule(70))

	return strings.Join(sections, "\n")
}

// runDemo writes the demonstration to w
func runDemo(w io.Writer, width int) error {
	_, err := fmt.Fprintln(w, RenderDemo(width))
	return err
}
