package hieroglyph

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BreakdownEntry explains how one input character was converted.
type BreakdownEntry struct {
	Input   rune         // character as typed, before case folding
	Entry   *SymbolEntry // nil when the character is not in the table
	Glyph   string       // table glyph, or Placeholder when unmatched
	Meaning string       // empty when unmatched
	Matched bool
}

// Result holds both outputs of a conversion. Glyphs has exactly one unit
// per input rune; silent marks contribute an empty unit.
type Result struct {
	Glyphs    []string
	Breakdown []BreakdownEntry
}

// String joins the glyph units into the converted text
func (r Result) String() string {
	return strings.Join(r.Glyphs, "")
}

// Translate converts text and records a breakdown in a single pass.
func Translate(text string) Result {
	lower := cases.Lower(language.Und)

	n := len(text) // upper bound on rune count
	res := Result{
		Glyphs:    make([]string, 0, n),
		Breakdown: make([]BreakdownEntry, 0, n),
	}

	for _, r := range text {
		be := BreakdownEntry{Input: r, Glyph: Placeholder}
		if e, ok := symbols.lookup(foldRune(lower, r)); ok {
			be.Entry = &e
			be.Glyph = e.Glyph
			be.Meaning = e.Meaning
			be.Matched = true
		}
		res.Glyphs = append(res.Glyphs, be.Glyph)
		res.Breakdown = append(res.Breakdown, be)
	}

	return res
}

// Convert returns text rewritten in hieroglyphs.
// Unsupported characters become Placeholder.
func Convert(text string) string {
	return Translate(text).String()
}

// Explain returns one breakdown entry per rune of text, in order.
func Explain(text string) []BreakdownEntry {
	return Translate(text).Breakdown
}

// ConvertAll converts each text independently, preserving order.
func ConvertAll(texts []string) []string {
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = Convert(t)
	}
	return out
}

// LookupEntry returns the table entry for r after case folding.
func LookupEntry(r rune) (SymbolEntry, bool) {
	return symbols.lookup(normalize(r))
}

// Alphabet returns every table entry in display order. The slice is a copy.
func Alphabet() []SymbolEntry {
	out := make([]SymbolEntry, len(symbols.entries))
	copy(out, symbols.entries)
	return out
}

// Letters returns the letter entries a-z.
func Letters() []SymbolEntry { return byCategory(Letter) }

// Digits returns the numeral entries 0-9.
func Digits() []SymbolEntry { return byCategory(Digit) }

// PunctuationMarks returns punctuation and silent marks.
func PunctuationMarks() []SymbolEntry { return byCategory(Punctuation, Silent) }

func byCategory(cats ...Category) []SymbolEntry {
	var out []SymbolEntry
	for _, e := range symbols.entries {
		for _, c := range cats {
			if e.Category == c {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// Validate reports whether every character of text is in the table.
// Unsupported characters are listed once each, folded, in first-seen order.
func Validate(text string) (bool, []rune) {
	lower := cases.Lower(language.Und)

	var unsupported []rune
	seen := make(map[rune]bool)
	for _, r := range text {
		r = foldRune(lower, r)
		if _, ok := symbols.lookup(r); ok || seen[r] {
			continue
		}
		seen[r] = true
		unsupported = append(unsupported, r)
	}
	return len(unsupported) == 0, unsupported
}

// Info describes in one line how r is converted.
func Info(r rune) string {
	e, ok := LookupEntry(r)
	if !ok {
		return fmt.Sprintf("%q is not supported and will be replaced with %s (stroke placeholder)", r, Placeholder)
	}

	switch e.Category {
	case Letter:
		return fmt.Sprintf("%q → %s (%s) - Egyptian hieroglyphic letter", e.Char, e.Glyph, e.Meaning)
	case Digit:
		return fmt.Sprintf("%q → %s (%s) - Egyptian numeral", e.Char, e.Glyph, e.Meaning)
	case Whitespace:
		return fmt.Sprintf("%q → [%s]", e.Char, strings.ToLower(e.Meaning))
	case Silent:
		return fmt.Sprintf("%q → [nothing] (%s)", e.Char, e.Meaning)
	default:
		return fmt.Sprintf("%q → %s (special character/punctuation)", e.Char, e.Glyph)
	}
}

func normalize(r rune) rune {
	return foldRune(cases.Lower(language.Und), r)
}

// foldRune lower-cases r, keeping r itself when lowering does not
// produce exactly one rune (e.g. U+0130).
func foldRune(c cases.Caser, r rune) rune {
	s := c.String(string(r))
	var out rune
	n := 0
	for _, lr := range s {
		out = lr
		n++
	}
	if n != 1 {
		return r
	}
	return out
}
