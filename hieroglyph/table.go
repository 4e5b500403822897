package hieroglyph

import "fmt"

// Category groups table entries for display and statistics.
type Category int

const (
	Letter Category = iota
	Digit
	Punctuation
	Whitespace
	Silent // mapped, but renders as nothing
)

// String returns the display name for a category
func (c Category) String() string {
	switch c {
	case Letter:
		return "letter"
	case Digit:
		return "numeral"
	case Punctuation:
		return "punctuation"
	case Whitespace:
		return "separator"
	case Silent:
		return "silent"
	default:
		return "unknown"
	}
}

// Placeholder is substituted for every character the table does not cover.
const Placeholder = "\U000133E4" // 𓏤 Z001 stroke

// SymbolEntry binds one normalized source character to its glyph.
type SymbolEntry struct {
	Char     rune
	Glyph    string
	Meaning  string
	Category Category
}

// registry is the built-in mapping, in display order.
var registry = []SymbolEntry{
	// Uniliteral signs
	{'a', "\U0001313F", "Vulture (Aleph)", Letter},
	{'b', "\U000130C0", "Foot/Leg", Letter},
	{'c', "\U000133A1", "Basket", Letter},
	{'d', "\U000130A7", "Hand", Letter},
	{'e', "\U000131CB", "Reed", Letter},
	{'f', "\U00013191", "Horned Viper", Letter},
	{'g', "\U000133BC", "Jar Stand", Letter},
	{'h', "\U00013254", "Shelter/House", Letter},
	{'i', "\U000131CB", "Reed", Letter},
	{'j', "\U000131B3", "Quail Chick", Letter},
	{'k', "\U000133A1", "Basket", Letter},
	{'l', "\U000130ED", "Lion", Letter},
	{'m', "\U00013153", "Owl", Letter},
	{'n', "\U00013216", "Water Ripple", Letter},
	{'o', "\U00013171", "Quail Chick", Letter},
	{'p', "\U000132AA", "Stool", Letter},
	{'q', "\U0001313F", "Vulture (Aleph)", Letter},
	{'r', "\U0001308B", "Mouth", Letter},
	{'s', "\U000132F4", "Folded Cloth", Letter},
	{'t', "\U000133CF", "Bread Loaf", Letter},
	{'u', "\U00013171", "Quail Chick", Letter},
	{'v', "\U00013191", "Horned Viper", Letter},
	{'w', "\U00013171", "Quail Chick", Letter},
	{'x', "\U000133A1", "Basket", Letter},
	{'y', "\U000131CC", "Double Reed", Letter},
	{'z', "\U00013283", "Door Bolt", Letter},

	// Numerals: coil for zero, then one to nine strokes
	{'0', "\U00013362", "Coil (zero)", Digit},
	{'1', "\U000133FA", "One stroke", Digit},
	{'2', "\U000133FB", "Two strokes", Digit},
	{'3', "\U000133FC", "Three strokes", Digit},
	{'4', "\U000133FD", "Four strokes", Digit},
	{'5', "\U000133FE", "Five strokes", Digit},
	{'6', "\U000133FF", "Six strokes", Digit},
	{'7', "\U00013400", "Seven strokes", Digit},
	{'8', "\U00013401", "Eight strokes", Digit},
	{'9', "\U00013402", "Nine strokes", Digit},

	{'.', Placeholder, "Stroke (separator)", Punctuation},
	{',', Placeholder, "Stroke (separator)", Punctuation},
	{'!', Placeholder, "Stroke (separator)", Punctuation},
	{'?', Placeholder, "Stroke (separator)", Punctuation},
	{':', Placeholder, "Stroke (separator)", Punctuation},
	{';', Placeholder, "Stroke (separator)", Punctuation},
	{'-', Placeholder, "Stroke (separator)", Punctuation},

	{' ', " ", "Word separator", Whitespace},
	{'\t', " ", "Word separator", Whitespace},
	{'\n', "\n", "Line break", Whitespace},
	{'\r', " ", "Carriage return", Whitespace},
	{'\v', " ", "Vertical tab", Whitespace},
	{'\f', " ", "Form feed", Whitespace},
	{'\u00a0', " ", "No-break space", Whitespace},

	// Not written in ancient Egyptian
	{'\'', "", "Apostrophe (not written)", Silent},
	{'"', "", "Quotation mark (not written)", Silent},
}

// table is the read-only lookup index over registry.
type table struct {
	entries []SymbolEntry
	byChar  map[rune]int
}

// newTable indexes entries, rejecting duplicate keys and keys that are not
// already in normalized form.
func newTable(entries []SymbolEntry) (*table, error) {
	t := &table{
		entries: entries,
		byChar:  make(map[rune]int, len(entries)),
	}
	for i, e := range entries {
		if n := normalize(e.Char); n != e.Char {
			return nil, fmt.Errorf("entry %q is not normalized (want %q)", e.Char, n)
		}
		if j, dup := t.byChar[e.Char]; dup {
			return nil, fmt.Errorf("duplicate entry %q at positions %d and %d", e.Char, j, i)
		}
		t.byChar[e.Char] = i
	}
	return t, nil
}

// must panics on a malformed built-in table
func must(t *table, err error) *table {
	if err != nil {
		panic(fmt.Sprintf("hieroglyph: invalid symbol table: %v", err))
	}
	return t
}

var symbols = must(newTable(registry))

func (t *table) lookup(r rune) (SymbolEntry, bool) {
	i, ok := t.byChar[r]
	if !ok {
		return SymbolEntry{}, false
	}
	return t.entries[i], true
}
