// Package hieroglyph converts English text to Egyptian hieroglyphs by direct
// character substitution over a fixed table of uniliteral signs, numerals
// and punctuation strokes.
//
// The table is built once at package initialization and never modified, so
// every function in this package is safe for concurrent use. Lookups fold
// case first; a character with no table entry is replaced by Placeholder
// and reported as unmatched in the breakdown, never as an error.
//
// The mapping is a simplified phonetic alphabet. Real hieroglyphic writing
// also uses logograms, determinatives and spatial grouping, none of which
// are modelled here.
package hieroglyph
