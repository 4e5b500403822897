package main

import (
	"fmt"
	"strings"

	"hierotui/hieroglyph"
)

// BreakdownStats holds summary statistics for one conversion breakdown
type BreakdownStats struct {
	Total          int
	Matched        int
	Unmatched      int
	ByCategory     map[hieroglyph.Category]int
	DistinctGlyphs int
	TopGlyph       string // most frequent visible glyph, "" if none
	TopGlyphCount  int
}

// CalculateStats summarizes a breakdown
func CalculateStats(breakdown []hieroglyph.BreakdownEntry) BreakdownStats {
	stats := BreakdownStats{
		Total:      len(breakdown),
		ByCategory: make(map[hieroglyph.Category]int),
	}

	glyphCounts := make(map[string]int)
	var order []string // first-seen order breaks ties

	for _, be := range breakdown {
		if !be.Matched {
			stats.Unmatched++
			continue
		}
		stats.Matched++
		stats.ByCategory[be.Entry.Category]++

		// Separators and silent marks are not glyphs worth counting
		if c := be.Entry.Category; c == hieroglyph.Whitespace || c == hieroglyph.Silent {
			continue
		}
		if glyphCounts[be.Glyph] == 0 {
			order = append(order, be.Glyph)
		}
		glyphCounts[be.Glyph]++
	}

	stats.DistinctGlyphs = len(glyphCounts)
	for _, g := range order {
		if glyphCounts[g] > stats.TopGlyphCount {
			stats.TopGlyph = g
			stats.TopGlyphCount = glyphCounts[g]
		}
	}

	return stats
}

// Coverage returns the fraction of characters found in the table
func (s BreakdownStats) Coverage() float64 {
	if s.Total == 0 {
		return 1.0
	}
	return float64(s.Matched) / float64(s.Total)
}

// String returns a one-line human-readable summary
func (s BreakdownStats) String() string {
	parts := []string{
		fmt.Sprintf("Characters: %d", s.Total),
		fmt.Sprintf("Coverage: %s", formatPercent(s.Coverage())),
		fmt.Sprintf("Letters: %d", s.ByCategory[hieroglyph.Letter]),
		fmt.Sprintf("Numerals: %d", s.ByCategory[hieroglyph.Digit]),
		fmt.Sprintf("Punctuation: %d", s.ByCategory[hieroglyph.Punctuation]),
		fmt.Sprintf("Unsupported: %d", s.Unmatched),
	}
	if s.TopGlyph != "" {
		parts = append(parts, fmt.Sprintf("Most used: %s ×%d", s.TopGlyph, s.TopGlyphCount))
	}
	return strings.Join(parts, " | ")
}

// formatPercent formats a 0-1 fraction as a percentage with one decimal
func formatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}
