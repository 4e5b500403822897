package main

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"hierotui/hieroglyph"
)

func TestRenderCartouche(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"single glyph", hieroglyph.Convert("a")},
		{"name", hieroglyph.Convert("ramesses")},
		{"with space", hieroglyph.Convert("nile river")},
		{"multi-line", hieroglyph.Convert("ra\nra")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RenderCartouche(tt.input)

			lines := strings.Split(result, "\n")
			if len(lines) != 3 {
				t.Fatalf("RenderCartouche(%q) returned %d lines, want 3", tt.input, len(lines))
			}

			w := runewidth.StringWidth(lines[0])
			for i, line := range lines[1:] {
				if got := runewidth.StringWidth(line); got != w {
					t.Errorf("line %d width %d, want %d", i+1, got, w)
				}
			}

			if !strings.HasPrefix(lines[1], cartoucheOpen) || !strings.HasSuffix(lines[1], cartoucheClose) {
				t.Errorf("middle line %q is not enclosed by cartouche signs", lines[1])
			}
		})
	}
}

func TestRenderCartouche_VisualOutput(t *testing.T) {
	// Visual test - prints output for manual inspection
	input := hieroglyph.Convert("cleopatra")
	t.Logf("Cartouche for %q:\n%s", "cleopatra", RenderCartouche(input))
}
