package main

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	cartoucheOpen  = "\U00013379" // 𓍹 V011A
	cartoucheClose = "\U0001337A" // 𓍺 V011B
)

// RenderCartouche frames converted text the way royal names were written:
// a 3-line oval with the cartouche end signs on either side.
// Line breaks are flattened so the frame stays a single ring.
func RenderCartouche(glyphs string) string {
	glyphs = strings.NewReplacer("\n", " ", "\t", " ").Replace(glyphs)

	middle := cartoucheOpen + " " + glyphs + " " + cartoucheClose
	inner := runewidth.StringWidth(middle) - 2
	if inner < 0 {
		inner = 0
	}

	top := "╭" + strings.Repeat("─", inner) + "╮"
	bottom := "╰" + strings.Repeat("─", inner) + "╯"

	return frameStyle.Render(top) + "\n" +
		frameStyle.Render(cartoucheOpen) + " " + glyphs + " " + frameStyle.Render(cartoucheClose) + "\n" +
		frameStyle.Render(bottom)
}
