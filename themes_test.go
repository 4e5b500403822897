package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGenerateShade(t *testing.T) {
	tests := []struct {
		color  string
		factor float64
		want   string
	}{
		{"#102030", 1.0, "#102030"},
		{"#102030", 2.0, "#204060"},
		{"#808080", 0.5, "#404040"},
		{"#f0f0f0", 2.0, "#ffffff"},
		{"102030", 1.0, "#102030"},
		{"#abc", 2.0, "#abc"},
		{"", 2.0, ""},
	}

	for _, tt := range tests {
		if got := generateShade(tt.color, tt.factor); got != tt.want {
			t.Errorf("generateShade(%q, %v) = %q, want %q", tt.color, tt.factor, got, tt.want)
		}
	}
}

func TestThemeKey(t *testing.T) {
	tests := map[string]string{
		"Nile Night":  "nile-night",
		"  Papyrus  ": "papyrus",
		"dracula":     "dracula",
	}
	for in, want := range tests {
		if got := themeKey(in); got != want {
			t.Errorf("themeKey(%q) = %q, want %q", in, got, want)
		}
	}
}

const nileTheme = `name: Nile Night
author: scribe
variant: dark
background: "#101820"
foreground: "#e0d8c0"
color_01: "#000000"
color_08: "#c0c0c0"
color_10: "#ff5555"
color_11: "#50fa7b"
color_12: "#f1fa8c"
color_13: "#6272a4"
color_14: "#ff79c6"
color_15: "#8be9fd"
`

func writeThemeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestInitTheme_File(t *testing.T) {
	defer InitTheme("", "")

	if err := InitTheme("Dracula", writeThemeFile(t, nileTheme)); err != nil {
		t.Fatalf("InitTheme: %v", err)
	}

	if got := GetCurrentThemeName(); got != "nile-night" {
		t.Errorf("theme = %q, want nile-night", got)
	}
	if CurrentTheme.Green != "#50fa7b" || CurrentTheme.Blue != "#6272a4" {
		t.Errorf("palette not mapped: %+v", CurrentTheme)
	}
	if CurrentTheme.Subtle != generateShade("#101820", 1.3) {
		t.Errorf("Subtle = %q", CurrentTheme.Subtle)
	}
}

func TestInitTheme_FileErrors(t *testing.T) {
	defer InitTheme("", "")

	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yml") }},
		{"bad yaml", func(t *testing.T) string { return writeThemeFile(t, "name: [unclosed") }},
		{"no name", func(t *testing.T) string { return writeThemeFile(t, "background: \"#000000\"\n") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := InitTheme("", tt.path(t)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestInitTheme_UnknownNameFallsBack(t *testing.T) {
	defer InitTheme("", "")

	if err := InitTheme("no-such-theme", ""); err != nil {
		t.Fatalf("InitTheme: %v", err)
	}
	if _, ok := themes[GetCurrentThemeName()]; !ok {
		t.Errorf("fell back to unregistered theme %q", GetCurrentThemeName())
	}
}

func TestNextTheme_Cycles(t *testing.T) {
	defer InitTheme("", "")

	n := GetThemeCount()
	if n == 0 {
		t.Skip("no themes registered")
	}

	start := GetCurrentThemeName()
	for i := 0; i < n; i++ {
		NextTheme()
	}
	if got := GetCurrentThemeName(); got != start {
		t.Errorf("after %d steps theme = %q, want %q", n, got, start)
	}
}
