package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLTheme represents the structure of theme YAML files
// These come from terminal color schemes with 16 ANSI colors
type YAMLTheme struct {
	Name       string `yaml:"name"`
	Author     string `yaml:"author"`
	Variant    string `yaml:"variant"` // dark or light
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
	Cursor     string `yaml:"cursor"`

	// 16 ANSI colors (color_01 through color_16)
	Color01 string `yaml:"color_01"` // Black
	Color02 string `yaml:"color_02"` // Red
	Color03 string `yaml:"color_03"` // Green
	Color04 string `yaml:"color_04"` // Yellow
	Color05 string `yaml:"color_05"` // Blue
	Color06 string `yaml:"color_06"` // Magenta
	Color07 string `yaml:"color_07"` // Cyan
	Color08 string `yaml:"color_08"` // White
	Color09 string `yaml:"color_09"` // Bright Black
	Color10 string `yaml:"color_10"` // Bright Red
	Color11 string `yaml:"color_11"` // Bright Green
	Color12 string `yaml:"color_12"` // Bright Yellow
	Color13 string `yaml:"color_13"` // Bright Blue
	Color14 string `yaml:"color_14"` // Bright Magenta
	Color15 string `yaml:"color_15"` // Bright Cyan
	Color16 string `yaml:"color_16"` // Bright White
}

// ConvertToTheme maps the ANSI palette onto the UI's semantic colors,
// using the bright variants for contrast.
func (yt *YAMLTheme) ConvertToTheme() Theme {
	return Theme{
		Background: yt.Background,
		Foreground: yt.Foreground,
		Subtle:     generateShade(yt.Background, 1.3),

		Blue:   yt.Color13,
		Green:  yt.Color11,
		Red:    yt.Color10,
		Yellow: yt.Color12,
		Purple: yt.Color14,
		Cyan:   yt.Color15,
		Gray:   yt.Color08,
		Dark:   yt.Color01,

		Frame:   yt.Color12,
		CellBg:  generateShade(yt.Background, 1.6),
		CellAlt: generateShade(yt.Background, 2.0),
	}
}

// LoadThemeFromYAML loads a single YAML theme file
func LoadThemeFromYAML(filePath string) (*YAMLTheme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var yamlTheme YAMLTheme
	if err := yaml.Unmarshal(data, &yamlTheme); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if yamlTheme.Name == "" {
		return nil, fmt.Errorf("theme file %s has no name", filePath)
	}

	return &yamlTheme, nil
}
