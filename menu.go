package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// mode is a top-level way of running the converter
type mode int

const (
	modeNone mode = iota
	modeInteractive
	modeDemo
	modeBoth
)

// String returns the display name for a mode
func (m mode) String() string {
	switch m {
	case modeInteractive:
		return "Interactive Converter"
	case modeDemo:
		return "Demo/Examples"
	case modeBoth:
		return "Both"
	default:
		return "None"
	}
}

var menuModes = []mode{modeInteractive, modeDemo, modeBoth}

// parseMenuChoice maps a typed choice to a mode. Anything unrecognized
// runs the demo.
func parseMenuChoice(s string) (mode, bool) {
	switch strings.TrimSpace(s) {
	case "1":
		return modeInteractive, true
	case "2":
		return modeDemo, true
	case "3":
		return modeBoth, true
	default:
		return modeDemo, false
	}
}

// menuText is the plain menu printed when stdin is not a terminal
func menuText() string {
	var b strings.Builder
	b.WriteString("Choose mode:\n")
	for i, m := range menuModes {
		fmt.Fprintf(&b, "%d. %s\n", i+1, m)
	}
	return b.String()
}

// MenuModel is the mode chooser shown when no subcommand is given
type MenuModel struct {
	cursor   int
	choice   mode
	fallback bool // an unrecognized key picked the demo
	quitting bool
}

// NewMenuModel creates a menu with the first mode highlighted
func NewMenuModel() MenuModel {
	return MenuModel{}
}

// Choice returns the selected mode, or modeNone if the user quit
func (m MenuModel) Choice() mode {
	return m.choice
}

// Init implements tea.Model
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles menu navigation and selection
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(menuModes)-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		m.choice = menuModes[m.cursor]
		return m, tea.Quit
	}

	if keyMsg.Type == tea.KeyRunes {
		m.choice, ok = parseMenuChoice(string(keyMsg.Runes))
		m.fallback = !ok
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu
func (m MenuModel) View() string {
	if m.quitting {
		return "Goodbye! 𓋹\n"
	}
	if m.choice != modeNone {
		if m.fallback {
			return labelStyle.Render("Running demo by default...") + "\n"
		}
		return ""
	}

	lines := []string{titleStyle.Render("Choose mode:"), ""}
	for i, md := range menuModes {
		cursor := "  "
		style := baseStyle
		if i == m.cursor {
			cursor = "▸ "
			style = glyphStyle
		}
		lines = append(lines, cursor+style.Render(fmt.Sprintf("%d. %s", i+1, md)))
	}
	lines = append(lines, "", subtleStyle.Render("1-3/enter: select | ↑↓: move | q: quit"))

	return strings.Join(lines, "\n") + "\n"
}
