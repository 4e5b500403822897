package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hierotui/hieroglyph"
)

const (
	farewellMessage  = "Thank you for using the Hieroglyphics Converter! 𓋹"
	interruptMessage = "Exiting... 𓋹"
)

// historyKind identifies what a history entry shows
type historyKind int

const (
	histWelcome historyKind = iota
	histConversion
	histHelp
	histAlphabet
	histExamples
)

// historyItem is one committed line. Items are re-rendered on every theme
// change, so only the input is stored.
type historyItem struct {
	kind  historyKind
	input string
}

// keyMap defines the interactive key bindings
type keyMap struct {
	Submit     key.Binding
	Theme      key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Quit       key.Binding
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Theme, k.ScrollUp, k.ScrollDown, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultKeys = keyMap{
	Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "convert")),
	Theme:      key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
	ScrollUp:   key.NewBinding(key.WithKeys("pgup", "up"), key.WithHelp("↑/pgup", "scroll")),
	ScrollDown: key.NewBinding(key.WithKeys("pgdown", "down"), key.WithHelp("↓/pgdn", "scroll")),
	Quit:       key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
}

// Model is the interactive converter following Elm architecture
type Model struct {
	input    textinput.Model
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	history  []historyItem
	content  string // last rendered history, kept for the viewport
	ready    bool
	width    int
	height   int
	farewell string // set once the user quits
}

// NewModel creates the interactive converter with a focused input line
func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = "Enter text to convert (or command)"
	ti.Prompt = "› "
	ti.CharLimit = 512
	ti.Focus()

	return Model{
		input:   ti,
		help:    help.New(),
		keys:    defaultKeys,
		history: []historyItem{{kind: histWelcome}},
	}
}

// Init starts the cursor blinking
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case msg.String() == "ctrl+c":
			m.farewell = interruptMessage
			return m, tea.Quit
		case key.Matches(msg, m.keys.Quit):
			m.farewell = farewellMessage
			return m, tea.Quit
		case key.Matches(msg, m.keys.Theme):
			name := NextTheme()
			log.Printf("interactive: theme switched to %s", name)
			m.refreshViewport()
			return m, nil
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.ScrollUp), key.Matches(msg, m.keys.ScrollDown):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(m.width-4, 10)
		m.help.Width = m.width

		vpHeight := max(m.height-6, 3) // title, input, preview, status
		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.KeyMap = viewport.KeyMap{
				PageUp:   key.NewBinding(key.WithKeys("pgup")),
				PageDown: key.NewBinding(key.WithKeys("pgdown")),
				Up:       key.NewBinding(key.WithKeys("up")),
				Down:     key.NewBinding(key.WithKeys("down")),
			}
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}
		m.refreshViewport()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit commits the current input line as a command or a conversion
func (m Model) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if text == "" {
		return m, nil
	}

	switch strings.ToLower(text) {
	case "quit", "exit", "q":
		m.farewell = farewellMessage
		return m, tea.Quit
	case "help":
		m.history = append(m.history, historyItem{kind: histHelp})
	case "alphabet":
		m.history = append(m.history, historyItem{kind: histAlphabet})
	case "examples":
		m.history = append(m.history, historyItem{kind: histExamples})
	default:
		log.Printf("interactive: converting %d characters", len([]rune(text)))
		m.history = append(m.history, historyItem{kind: histConversion, input: text})
	}

	m.refreshViewport()
	return m, nil
}

// refreshViewport re-renders the history into the viewport and scrolls
// to the newest entry
func (m *Model) refreshViewport() {
	items := make([]string, len(m.history))
	for i, h := range m.history {
		items[i] = renderHistoryItem(h, m.width)
	}
	m.content = strings.Join(items, "\n\n")

	if m.ready {
		m.viewport.SetContent(m.content)
		m.viewport.GotoBottom()
	}
}

// renderHistoryItem renders one committed line
func renderHistoryItem(h historyItem, width int) string {
	switch h.kind {
	case histWelcome:
		return welcomeText()
	case histHelp:
		return helpText()
	case histAlphabet:
		return NewGrid("HIEROGLYPHIC ALPHABET REFERENCE", hieroglyph.Letters()).RenderResponsive(width)
	case histExamples:
		return titleStyle.Render("CONVERSION EXAMPLES:") + "\n" + renderExamples(exampleWords, 12)
	default:
		return titleStyle.Render("CONVERSION RESULT:") + "\n" + renderConversion(h.input)
	}
}

// welcomeText is the greeting and command list shown at start-up
func welcomeText() string {
	return strings.Join([]string{
		titleStyle.Render("ENGLISH TO EGYPTIAN HIEROGLYPHICS CONVERTER"),
		baseStyle.Render("Converts English text to Egyptian hieroglyphics using the ancient uniliteral alphabet."),
		"",
		labelStyle.Render("Commands:"),
		"  " + baseStyle.Render("help") + labelStyle.Render("      - show help"),
		"  " + baseStyle.Render("alphabet") + labelStyle.Render("  - display the full alphabet reference"),
		"  " + baseStyle.Render("examples") + labelStyle.Render("  - show conversion examples"),
		"  " + baseStyle.Render("quit") + labelStyle.Render("      - exit (also 'exit' or 'q')"),
		"  " + labelStyle.Render("anything else is converted to hieroglyphics"),
	}, "\n")
}

// helpText explains the mapping in a few lines
func helpText() string {
	return titleStyle.Render("HELP:") + "\n" + baseStyle.Render(strings.Join([]string{
		"This converter translates English letters to Egyptian hieroglyphic",
		"symbols based on the ancient uniliteral alphabet. Each English",
		"letter corresponds to a hieroglyphic sign that represents a",
		"similar sound. Numbers 0-9 are converted to Egyptian numerals.",
		fmt.Sprintf("Unsupported characters become %s (stroke placeholder).", hieroglyph.Placeholder),
	}, "\n"))
}

// View renders the TUI
func (m Model) View() string {
	if m.farewell != "" {
		return m.farewell + "\n"
	}
	if !m.ready {
		return labelStyle.Render("Initializing...")
	}

	title := titleStyle.Render("𓂀 Hieroglyphics Converter")

	preview := labelStyle.Render("Preview: ")
	if v := m.input.Value(); v != "" {
		preview += glyphStyle.Render(hieroglyph.Convert(v))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.viewport.View(),
		m.input.View(),
		preview,
		m.renderStatusBar(),
	)
}

// renderStatusBar renders the bottom status bar with keybindings
func (m Model) renderStatusBar() string {
	status := fmt.Sprintf("theme: %s | %s", GetCurrentThemeName(), m.help.View(m.keys))
	return statusBarStyle.Width(m.width).Render(status)
}
