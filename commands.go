package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"runtime"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gonuts/commander"

	"hierotui/hieroglyph"
)

// app carries the process streams and terminal facts every command needs
type app struct {
	ctx    context.Context
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	inTTY  bool
	outTTY bool
	width  int

	// runProgram runs a bubbletea model to completion
	runProgram func(tea.Model) (tea.Model, error)

	theme themeOptions
}

type themeOptions struct {
	name string
	file string
}

type batchOptions struct {
	format  string
	workers int
	explain bool
}

// runTUI runs m on the app's streams
func (a *app) runTUI(m tea.Model) (tea.Model, error) {
	if a.runProgram != nil {
		return a.runProgram(m)
	}
	p := tea.NewProgram(m, tea.WithInput(a.in), tea.WithOutput(a.out), tea.WithContext(a.ctx))
	return p.Run()
}

// newRootCommand builds the command tree. Every subcommand gets the theme
// flags and loads the theme before running.
func newRootCommand(a *app) *commander.Command {
	root := &commander.Command{
		UsageLine: "hierotui <command> [options]",
		Short:     "convert English text to Egyptian hieroglyphs",
		Subcommands: []*commander.Command{
			a.menuCmd(),
			a.interactiveCmd(),
			a.demoCmd(),
			a.bothCmd(),
			a.convertCmd(),
			a.explainCmd(),
			a.alphabetCmd(),
			a.infoCmd(),
			a.batchCmd(),
		},
		Flag: *flag.NewFlagSet("hierotui", flag.ExitOnError),
	}

	for _, sub := range root.Subcommands {
		sub.Flag.StringVar(&a.theme.name, "theme", "", "gogh theme name (default $HIEROTUI_THEME or Dracula)")
		sub.Flag.StringVar(&a.theme.file, "theme-file", "", "YAML theme file (default $HIEROTUI_THEME_FILE)")
		sub.Run = a.withTheme(sub.Run)
	}

	return root
}

// withTheme loads the selected theme before running f
func (a *app) withTheme(f func(*commander.Command, []string) error) func(*commander.Command, []string) error {
	return func(cmd *commander.Command, args []string) error {
		if err := InitTheme(a.theme.name, a.theme.file); err != nil {
			return err
		}
		log.Printf("%s: theme %s", cmd.Name(), GetCurrentThemeName())
		return f(cmd, args)
	}
}

func (a *app) menuCmd() *commander.Command {
	return &commander.Command{
		Run:       a.runMenu,
		UsageLine: "menu [options]",
		Short:     "choose between interactive, demo or both (default)",
		Flag:      *flag.NewFlagSet("menu", flag.ExitOnError),
	}
}

func (a *app) runMenu(cmd *commander.Command, args []string) error {
	var choice mode

	if a.inTTY {
		final, err := a.runTUI(NewMenuModel())
		if err != nil {
			return fmt.Errorf("menu failed: %w", err)
		}
		choice = final.(MenuModel).Choice()
	} else {
		fmt.Fprint(a.out, menuText())
		fmt.Fprint(a.out, "Enter your choice (1-3): ")

		line, err := readLine(a.in)
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		fmt.Fprintln(a.out)

		var ok bool
		if choice, ok = parseMenuChoice(line); !ok {
			fmt.Fprintln(a.out, "Running demo by default...")
		}
	}

	log.Printf("menu: selected %s", choice)
	return a.runMode(choice)
}

// runMode runs the chosen mode; modeNone means the user quit the menu
func (a *app) runMode(m mode) error {
	switch m {
	case modeInteractive:
		return a.interactive()
	case modeDemo:
		return runDemo(a.out, a.width)
	case modeBoth:
		if err := runDemo(a.out, a.width); err != nil {
			return err
		}
		fmt.Fprintln(a.out)
		return a.interactive()
	default:
		return nil
	}
}

func (a *app) interactiveCmd() *commander.Command {
	return &commander.Command{
		Run: func(cmd *commander.Command, args []string) error {
			return a.interactive()
		},
		UsageLine: "interactive [options]",
		Short:     "convert text line by line",
		Long: `
convert text line by line; type help, alphabet, examples or quit

	$ hierotui interactive -theme Nord
`,
		Flag: *flag.NewFlagSet("interactive", flag.ExitOnError),
	}
}

// interactive runs the TUI on a terminal and the line loop otherwise
func (a *app) interactive() error {
	if !a.inTTY {
		return runLineLoop(a.in, a.out)
	}
	if _, err := a.runTUI(NewModel()); err != nil {
		return fmt.Errorf("interactive converter failed: %w", err)
	}
	return nil
}

func (a *app) demoCmd() *commander.Command {
	return &commander.Command{
		Run: func(cmd *commander.Command, args []string) error {
			return runDemo(a.out, a.width)
		},
		UsageLine: "demo [options]",
		Short:     "show sample conversions, a breakdown, the alphabet and numerals",
		Flag:      *flag.NewFlagSet("demo", flag.ExitOnError),
	}
}

func (a *app) bothCmd() *commander.Command {
	return &commander.Command{
		Run: func(cmd *commander.Command, args []string) error {
			return a.runMode(modeBoth)
		},
		UsageLine: "both [options]",
		Short:     "run the demo, then the interactive converter",
		Flag:      *flag.NewFlagSet("both", flag.ExitOnError),
	}
}

func (a *app) convertCmd() *commander.Command {
	var cartouche bool
	cmd := &commander.Command{
		Run: func(cmd *commander.Command, args []string) error {
			text, err := joinArgs(args)
			if err != nil {
				return err
			}
			out := hieroglyph.Convert(text)
			if cartouche {
				out = RenderCartouche(out)
			}
			_, err = fmt.Fprintln(a.out, out)
			return err
		},
		UsageLine: "convert [options] <text...>",
		Short:     "print text converted to hieroglyphs",
		Long: `
print text converted to hieroglyphs

	$ hierotui convert -cartouche cleopatra
`,
		Flag: *flag.NewFlagSet("convert", flag.ExitOnError),
	}
	cmd.Flag.BoolVar(&cartouche, "cartouche", false, "frame the result in a cartouche")
	return cmd
}

func (a *app) explainCmd() *commander.Command {
	var stats bool
	cmd := &commander.Command{
		Run: func(cmd *commander.Command, args []string) error {
			text, err := joinArgs(args)
			if err != nil {
				return err
			}

			res := hieroglyph.Translate(text)
			sections := []string{}
			if warn := renderUnsupportedWarning(text); warn != "" {
				sections = append(sections, warn)
			}
			sections = append(sections,
				labelStyle.Render("Hieroglyphic: ")+glyphStyle.Render(res.String()),
				renderBreakdown(res.Breakdown))
			if stats {
				sections = append(sections, labelStyle.Render(CalculateStats(res.Breakdown).String()))
			}

			_, err = fmt.Fprintln(a.out, strings.Join(sections, "\n"))
			return err
		},
		UsageLine: "explain [options] <text...>",
		Short:     "print a character-by-character conversion breakdown",
		Flag:      *flag.NewFlagSet("explain", flag.ExitOnError),
	}
	cmd.Flag.BoolVar(&stats, "stats", false, "append conversion statistics")
	return cmd
}

func (a *app) alphabetCmd() *commander.Command {
	var (
		category string
		grid     bool
	)
	cmd := &commander.Command{
		Run: func(cmd *commander.Command, args []string) error {
			entries, err := alphabetSection(category)
			if err != nil {
				return err
			}
			if grid {
				_, err := fmt.Fprintln(a.out, NewGrid("HIEROGLYPHIC ALPHABET REFERENCE", entries).RenderResponsive(a.width))
				return err
			}
			return writeAlphabetTable(a.out, entries, a.outTTY, a.width)
		},
		UsageLine: "alphabet [options]",
		Short:     "list the mapping table",
		Flag:      *flag.NewFlagSet("alphabet", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&category, "category", "all", "letters, digits, punctuation or all")
	cmd.Flag.BoolVar(&grid, "grid", false, "render as a colored grid")
	return cmd
}

func (a *app) infoCmd() *commander.Command {
	return &commander.Command{
		Run: func(cmd *commander.Command, args []string) error {
			if len(args) != 1 || utf8.RuneCountInString(args[0]) != 1 {
				return errors.New("please provide a single character")
			}
			r, _ := utf8.DecodeRuneInString(args[0])
			_, err := fmt.Fprintln(a.out, hieroglyph.Info(r))
			return err
		},
		UsageLine: "info [options] <char>",
		Short:     "describe how one character is converted",
		Flag:      *flag.NewFlagSet("info", flag.ExitOnError),
	}
}

func (a *app) batchCmd() *commander.Command {
	opts := batchOptions{format: formatText, workers: runtime.NumCPU()}
	cmd := &commander.Command{
		Run: func(cmd *commander.Command, args []string) error {
			return runBatch(a.ctx, opts, args, a.in, a.out, a.outTTY, a.width)
		},
		UsageLine: "batch [options] [file...]",
		Short:     "convert every line of the given files (or stdin)",
		Long: `
convert every line of the given files, or of stdin when none are given

	$ hierotui batch -format json -explain names.txt
`,
		Flag: *flag.NewFlagSet("batch", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&opts.format, "format", formatText, "output format: text, table or json")
	cmd.Flag.IntVar(&opts.workers, "workers", runtime.NumCPU(), "lines converted in parallel")
	cmd.Flag.BoolVar(&opts.explain, "explain", false, "include the breakdown in json output")
	return cmd
}

// joinArgs turns positional arguments back into one text
func joinArgs(args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("nothing to convert")
	}
	return strings.Join(args, " "), nil
}

// readLine reads up to the first newline, without it
func readLine(r io.Reader) (string, error) {
	var b strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if buf[0] == '\n' {
				return strings.TrimSuffix(b.String(), "\r"), nil
			}
			b.WriteByte(buf[0])
		}
		if err != nil {
			return b.String(), err
		}
	}
}
