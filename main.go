package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

const defaultWidth = 80

// newApp inspects the real terminal and wires the process streams
func newApp(ctx context.Context) *app {
	t := term.FromEnv()

	width, _, err := t.Size()
	if err != nil || width <= 0 {
		width = defaultWidth
	}

	// Plain output when piped or when color is disabled (NO_COLOR etc.)
	if !t.IsTerminalOutput() || !t.IsColorEnabled() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	return &app{
		ctx:    ctx,
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
		inTTY:  isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
		outTTY: t.IsTerminalOutput(),
		width:  width,
	}
}

// setupLogging sends the standard logger to $HIEROTUI_DEBUG, or nowhere.
// Writing to the terminal would corrupt the TUI.
func setupLogging() func() {
	path := os.Getenv("HIEROTUI_DEBUG")
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}
	}

	f, err := tea.LogToFile(path, "hierotui")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot open debug log: %v\n", err)
		log.SetOutput(io.Discard)
		return func() {}
	}
	return func() { f.Close() }
}

func main() {
	// Recover from panics to restore terminal state
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Fatal error: %v\n", r)
			os.Exit(1)
		}
	}()

	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	closeLog := setupLogging()
	defer closeLog()

	args := os.Args[1:]
	if len(args) == 0 {
		args = []string{"menu"}
	}

	a := newApp(ctx)
	if err := newRootCommand(a).Dispatch(ctx, args); err != nil {
		fmt.Fprintf(a.errOut, "Error: %v\n", err)
		return 1
	}
	if ctx.Err() != nil {
		return 130
	}
	return 0
}
