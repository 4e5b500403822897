package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// runLineLoop is the interactive converter for non-terminal input: it reads
// one line at a time and answers on w until a quit command or end of input.
func runLineLoop(r io.Reader, w io.Writer) error {
	if _, err := fmt.Fprintln(w, welcomeText()+"\n"); err != nil {
		return err
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		var out string
		switch strings.ToLower(text) {
		case "quit", "exit", "q":
			_, err := fmt.Fprintln(w, farewellMessage)
			return err
		case "help":
			out = renderHistoryItem(historyItem{kind: histHelp}, 0)
		case "alphabet":
			out = renderHistoryItem(historyItem{kind: histAlphabet}, minTerminalWidth)
		case "examples":
			out = renderHistoryItem(historyItem{kind: histExamples}, 0)
		default:
			out = renderHistoryItem(historyItem{kind: histConversion, input: text}, 0)
		}

		if _, err := fmt.Fprintln(w, out+"\n"); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	_, err := fmt.Fprintln(w, interruptMessage)
	return err
}
