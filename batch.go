package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/cli/go-gh/v2/pkg/jsonpretty"
	"github.com/cli/go-gh/v2/pkg/tableprinter"
	"golang.org/x/sync/errgroup"

	"hierotui/hieroglyph"
)

// Batch output formats
const (
	formatText  = "text"
	formatTable = "table"
	formatJSON  = "json"
)

const maxLineSize = 1 << 20

// BatchLine is one input line and its conversion
type BatchLine struct {
	Source      string      `json:"source"`
	Line        int         `json:"line"`
	Input       string      `json:"input"`
	Output      string      `json:"output"`
	Unsupported []string    `json:"unsupported,omitempty"`
	Breakdown   []JSONEntry `json:"breakdown,omitempty"`
}

// JSONEntry is the wire form of a breakdown entry
type JSONEntry struct {
	Char     string `json:"char"`
	Glyph    string `json:"glyph"`
	Meaning  string `json:"meaning,omitempty"`
	Category string `json:"category,omitempty"`
	Matched  bool   `json:"matched"`
}

// readLines collects every line of r, tagged with its source name
func readLines(source string, r io.Reader) ([]BatchLine, error) {
	var lines []BatchLine

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for n := 1; sc.Scan(); n++ {
		lines = append(lines, BatchLine{Source: source, Line: n, Input: sc.Text()})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}

	return lines, nil
}

// readSources reads the named files in order, or stdin when none are given
func readSources(paths []string, stdin io.Reader) ([]BatchLine, error) {
	if len(paths) == 0 {
		return readLines("-", stdin)
	}

	var all []BatchLine
	for _, p := range paths {
		if p == "-" {
			lines, err := readLines("-", stdin)
			if err != nil {
				return nil, err
			}
			all = append(all, lines...)
			continue
		}

		f, err := os.Open(p)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		lines, err := readLines(p, f)
		f.Close()
		if err != nil {
			return nil, err
		}
		all = append(all, lines...)
	}
	return all, nil
}

// convertLines fills in every line's conversion using up to workers
// goroutines. Each goroutine owns one slot of lines, so order is preserved.
func convertLines(ctx context.Context, lines []BatchLine, workers int, explain bool) error {
	if workers < 1 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range lines {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			l := &lines[i]
			res := hieroglyph.Translate(l.Input)
			l.Output = res.String()

			if _, unsupported := hieroglyph.Validate(l.Input); len(unsupported) > 0 {
				l.Unsupported = make([]string, len(unsupported))
				for j, r := range unsupported {
					l.Unsupported[j] = string(r)
				}
			}
			if explain {
				l.Breakdown = toJSONEntries(res.Breakdown)
			}
			return nil
		})
	}

	return g.Wait()
}

func toJSONEntries(breakdown []hieroglyph.BreakdownEntry) []JSONEntry {
	out := make([]JSONEntry, len(breakdown))
	for i, be := range breakdown {
		out[i] = JSONEntry{
			Char:    string(be.Input),
			Glyph:   be.Glyph,
			Meaning: be.Meaning,
			Matched: be.Matched,
		}
		if be.Matched {
			out[i].Category = be.Entry.Category.String()
		}
	}
	return out
}

// writeBatch renders converted lines in the requested format
func writeBatch(w io.Writer, lines []BatchLine, format string, isTTY bool, width int) error {
	switch format {
	case formatText, "":
		bw := bufio.NewWriter(w)
		for _, l := range lines {
			if _, err := fmt.Fprintln(bw, l.Output); err != nil {
				return err
			}
		}
		return bw.Flush()

	case formatTable:
		tp := tableprinter.New(w, isTTY, width)
		tp.AddHeader([]string{"SOURCE", "LINE", "INPUT", "OUTPUT"})
		for _, l := range lines {
			tp.AddField(l.Source)
			tp.AddField(strconv.Itoa(l.Line))
			tp.AddField(l.Input)
			tp.AddField(l.Output)
			tp.EndRow()
		}
		return tp.Render()

	case formatJSON:
		if lines == nil {
			lines = []BatchLine{}
		}
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(lines); err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
		return jsonpretty.Format(w, &buf, "  ", isTTY)

	default:
		return fmt.Errorf("unknown format %q (want text, table or json)", format)
	}
}

// runBatch reads, converts and writes a batch in one go
func runBatch(ctx context.Context, opts batchOptions, paths []string, stdin io.Reader, w io.Writer, isTTY bool, width int) error {
	switch opts.format {
	case formatText, formatTable, formatJSON:
	default:
		return fmt.Errorf("unknown format %q (want text, table or json)", opts.format)
	}

	lines, err := readSources(paths, stdin)
	if err != nil {
		return err
	}
	log.Printf("batch: %d lines from %d sources, %d workers", len(lines), max(len(paths), 1), opts.workers)

	if err := convertLines(ctx, lines, opts.workers, opts.explain); err != nil {
		return err
	}

	return writeBatch(w, lines, opts.format, isTTY, width)
}
