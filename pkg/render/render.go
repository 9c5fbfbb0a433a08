package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/jtarrant/chfmt/pkg/record"
)

const (
	// separator sits between the timestamp prefix and the display text.
	separator = "  "

	// minTextWidth is the wrap-width floor, guaranteeing forward progress
	// on very narrow terminals.
	minTextWidth = 20
)

// Render formats one record as a block of lines. The first line carries the
// timestamp prefix; continuation lines are padded to the same start column
// as the text following it. Empty display text yields a single line holding
// the prefix alone, trailing spaces trimmed.
func Render(rec record.Record, cfg Config) []string {
	prefix := FormatTimestamp(rec.Timestamp) + separator
	indent := runewidth.StringWidth(prefix)

	display := rec.Display
	if cfg.TrimWords >= 0 {
		display = TrimWords(display, cfg.TrimWords)
	}

	textWidth := cfg.Width - indent
	if textWidth < minTextWidth {
		textWidth = minTextWidth
	}

	wrapped := Wrap(display, textWidth)

	lines := make([]string, 0, len(wrapped))
	lines = append(lines, strings.TrimRight(prefix+wrapped[0], " "))
	pad := strings.Repeat(" ", indent)
	for _, line := range wrapped[1:] {
		lines = append(lines, pad+line)
	}
	return lines
}

// WriteBlocks renders every record to w. Blocks are separated by exactly one
// blank line, with no blank line after the last block and a single trailing
// newline terminating the stream.
func WriteBlocks(w io.Writer, recs []record.Record, cfg Config) error {
	for i, rec := range recs {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		for _, line := range Render(rec, cfg) {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}
