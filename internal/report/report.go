// Package report renders counting results in the fixed-width layout
// used by classic wc: each selected count right-justified in an
// 8-character field, followed by the source label when one applies.
package report

import (
	"fmt"
	"io"
	"strings"

	"wordcount/internal/cli"
	"wordcount/internal/counter"
)

const fieldWidth = 8

// FormatCounts renders one result line without its trailing newline.
// An empty label means the source was standard input and gets no
// label. Field order is fixed: lines, words, characters.
func FormatCounts(counts counter.Counts, opts cli.Options, label string) string {
	var b strings.Builder

	if opts.Lines {
		fmt.Fprintf(&b, "%*d", fieldWidth, counts.Lines)
	}

	if opts.Words {
		fmt.Fprintf(&b, "%*d", fieldWidth, counts.Words)
	}

	if opts.Chars {
		fmt.Fprintf(&b, "%*d", fieldWidth, counts.Chars)
	}

	if label != "" {
		b.WriteByte(' ')
		b.WriteString(label)
	}

	return b.String()
}

// WriteCounts writes one result line, newline-terminated, to w.
func WriteCounts(w io.Writer, counts counter.Counts, opts cli.Options, label string) error {
	_, err := fmt.Fprintln(w, FormatCounts(counts, opts, label))
	return err
}
