package counter

import (
	"bufio"
	"io"
)

// Counts holds the accumulated statistics for one input stream.
type Counts struct {
	Lines int64 `json:"lines"`
	Words int64 `json:"words"`
	Chars int64 `json:"characters"`
}

// Add accumulates another stream's counts field-wise.
func (c *Counts) Add(other Counts) {
	c.Lines += other.Lines
	c.Words += other.Words
	c.Chars += other.Chars
}

// isSpace reports whether b belongs to the ASCII whitespace set used
// for word boundaries: space, tab, newline, carriage return, vertical
// tab, form feed. The set is fixed; word splitting must not depend on
// the locale.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}

	return false
}

// Count reads r to exhaustion and returns its line, word, and
// character counts in a single pass.
//
// Characters are raw bytes, so multi-byte encoded text counts every
// byte that appears in the stream. Lines are newline bytes, which
// means an unterminated final line is not counted. A word is a maximal
// run of non-whitespace bytes; consecutive whitespace contributes no
// extra words.
func Count(r io.Reader) (Counts, error) {
	var (
		br     = bufio.NewReader(r)
		counts Counts
		inWord bool
	)

	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			return counts, nil
		}

		if err != nil {
			return counts, err
		}

		counts.Chars++

		if b == '\n' {
			counts.Lines++
		}

		if isSpace(b) {
			inWord = false
		} else if !inWord {
			inWord = true
			counts.Words++
		}
	}
}
