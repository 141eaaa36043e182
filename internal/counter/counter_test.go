package counter

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Counts
	}{
		{
			name:     "empty stream",
			input:    "",
			expected: Counts{Lines: 0, Words: 0, Chars: 0},
		},
		{
			name:     "single line with two words",
			input:    "hello world\n",
			expected: Counts{Lines: 1, Words: 2, Chars: 12},
		},
		{
			name:     "no trailing newline",
			input:    "abc",
			expected: Counts{Lines: 0, Words: 1, Chars: 3},
		},
		{
			name:     "whitespace only",
			input:    "   \n\t  \n",
			expected: Counts{Lines: 2, Words: 0, Chars: 8},
		},
		{
			name:     "only newlines",
			input:    "\n\n\n",
			expected: Counts{Lines: 3, Words: 0, Chars: 3},
		},
		{
			name:     "collapsed whitespace runs",
			input:    "word1    word2\n",
			expected: Counts{Lines: 1, Words: 2, Chars: 15},
		},
		{
			name:     "tabs and carriage returns split words",
			input:    "a\tb\rc\vd\fe\n",
			expected: Counts{Lines: 1, Words: 5, Chars: 10},
		},
		{
			name:     "multi-byte text counts raw bytes",
			input:    "héllo wörld\n", // é and ö are two bytes each in UTF-8
			expected: Counts{Lines: 1, Words: 2, Chars: 14},
		},
		{
			name:     "crlf line endings",
			input:    "one\r\ntwo\r\n",
			expected: Counts{Lines: 2, Words: 2, Chars: 10},
		},
		{
			name:     "word spanning multiple lines of padding",
			input:    "  leading\n\n  trailing  ",
			expected: Counts{Lines: 2, Words: 2, Chars: 23},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Count(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCountIsPure(t *testing.T) {
	input := "the same   input\ncounted twice\n"

	first, err := Count(strings.NewReader(input))
	require.NoError(t, err)

	second, err := Count(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// Counting two halves separately and summing is not the same as
// counting the concatenated stream when a word spans the split point:
// lines and characters sum exactly, words merge at the boundary.
func TestCountConcatenationBoundary(t *testing.T) {
	partA := "one two thr"
	partB := "ee four\n"

	whole, err := Count(strings.NewReader(partA + partB))
	require.NoError(t, err)

	countsA, err := Count(strings.NewReader(partA))
	require.NoError(t, err)

	countsB, err := Count(strings.NewReader(partB))
	require.NoError(t, err)

	summed := countsA
	summed.Add(countsB)

	assert.Equal(t, whole.Lines, summed.Lines)
	assert.Equal(t, whole.Chars, summed.Chars)
	// "thr" + "ee" is one word in the continuous stream but two when
	// the halves are counted independently.
	assert.Equal(t, whole.Words+1, summed.Words)
}

func TestCountsAdd(t *testing.T) {
	total := Counts{Lines: 1, Words: 2, Chars: 3}
	total.Add(Counts{Lines: 10, Words: 20, Chars: 30})

	assert.Equal(t, Counts{Lines: 11, Words: 22, Chars: 33}, total)
}

type failingReader struct {
	data []byte
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}

	n := copy(p, r.data)
	r.data = r.data[n:]

	return n, nil
}

func TestCountReadError(t *testing.T) {
	readErr := errors.New("device gone")

	counts, err := Count(&failingReader{data: []byte("partial input"), err: readErr})
	require.Error(t, err)
	assert.ErrorIs(t, err, readErr)
	// Bytes consumed before the failure are still reflected.
	assert.Equal(t, int64(13), counts.Chars)
}
