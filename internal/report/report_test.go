package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordcount/internal/cli"
	"wordcount/internal/counter"
)

func TestFormatCounts(t *testing.T) {
	counts := counter.Counts{Lines: 3, Words: 9, Chars: 45}

	tests := []struct {
		name     string
		opts     cli.Options
		label    string
		expected string
	}{
		{
			name:     "all counts with label",
			opts:     cli.All(),
			label:    "notes.txt",
			expected: "       3       9      45 notes.txt",
		},
		{
			name:     "all counts without label",
			opts:     cli.All(),
			expected: "       3       9      45",
		},
		{
			name:     "lines only",
			opts:     cli.Options{Lines: true},
			expected: "       3",
		},
		{
			name:     "words and chars",
			opts:     cli.Options{Words: true, Chars: true},
			label:    "total",
			expected: "       9      45 total",
		},
		{
			name:     "nothing selected still shows label",
			opts:     cli.Options{},
			label:    "notes.txt",
			expected: " notes.txt",
		},
		{
			name:     "nothing selected and no label",
			opts:     cli.Options{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCounts(counts, tt.opts, tt.label))
		})
	}
}

func TestFormatCountsWideValue(t *testing.T) {
	counts := counter.Counts{Lines: 123456789, Words: 0, Chars: 0}

	// Values wider than the field keep their digits; alignment just
	// stops padding.
	got := FormatCounts(counts, cli.Options{Lines: true, Words: true}, "")
	assert.Equal(t, "123456789       0", got)
}

func TestWriteCounts(t *testing.T) {
	var sb strings.Builder

	err := WriteCounts(&sb, counter.Counts{Lines: 1, Words: 2, Chars: 12}, cli.All(), "hello.txt")
	require.NoError(t, err)
	assert.Equal(t, "       1       2      12 hello.txt\n", sb.String())
}
