// Package cli parses the wordcount command line.
//
// The flag grammar is deliberately rigid: a maximal leading run of
// tokens starting with '-', each of which must be exactly one of -l,
// -w, or -c. Combined forms such as -lw are rejected, and everything
// from the first non-flag token onward is a file path.
package cli

import "fmt"

// Options selects which counts are printed.
type Options struct {
	Lines bool
	Words bool
	Chars bool
}

// All returns the default selection used when no flag was given.
func All() Options {
	return Options{Lines: true, Words: true, Chars: true}
}

// UsageError reports a token in the leading flag run that is not a
// recognized option.
type UsageError struct {
	Token string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("Unknown option: %s", e.Token)
}

// Parse scans args and returns the selected options, the remaining
// file paths in their original order, and whether any flag was seen at
// all. Callers are responsible for widening an empty selection to All;
// Parse itself reports exactly what was requested.
func Parse(args []string) (Options, []string, bool, error) {
	var (
		opts    Options
		anyFlag bool
	)

	i := 0
	for ; i < len(args); i++ {
		arg := args[i]
		if len(arg) == 0 || arg[0] != '-' {
			break
		}

		switch arg {
		case "-l":
			opts.Lines = true
		case "-w":
			opts.Words = true
		case "-c":
			opts.Chars = true
		default:
			return Options{}, nil, false, &UsageError{Token: arg}
		}

		anyFlag = true
	}

	return opts, args[i:], anyFlag, nil
}
