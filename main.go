package main

import (
	"fmt"
	"io"
	"os"

	"wordcount/internal/cli"
	"wordcount/internal/counter"
	"wordcount/internal/report"
)

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: wordcount [-l] [-w] [-c] [file ...]")
	fmt.Fprintln(w, "Count lines, words, and characters in files or stdin")
	fmt.Fprintln(w, "  -l    count lines")
	fmt.Fprintln(w, "  -w    count words")
	fmt.Fprintln(w, "  -c    count characters")
	fmt.Fprintln(w, "  If no options specified, counts all three")
	fmt.Fprintln(w, "  If no files specified, reads from stdin")
}

// countFile opens, counts, and closes one named source.
func countFile(name string) (counter.Counts, error) {
	file, err := os.Open(name)
	if err != nil {
		return counter.Counts{}, fmt.Errorf("cannot open file '%s'", name)
	}
	defer file.Close()

	counts, err := counter.Count(file)
	if err != nil {
		return counter.Counts{}, fmt.Errorf("cannot read file '%s': %w", name, err)
	}

	return counts, nil
}

// run drives one invocation and returns the process exit status: 0 on
// success, 1 on a usage error or the first failing source. File
// processing is fail-fast: the first source that cannot be opened or
// read aborts the run, leaving earlier result lines as printed.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, files, anyFlag, err := cli.Parse(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		printUsage(stderr)

		return 1
	}

	if !anyFlag {
		opts = cli.All()
	}

	if len(files) == 0 {
		counts, err := counter.Count(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "Error: cannot read standard input: %v\n", err)
			return 1
		}

		report.WriteCounts(stdout, counts, opts, "")

		return 0
	}

	var total counter.Counts

	for _, name := range files {
		counts, err := countFile(name)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}

		report.WriteCounts(stdout, counts, opts, name)
		total.Add(counts)
	}

	if len(files) > 1 {
		report.WriteCounts(stdout, total, opts, "total")
	}

	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
