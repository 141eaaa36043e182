package webserver

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"wordcount/internal/cli"
	"wordcount/internal/counter"
	"wordcount/internal/report"
)

// Result is one counted upload, ready for formatting.
type Result struct {
	FileName    string
	Counts      counter.Counts
	ProcessedAt string
}

// ContentType returns the MIME type for a result format.
func ContentType(format string) string {
	switch format {
	case "json":
		return "application/json"
	case "csv":
		return "text/csv"
	case "txt":
		return "text/plain; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}

// FormatResult renders a result in the requested format, honoring the
// count selection the same way the command line does. Supported
// formats are txt (the classic fixed-width line), json, and csv.
func FormatResult(res Result, opts cli.Options, format string) ([]byte, error) {
	switch format {
	case "txt":
		return []byte(report.FormatCounts(res.Counts, opts, res.FileName) + "\n"), nil

	case "json":
		payload := make(map[string]any, 5)
		payload["file_name"] = res.FileName
		payload["processed_at"] = res.ProcessedAt

		if opts.Lines {
			payload["lines"] = res.Counts.Lines
		}

		if opts.Words {
			payload["words"] = res.Counts.Words
		}

		if opts.Chars {
			payload["characters"] = res.Counts.Chars
		}

		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("JSON formatting error: %w", err)
		}

		return append(data, '\n'), nil

	case "csv":
		var buf bytes.Buffer

		writer := csv.NewWriter(&buf)

		header := []string{"file_name"}
		row := []string{res.FileName}

		if opts.Lines {
			header = append(header, "lines")
			row = append(row, strconv.FormatInt(res.Counts.Lines, 10))
		}

		if opts.Words {
			header = append(header, "words")
			row = append(row, strconv.FormatInt(res.Counts.Words, 10))
		}

		if opts.Chars {
			header = append(header, "characters")
			row = append(row, strconv.FormatInt(res.Counts.Chars, 10))
		}

		if err := writer.Write(header); err != nil {
			return nil, fmt.Errorf("CSV formatting error: %w", err)
		}

		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("CSV formatting error: %w", err)
		}

		writer.Flush()

		if err := writer.Error(); err != nil {
			return nil, fmt.Errorf("CSV formatting error: %w", err)
		}

		return buf.Bytes(), nil

	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}
