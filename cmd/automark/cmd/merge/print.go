package merge

import (
	"io"
	"strconv"

	"github.com/agentstation/automark/internal/cmd/output"
	"github.com/agentstation/automark/pkg/merge"
)

// printResult writes the run report. Tables show the counts; structured
// formats carry the full result, failures included.
func printResult(w io.Writer, format output.Format, result *merge.Result) error {
	formatter := output.NewFormatter(format)

	switch format {
	case output.FormatJSON, output.FormatYAML:
		return formatter.Format(w, result)
	}

	data := output.Data{
		Headers: output.Headers("added", "replaced", "erased", "skipped", "duplicates", "before", "after"),
		Rows: [][]string{{
			strconv.Itoa(result.Added),
			strconv.Itoa(result.Replaced),
			strconv.Itoa(result.Erased),
			strconv.Itoa(result.Skipped),
			strconv.Itoa(result.Duplicates),
			strconv.Itoa(result.Before),
			strconv.Itoa(result.After),
		}},
	}
	return formatter.Format(w, data)
}
