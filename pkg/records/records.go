// Package records reads marker rows from comma-delimited files. Each row is
//
//	index, name, latitude, longitude, lighthouse, locale, category
//
// with no header. Values are kept raw; normalization happens in the merge.
package records

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/agentstation/automark/pkg/constants"
	"github.com/agentstation/automark/pkg/errors"
)

// Record is one input row.
type Record struct {
	Source    string `json:"source" yaml:"source"`
	Line      int    `json:"line" yaml:"line"`
	Index     string `json:"index" yaml:"index"`
	Name      string `json:"name" yaml:"name"`
	Latitude  string `json:"latitude" yaml:"latitude"`
	Longitude string `json:"longitude" yaml:"longitude"`
	Group     string `json:"group" yaml:"group"`
	Subgroup  string `json:"subgroup" yaml:"subgroup"`
	Category  string `json:"category" yaml:"category"`

	// Err is set when the row could not be split into fields. Such records
	// carry only Source and Line.
	Err error `json:"-" yaml:"-"`
}

// Reader reads records from a CSV stream.
type Reader struct {
	csv    *csv.Reader
	source string
}

// NewReader returns a Reader over r. source names the stream in errors.
func NewReader(r io.Reader, source string) *Reader {
	cr := csv.NewReader(r)
	cr.Comma = ','
	cr.FieldsPerRecord = -1
	// DMS values carry bare double quotes for seconds.
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	return &Reader{csv: cr, source: source}
}

// Next returns the next record, or io.EOF. A row with the wrong number of
// fields is returned as a record with Err set so that the caller can report
// it and continue; any other read failure is returned as an error.
func (r *Reader) Next() (Record, error) {
	for {
		fields, err := r.csv.Read()
		if err == io.EOF {
			return Record{}, io.EOF
		}
		if err != nil {
			perr := &errors.ParseError{Format: "csv", File: r.source, Message: err.Error(), Err: err}
			var cerr *csv.ParseError
			if errors.As(err, &cerr) {
				perr.Line, perr.Column = cerr.Line, cerr.Column
			}
			return Record{}, perr
		}
		line, _ := r.csv.FieldPos(0)
		if isBlank(fields) {
			continue
		}

		rec := Record{Source: r.source, Line: line}
		if len(fields) != constants.RecordFields {
			rec.Err = &errors.ParseError{
				Format:  "csv",
				File:    r.source,
				Line:    line,
				Column:  1,
				Message: fmt.Sprintf("expected %d fields, got %d", constants.RecordFields, len(fields)),
			}
			return rec, nil
		}

		rec.Index = fields[0]
		rec.Name = fields[1]
		rec.Latitude = fields[2]
		rec.Longitude = fields[3]
		rec.Group = fields[4]
		rec.Subgroup = fields[5]
		rec.Category = fields[6]
		return rec, nil
	}
}

// ReadAll reads every remaining record.
func (r *Reader) ReadAll() ([]Record, error) {
	var out []Record
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
}

// ReadFile reads all records from the file at path. The file is closed
// before ReadFile returns.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	return NewReader(f, path).ReadAll()
}

func isBlank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
