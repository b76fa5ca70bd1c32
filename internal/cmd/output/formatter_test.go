package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

func (s sample) Table() Data {
	return Data{
		Headers: Headers("name", "count"),
		Rows:    [][]string{{s.Name, "7"}},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"", "", false},
		{"wide", "", true},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatJSON).Format(&buf, sample{Name: "pune", Count: 7}))

	var got sample
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample{Name: "pune", Count: 7}, got)
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatYAML).Format(&buf, sample{Name: "pune", Count: 7}))
	assert.Contains(t, buf.String(), "name: pune")
	assert.Contains(t, buf.String(), "count: 7")
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, sample{Name: "kothrud"}))

	out := buf.String()
	assert.Contains(t, strings.ToUpper(out), "NAME")
	assert.Contains(t, out, "kothrud")
	assert.Contains(t, out, "7")
}

func TestTableFormatterData(t *testing.T) {
	var buf bytes.Buffer
	data := Data{
		Headers:         []string{"Container", "Entries"},
		Rows:            [][]string{{"pune/kothrud/enrollment", "1"}},
		ColumnAlignment: []Align{AlignLeft, AlignRight},
	}
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, &data))
	assert.Contains(t, buf.String(), "pune/kothrud/enrollment")
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, map[string]int{"a": 1}))
	assert.JSONEq(t, `{"a":1}`, buf.String())
}

func TestHeaders(t *testing.T) {
	assert.Equal(t, []string{"Entry Count", "Name"}, Headers("entry_count", "name"))
}
