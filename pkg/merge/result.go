package merge

import (
	"fmt"
	"strings"

	"github.com/agentstation/utc"
)

// Result summarizes a merge run.
type Result struct {
	// Change counts
	Added    int `json:"added" yaml:"added"`
	Replaced int `json:"replaced" yaml:"replaced"`
	Erased   int `json:"erased" yaml:"erased"`

	// Anomalies
	Skipped    int       `json:"skipped" yaml:"skipped"`       // Records that changed nothing
	Duplicates int       `json:"duplicates" yaml:"duplicates"` // Duplicate keys in the input document
	Failures   []Failure `json:"failures,omitempty" yaml:"failures,omitempty"`

	// Document totals
	Records int `json:"records" yaml:"records"` // Records processed
	Before  int `json:"before" yaml:"before"`   // Entries in the document when the engine was created
	After   int `json:"after" yaml:"after"`     // Entries in the document now

	// Run metadata
	Erase     bool     `json:"erase" yaml:"erase"`
	Strict    bool     `json:"strict" yaml:"strict"`
	Output    string   `json:"output,omitempty" yaml:"output,omitempty"`
	Completed utc.Time `json:"completed" yaml:"completed"`
}

// Failure is a record that could not be merged.
type Failure struct {
	Source string `json:"source" yaml:"source"`
	Line   int    `json:"line" yaml:"line"`
	Name   string `json:"name" yaml:"name"`
	Error  string `json:"error" yaml:"error"`
}

// HasChanges returns true if the run modified the document.
func (r *Result) HasChanges() bool {
	return r.Added > 0 || r.Replaced > 0 || r.Erased > 0
}

// Summary returns a human-readable summary of the result.
func (r *Result) Summary() string {
	if !r.HasChanges() && r.Skipped == 0 {
		return "No changes"
	}

	summary := fmt.Sprintf("%d added, %d replaced", r.Added, r.Replaced)
	var parts []string
	if r.Erased > 0 {
		parts = append(parts, fmt.Sprintf("%d erased", r.Erased))
	}
	if r.Skipped > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", r.Skipped))
	}
	if len(parts) > 0 {
		summary += ", " + strings.Join(parts, ", ")
	}

	return fmt.Sprintf("%s (%d → %d entries)", summary, r.Before, r.After)
}
