package merge

import (
	"fmt"

	"github.com/agentstation/automark/pkg/index"
)

// Kind classifies a notice.
type Kind string

// Notice kinds.
const (
	KindAdded     Kind = "added"
	KindReplaced  Kind = "replaced"
	KindErased    Kind = "erased"
	KindDuplicate Kind = "duplicate"
	KindSkipped   Kind = "skipped"
)

// Notice describes one mutation of the document or one anomaly found while
// merging.
type Notice struct {
	Kind     Kind       `json:"kind" yaml:"kind"`
	Key      string     `json:"key,omitempty" yaml:"key,omitempty"`
	Path     index.Path `json:"path" yaml:"path"`
	Previous index.Path `json:"previous" yaml:"previous"` // replaced and duplicate only
	Source   string     `json:"source,omitempty" yaml:"source,omitempty"`
	Line     int        `json:"line,omitempty" yaml:"line,omitempty"`
	Err      error      `json:"-" yaml:"-"`
}

// Message renders the notice as a single diagnostic line.
func (n Notice) Message() string {
	switch n.Kind {
	case KindAdded:
		return fmt.Sprintf("added %s to %s", n.Key, n.Path)
	case KindReplaced:
		if n.Previous == n.Path {
			return fmt.Sprintf("replaced %s in %s", n.Key, n.Path)
		}
		return fmt.Sprintf("replaced %s, moved from %s to %s", n.Key, n.Previous, n.Path)
	case KindErased:
		return fmt.Sprintf("erased %s from %s", n.Key, n.Path)
	case KindDuplicate, KindSkipped:
		if n.Err != nil {
			return n.Err.Error()
		}
	}
	return fmt.Sprintf("%s %s", n.Kind, n.Key)
}

// IsProblem reports whether the notice is a warning or error rather than a
// change.
func (n Notice) IsProblem() bool {
	return n.Kind == KindDuplicate || n.Kind == KindSkipped
}
