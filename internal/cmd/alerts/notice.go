package alerts

import (
	"fmt"

	"github.com/agentstation/automark/pkg/errors"
	"github.com/agentstation/automark/pkg/merge"
)

// FromNotice converts a merge notice into the alert printed for it.
func FromNotice(n merge.Notice) *Alert {
	switch n.Kind {
	case merge.KindAdded:
		return New(LevelAdded, n.Message())
	case merge.KindReplaced:
		return New(LevelReplaced, n.Message())
	case merge.KindErased:
		return New(LevelErased, n.Message())
	case merge.KindDuplicate:
		return NewWarning(n.Message())
	case merge.KindSkipped:
		if errors.IsLookup(n.Err) {
			return NewWarning(n.Message())
		}
		return NewError(n.Message())
	default:
		return NewInfo(fmt.Sprintf("%s %s", n.Kind, n.Key))
	}
}

// Notifier returns a merge notice callback that writes each notice to w.
// The first write error is kept in *errp and later notices are dropped.
func Notifier(w Writer, errp *error) func(merge.Notice) {
	return func(n merge.Notice) {
		if *errp != nil {
			return
		}
		*errp = w.WriteAlert(FromNotice(n))
	}
}
