package alerts

import (
	"fmt"

	"github.com/agentstation/automark/internal/cmd/emoji"
)

// Level represents the kind of an alert.
type Level int

const (
	// LevelError indicates a record that was skipped or a failed run.
	LevelError Level = iota
	// LevelWarning indicates an anomaly that did not stop the run.
	LevelWarning
	// LevelInfo indicates general informational messages.
	LevelInfo
	// LevelSuccess indicates successful completion of an operation.
	LevelSuccess
	// LevelAdded indicates a placemark appended for a new key.
	LevelAdded
	// LevelReplaced indicates a placemark that replaced an existing one.
	LevelReplaced
	// LevelErased indicates a placemark removed in erase mode.
	LevelErased
)

// String returns the string representation of the alert level.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelInfo:
		return "info"
	case LevelSuccess:
		return "success"
	case LevelAdded:
		return "added"
	case LevelReplaced:
		return "replaced"
	case LevelErased:
		return "erased"
	default:
		return fmt.Sprintf("unknown(%d)", l)
	}
}

// Icon returns the symbol printed before the alert message.
func (l Level) Icon() string {
	switch l {
	case LevelError:
		return emoji.Error
	case LevelWarning:
		return emoji.Warning
	case LevelInfo:
		return emoji.Info
	case LevelSuccess:
		return emoji.Success
	case LevelAdded:
		return emoji.Added
	case LevelReplaced:
		return emoji.Replaced
	case LevelErased:
		return emoji.Erased
	default:
		return emoji.Unknown
	}
}

// Color returns ANSI color codes for terminal output.
func (l Level) Color() string {
	switch l {
	case LevelError:
		return "\033[31m" // Red
	case LevelWarning, LevelReplaced:
		return "\033[33m" // Yellow
	case LevelInfo:
		return "\033[36m" // Cyan
	case LevelSuccess, LevelAdded:
		return "\033[32m" // Green
	case LevelErased:
		return "\033[35m" // Magenta
	default:
		return "\033[0m" // Reset
	}
}

// ResetColor returns the ANSI reset code.
func ResetColor() string {
	return "\033[0m"
}
