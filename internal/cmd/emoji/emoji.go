// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across all commands.
package emoji

// Status symbols.
const (
	// Success represents successful completion of an operation.
	Success = "✓"

	// Error represents a failure that stopped or skipped work.
	Error = "✗"

	// Warning represents a non-fatal anomaly, such as a duplicate key.
	Warning = "!"

	// Info represents informational messages.
	Info = "i"

	// Unknown represents unrecognized states.
	Unknown = "?"
)

// Change symbols, one per kind of document mutation.
const (
	// Added marks a placemark appended for a new key.
	Added = "+"

	// Replaced marks a placemark that superseded an existing one.
	Replaced = "~"

	// Erased marks a placemark removed in erase mode.
	Erased = "-"
)
