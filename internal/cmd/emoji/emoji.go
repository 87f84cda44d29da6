// Package emoji provides symbol constants for CLI output.
package emoji

// Status symbols used by alerts.
const (
	// Success represents successful completion of an operation.
	Success = "✓"

	// Error represents a failed operation.
	Error = "✗"

	// Warning represents a non-fatal issue, such as a dry run or a dropped column.
	Warning = "!"

	// Info represents informational messages.
	Info = "i"
)

// Outcome markers shown next to channels in change tables.
const (
	// Added marks a channel written into a blank slot.
	Added = "+"

	// Updated marks a channel whose cells changed.
	Updated = "~"

	// Unchanged marks a channel that already matched its slot.
	Unchanged = "="

	// Skipped marks a blank input row that was not allowed to erase a channel.
	Skipped = "·"

	// Cleared marks a channel blanked by the merge.
	Cleared = "-"
)
