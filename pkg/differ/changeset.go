package differ

import (
	"fmt"
	"strings"

	"github.com/agentstation/chanmap/pkg/channels"
)

// ChangeType represents the type of change.
type ChangeType string

const (
	// ChangeTypeAdd indicates a blank cell or slot was filled.
	ChangeTypeAdd ChangeType = "add"
	// ChangeTypeUpdate indicates a value was replaced.
	ChangeTypeUpdate ChangeType = "update"
	// ChangeTypeRemove indicates a value was blanked.
	ChangeTypeRemove ChangeType = "remove"
)

// FieldChange represents a change to a single cell.
type FieldChange struct {
	Column   string     `json:"column" yaml:"column"`
	OldValue string     `json:"old_value" yaml:"old_value"`
	NewValue string     `json:"new_value" yaml:"new_value"`
	Type     ChangeType `json:"type" yaml:"type"`
}

// String returns a compact "column: old -> new" description.
func (c FieldChange) String() string {
	return fmt.Sprintf("%s: %q -> %q", c.Column, c.OldValue, c.NewValue)
}

// RecordUpdate represents a populated slot whose cells changed.
type RecordUpdate struct {
	Key      int             `json:"key" yaml:"key"`
	Existing channels.Record `json:"existing" yaml:"existing"`
	New      channels.Record `json:"new" yaml:"new"`
	Changes  []FieldChange   `json:"changes" yaml:"changes"`
}

// Changeset represents all slot changes between two tables.
type Changeset struct {
	Added   []channels.Record `json:"added" yaml:"added"`
	Updated []RecordUpdate    `json:"updated" yaml:"updated"`
	Cleared []channels.Record `json:"cleared" yaml:"cleared"`
	Summary ChangesetSummary  `json:"summary" yaml:"summary"`
}

// ChangesetSummary provides summary statistics for a changeset.
type ChangesetSummary struct {
	Added        int `json:"added" yaml:"added"`
	Updated      int `json:"updated" yaml:"updated"`
	Cleared      int `json:"cleared" yaml:"cleared"`
	TotalChanges int `json:"total_changes" yaml:"total_changes"`
}

// HasChanges returns true if the changeset contains any changes.
func (c *Changeset) HasChanges() bool {
	return c.Summary.TotalChanges > 0
}

// IsEmpty returns true if the changeset contains no changes.
func (c *Changeset) IsEmpty() bool {
	return c.Summary.TotalChanges == 0
}

// String returns a human-readable summary of the changeset.
func (c *Changeset) String() string {
	if c.IsEmpty() {
		return "No changes detected"
	}

	var parts []string
	if c.Summary.Added > 0 {
		parts = append(parts, fmt.Sprintf("%d added", c.Summary.Added))
	}
	if c.Summary.Updated > 0 {
		parts = append(parts, fmt.Sprintf("%d updated", c.Summary.Updated))
	}
	if c.Summary.Cleared > 0 {
		parts = append(parts, fmt.Sprintf("%d cleared", c.Summary.Cleared))
	}
	return fmt.Sprintf("Channels: %s", strings.Join(parts, ", "))
}

// calculateSummary computes the summary for a changeset.
func calculateSummary(c *Changeset) ChangesetSummary {
	added := len(c.Added)
	updated := len(c.Updated)
	cleared := len(c.Cleared)
	return ChangesetSummary{
		Added:        added,
		Updated:      updated,
		Cleared:      cleared,
		TotalChanges: added + updated + cleared,
	}
}
