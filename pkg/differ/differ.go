// Package differ provides functionality for comparing channel records and
// tables and describing what changed between them.
package differ

import (
	"github.com/agentstation/chanmap/pkg/channels"
)

// Differ handles change detection between channel records.
type Differ interface {
	// Records compares two versions of one slot column by column
	Records(existing, updated channels.Record) []FieldChange

	// Tables compares two tables slot by slot
	Tables(existing, updated *channels.Table) *Changeset
}

// differ is the default implementation of Differ.
type differ struct {
	ignoreColumns map[string]bool
}

// New creates a Differ with default settings.
func New(opts ...Option) Differ {
	d := &differ{
		ignoreColumns: make(map[string]bool),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Records compares two records cell by cell in canonical column order.
func (diff *differ) Records(existing, updated channels.Record) []FieldChange {
	oldValues := existing.Values()
	newValues := updated.Values()

	var changes []FieldChange
	for i, col := range channels.Columns {
		if diff.ignoreColumns[col] || oldValues[i] == newValues[i] {
			continue
		}
		changeType := ChangeTypeUpdate
		switch {
		case oldValues[i] == "":
			changeType = ChangeTypeAdd
		case newValues[i] == "":
			changeType = ChangeTypeRemove
		}
		changes = append(changes, FieldChange{
			Column:   col,
			OldValue: oldValues[i],
			NewValue: newValues[i],
			Type:     changeType,
		})
	}
	return changes
}

// Tables compares every slot of two tables. Slots present in only one table
// are compared against a blank slot with the same key.
func (diff *differ) Tables(existing, updated *channels.Table) *Changeset {
	changeset := &Changeset{
		Added:   []channels.Record{},
		Updated: []RecordUpdate{},
		Cleared: []channels.Record{},
	}

	n := 0
	if existing != nil {
		n = existing.Len()
	}
	if updated != nil && updated.Len() > n {
		n = updated.Len()
	}

	for key := 1; key <= n; key++ {
		before := slot(existing, key)
		after := slot(updated, key)

		changes := diff.Records(before, after)
		if len(changes) == 0 {
			continue
		}

		switch {
		case before.IsBlank() && !after.IsBlank():
			changeset.Added = append(changeset.Added, after)
		case !before.IsBlank() && after.IsBlank():
			changeset.Cleared = append(changeset.Cleared, before)
		default:
			changeset.Updated = append(changeset.Updated, RecordUpdate{
				Key:      key,
				Existing: before,
				New:      after,
				Changes:  changes,
			})
		}
	}

	changeset.Summary = calculateSummary(changeset)
	return changeset
}

func slot(t *channels.Table, key int) channels.Record {
	if t == nil {
		return channels.Empty(key)
	}
	if rec, ok := t.Get(key); ok {
		return rec
	}
	return channels.Empty(key)
}
