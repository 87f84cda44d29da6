// Package table converts channel data into rows for table output.
package table

import (
	"strconv"
	"strings"

	"github.com/agentstation/chanmap/internal/cmd/emoji"
	"github.com/agentstation/chanmap/pkg/channels"
	"github.com/agentstation/chanmap/pkg/differ"
	"github.com/agentstation/chanmap/pkg/merger"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// ChannelsToTableData converts records to table rows. The compact layout
// shows the cells people usually check; wide shows every canonical column.
func ChannelsToTableData(records []channels.Record, wide bool) Data {
	if wide {
		rows := make([][]string, 0, len(records))
		for _, rec := range records {
			rows = append(rows, rec.Values())
		}
		return Data{Headers: channels.Columns, Rows: rows}
	}

	headers := []string{"SN", "Name", "RX", "TX", "RX Tone", "TX Tone", "Band", "Power"}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			strconv.Itoa(rec.SerialNumber),
			dash(rec.Name),
			dash(rec.RxFreqCell()),
			dash(rec.TxFreqCell()),
			dash(rec.RxTone.String()),
			dash(rec.TxTone.String()),
			dash(rec.Band.String()),
			dash(rec.Power),
		})
	}
	return Data{
		Headers: headers,
		Rows:    rows,
		ColumnAlignment: []Align{
			AlignRight, AlignLeft, AlignRight, AlignRight,
			AlignLeft, AlignLeft, AlignLeft, AlignLeft,
		},
	}
}

// ChangesToTableData converts merge outcomes to table rows. Unchanged and
// skipped channels are listed only when wide is set.
func ChangesToTableData(changes []merger.Change, wide bool) Data {
	rows := make([][]string, 0, len(changes))
	for _, change := range changes {
		if !wide && (change.Outcome == merger.OutcomeUnchanged || change.Outcome == merger.OutcomeSkipped) {
			continue
		}
		rows = append(rows, []string{
			OutcomeSymbol(change.Outcome),
			strconv.Itoa(change.Key),
			string(change.Outcome),
			dash(FieldsString(change.Fields)),
		})
	}
	return Data{
		Headers:         []string{"", "SN", "Outcome", "Changes"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignCenter, AlignRight, AlignLeft, AlignLeft},
	}
}

// OutcomeSymbol returns the marker for a merge outcome.
func OutcomeSymbol(outcome merger.Outcome) string {
	switch outcome {
	case merger.OutcomeAdded:
		return emoji.Added
	case merger.OutcomeUpdated:
		return emoji.Updated
	case merger.OutcomeSkipped:
		return emoji.Skipped
	case merger.OutcomeCleared:
		return emoji.Cleared
	default:
		return emoji.Unchanged
	}
}

// FieldsString joins cell changes as "column: old -> new" with the
// Channel_ prefix trimmed.
func FieldsString(fields []differ.FieldChange) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, strings.TrimPrefix(f.Column, "Channel_")+": "+dash(f.OldValue)+" -> "+dash(f.NewValue))
	}
	return strings.Join(parts, ", ")
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
