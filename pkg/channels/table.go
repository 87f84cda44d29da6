package channels

import (
	"fmt"

	"github.com/agentstation/chanmap/pkg/constants"
	"github.com/agentstation/chanmap/pkg/errors"
)

// Table is the persisted channel table: contiguous slots keyed 1..Len().
// Slot i always holds the record whose SerialNumber is i.
type Table struct {
	slots []Record
}

// NewTable returns a table with n blank slots keyed 1..n.
func NewTable(n int) *Table {
	t := &Table{}
	t.grow(n)
	return t
}

// NewTableFromRecords builds a table from loaded rows. Keys must be unique
// and at least 1; gaps between keys become blank slots.
func NewTableFromRecords(records []Record) (*Table, error) {
	t := &Table{}
	seen := make(map[int]bool, len(records))
	for _, rec := range records {
		if err := checkKey(rec.SerialNumber); err != nil {
			return nil, err
		}
		if seen[rec.SerialNumber] {
			return nil, errors.NewValidationError("SerialNumber", rec.SerialNumber, "duplicate key")
		}
		seen[rec.SerialNumber] = true
		t.put(rec)
	}
	return t, nil
}

// Len returns the number of slots.
func (t *Table) Len() int {
	return len(t.slots)
}

// Get returns the record at key.
func (t *Table) Get(key int) (Record, bool) {
	if key < constants.FirstKey || key > len(t.slots) {
		return Record{}, false
	}
	return t.slots[key-1], true
}

// Set replaces the whole slot at rec.SerialNumber, growing the table with
// blank slots if the key is beyond the current range.
func (t *Table) Set(rec Record) error {
	if err := checkKey(rec.SerialNumber); err != nil {
		return err
	}
	t.put(rec)
	return nil
}

// checkKey rejects serial numbers outside FirstKey..MaxKey.
func checkKey(key int) error {
	if key < constants.FirstKey || key > constants.MaxKey {
		return errors.NewValidationError("SerialNumber", key,
			fmt.Sprintf("must be between %d and %d", constants.FirstKey, constants.MaxKey))
	}
	return nil
}

// Records returns a copy of every slot in key order.
func (t *Table) Records() []Record {
	out := make([]Record, len(t.slots))
	for i, rec := range t.slots {
		out[i] = rec.Clone()
	}
	return out
}

// Populated returns the non-blank slots in key order.
func (t *Table) Populated() []Record {
	var out []Record
	for _, rec := range t.slots {
		if !rec.IsBlank() {
			out = append(out, rec.Clone())
		}
	}
	return out
}

// Keys returns the keys of the non-blank slots.
func (t *Table) Keys() []int {
	var keys []int
	for _, rec := range t.slots {
		if !rec.IsBlank() {
			keys = append(keys, rec.SerialNumber)
		}
	}
	return keys
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	return &Table{slots: t.Records()}
}

// Rows returns the table as string cells in canonical column order.
func (t *Table) Rows() [][]string {
	rows := make([][]string, len(t.slots))
	for i, rec := range t.slots {
		rows[i] = rec.Values()
	}
	return rows
}

// String returns a short description for logs.
func (t *Table) String() string {
	return fmt.Sprintf("table(%d slots, %d populated)", len(t.slots), len(t.Keys()))
}

func (t *Table) put(rec Record) {
	t.grow(rec.SerialNumber)
	t.slots[rec.SerialNumber-1] = rec.Clone()
}

func (t *Table) grow(n int) {
	for key := len(t.slots) + 1; key <= n; key++ {
		t.slots = append(t.slots, Empty(key))
	}
}
