package differ_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/chanmap/internal/utils/ptr"
	"github.com/agentstation/chanmap/pkg/channels"
	"github.com/agentstation/chanmap/pkg/differ"
)

func channel(key int, name string, rx float64) channels.Record {
	return channels.Record{
		SerialNumber: key,
		RxFreq:       ptr.Float64(rx),
		TxFreq:       ptr.Float64(rx),
		Name:         name,
		Band:         channels.BandWide,
	}
}

func TestRecords(t *testing.T) {
	d := differ.New()

	assert.Empty(t, d.Records(channel(1, "A", 146.52), channel(1, "A", 146.52)))

	old := channel(1, "A", 146.52)
	updated := channel(1, "B", 146.52)
	updated.Band = ""
	updated.Power = "Low"

	changes := d.Records(old, updated)
	require.Len(t, changes, 3)

	assert.Equal(t, differ.FieldChange{Column: channels.ColPower, OldValue: "", NewValue: "Low", Type: differ.ChangeTypeAdd}, changes[0])
	assert.Equal(t, differ.ChangeTypeRemove, changes[1].Type)
	assert.Equal(t, channels.ColBand, changes[1].Column)
	assert.Equal(t, differ.ChangeTypeUpdate, changes[2].Type)
	assert.Equal(t, `Channel_Name: "A" -> "B"`, changes[2].String())
}

func TestRecordsIgnoredColumns(t *testing.T) {
	d := differ.New(differ.WithIgnoredColumns(channels.ColName))
	assert.Empty(t, d.Records(channel(1, "A", 146.52), channel(1, "B", 146.52)))
}

func TestTables(t *testing.T) {
	before := channels.NewTable(5)
	require.NoError(t, before.Set(channel(1, "Keep", 146.52)))
	require.NoError(t, before.Set(channel(2, "Change", 146.94)))
	require.NoError(t, before.Set(channel(3, "Clear", 147.00)))

	after := before.Clone()
	require.NoError(t, after.Set(channel(2, "Changed", 146.94)))
	require.NoError(t, after.Set(channels.Empty(3)))
	require.NoError(t, after.Set(channel(7, "New", 446.0)))

	cs := differ.New().Tables(before, after)
	require.True(t, cs.HasChanges())
	assert.Equal(t, differ.ChangesetSummary{Added: 1, Updated: 1, Cleared: 1, TotalChanges: 3}, cs.Summary)
	assert.Equal(t, 7, cs.Added[0].SerialNumber)
	assert.Equal(t, 2, cs.Updated[0].Key)
	assert.Equal(t, 3, cs.Cleared[0].SerialNumber)
	assert.Equal(t, "Channels: 1 added, 1 updated, 1 cleared", cs.String())
}

func TestTablesNoChanges(t *testing.T) {
	table := channels.NewTable(3)
	cs := differ.New().Tables(table, table.Clone())
	assert.True(t, cs.IsEmpty())
	assert.Equal(t, "No changes detected", cs.String())

	cs = differ.New().Tables(nil, channels.NewTable(999))
	assert.True(t, cs.IsEmpty(), "blank slots are not changes")
}
