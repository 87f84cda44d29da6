package normalize_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/chanmap/internal/utils/ptr"
	"github.com/agentstation/chanmap/pkg/channels"
	"github.com/agentstation/chanmap/pkg/derive"
	"github.com/agentstation/chanmap/pkg/normalize"
	"github.com/agentstation/chanmap/pkg/source"
)

func rpt1() source.Row {
	return source.Row{
		Location:  0,
		Name:      "Rpt1",
		Frequency: ptr.Float64(146.94),
		Power:     "High",
		Mode:      "FM",
		Duplex:    "-",
		Offset:    ptr.Float64(0.6),
		Tone:      "Tone",
		RToneFreq: "100.0",
	}
}

func TestSerialNumber(t *testing.T) {
	assert.Equal(t, 101, normalize.SerialNumber(0))
	assert.Equal(t, 300, normalize.SerialNumber(199))
	assert.Equal(t, 100, normalize.SerialNumber(-1))
}

func TestRecord(t *testing.T) {
	row := rpt1()
	fields := derive.Row(row)
	got := normalize.Record(row, &fields)

	want := channels.Record{
		SerialNumber: 101,
		RxFreq:       ptr.Float64(146.94),
		TxFreq:       ptr.Float64(146.34),
		RxTone:       "100.0",
		TxTone:       channels.ToneOff,
		Power:        "High",
		Band:         channels.BandWide,
		MuteMode:     "QT",
		Scream:       channels.Off,
		ScanAdd:      channels.On,
		Compand:      channels.Off,
		AM:           channels.Off,
		Favorite:     channels.Off,
		SendLocation: channels.Off,
		CallCodeSlot: "1",
		Name:         "Rpt1",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Record() mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordWithoutDerivedFields(t *testing.T) {
	got := normalize.Record(rpt1(), nil)
	require.NotNil(t, got.TxFreq)
	assert.Equal(t, 0.0, *got.TxFreq)
	assert.Empty(t, got.RxTone)
	assert.Empty(t, got.Band)
	assert.Equal(t, "QT", got.MuteMode)
}

func TestRecordPlaceholder(t *testing.T) {
	row := source.Row{Location: 0}
	fields := derive.Row(row)
	got := normalize.Record(row, &fields)

	assert.Equal(t, 101, got.SerialNumber)
	assert.True(t, got.IsBlank(), "placeholder rows get neither derived cells nor defaults")
}

func TestRecordDoesNotAliasSource(t *testing.T) {
	row := rpt1()
	got := normalize.Record(row, nil)
	*row.Frequency = 1
	assert.Equal(t, 146.94, *got.RxFreq)
}

func TestRecords(t *testing.T) {
	simplex := source.Row{Location: 5, Name: "Simplex", Frequency: ptr.Float64(146.52), Mode: "AM"}
	got := normalize.Records([]source.Row{rpt1(), simplex, {Location: 9}})
	require.Len(t, got, 3)

	assert.Equal(t, []int{101, 106, 110}, []int{got[0].SerialNumber, got[1].SerialNumber, got[2].SerialNumber})
	assert.Equal(t, *got[1].RxFreq, *got[1].TxFreq)
	assert.Equal(t, channels.BandNarrow, got[1].Band)
	assert.True(t, got[2].IsBlank())
}

func TestRenamesCoverSourceKeyColumns(t *testing.T) {
	assert.Equal(t, channels.KeyColumn, normalize.Renames[source.ColLocation])
	for _, target := range normalize.Renames {
		assert.True(t, channels.IsColumn(target), target)
	}
}

func TestRecordColumnOrder(t *testing.T) {
	row := rpt1()
	fields := derive.Row(row)
	values := normalize.Record(row, &fields).Values()
	assert.Equal(t, []string{
		"101", "146.94", "146.34", "100.0", "Off", "High", "Wide", "QT",
		"OFF", "ON", "OFF", "OFF", "OFF", "OFF", "1", "Rpt1",
	}, values)
}
