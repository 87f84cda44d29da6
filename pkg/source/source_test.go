package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/chanmap/pkg/source"
)

func TestFromCells(t *testing.T) {
	row, err := source.FromCells(map[string]string{
		"Location":  "0",
		"Name":      "Rpt1",
		"Frequency": "146.940000",
		"Power":     "High",
		"Mode":      "FM",
		"Duplex":    "-",
		"Offset":    "0.600000",
		"Tone":      "Tone",
		"rToneFreq": "100.0",
		"cToneFreq": "88.5",
		"Comment":   "ignored",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, row.Location)
	assert.Equal(t, "Rpt1", row.Name)
	require.NotNil(t, row.Frequency)
	assert.Equal(t, 146.94, *row.Frequency)
	require.NotNil(t, row.Offset)
	assert.Equal(t, 0.6, *row.Offset)
	assert.Equal(t, "-", row.Duplex)
	assert.Equal(t, "Tone", row.Tone)
	assert.Equal(t, "100.0", row.RToneFreq)
	assert.False(t, row.IsPlaceholder())
}

func TestFromCellsLocation(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"12", 12, false},
		{" 7 ", 7, false},
		{"12.0", 12, false},
		{"12.5", 0, true},
		{"", 0, true},
		{"abc", 0, true},
		{"-100", -100, false},
		{"9999", 9999, false},
		{"-101", 0, true},
		{"10000", 0, true},
		{"1e12", 0, true},
		{"Inf", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			row, err := source.FromCells(map[string]string{"Location": tt.in})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, row.Location)
		})
	}
}

func TestFromCellsNumericFallbacks(t *testing.T) {
	row, err := source.FromCells(map[string]string{"Location": "1", "Frequency": "446.0", "Offset": "n/a"})
	require.NoError(t, err)
	assert.Nil(t, row.Offset, "a non-numeric offset is treated as absent")

	_, err = source.FromCells(map[string]string{"Location": "1", "Frequency": "fast"})
	assert.Error(t, err)
}

func TestIsPlaceholder(t *testing.T) {
	row, err := source.FromCells(map[string]string{"Location": "0", "Name": "", "Frequency": ""})
	require.NoError(t, err)
	assert.True(t, row.IsPlaceholder())

	row.Mode = "FM"
	assert.False(t, row.IsPlaceholder())
}

func TestMissingColumns(t *testing.T) {
	assert.Empty(t, source.MissingColumns(source.RequiredColumns))
	assert.Equal(t,
		[]string{"Tone", "rToneFreq", "cToneFreq"},
		source.MissingColumns([]string{"Location", "Name", "Frequency", "Power", "Mode", "Duplex", " Offset "}),
	)
}
