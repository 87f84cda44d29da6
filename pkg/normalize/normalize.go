// Package normalize turns source rows into canonical channel records: it
// renames the export's columns to the device schema, re-keys Location into a
// serial number, and fills the device flags the export does not carry.
package normalize

import (
	"github.com/agentstation/chanmap/pkg/channels"
	"github.com/agentstation/chanmap/pkg/constants"
	"github.com/agentstation/chanmap/pkg/derive"
	"github.com/agentstation/chanmap/pkg/source"
)

// Renames maps export columns to the channel-table columns they populate.
var Renames = map[string]string{
	source.ColLocation:  channels.ColSerialNumber,
	source.ColName:      channels.ColName,
	source.ColFrequency: channels.ColRxFreq,
	source.ColPower:     channels.ColPower,
}

// Defaults holds the value of every column the export does not provide.
type Defaults struct {
	MuteMode     string
	Scream       channels.Switch
	ScanAdd      channels.Switch
	Compand      channels.Switch
	AM           channels.Switch
	Favorite     channels.Switch
	SendLocation channels.Switch
	CallCodeSlot string
	TxFreq       float64 // only used when no derived fields are supplied
}

// DefaultValues are the device defaults for new channels.
var DefaultValues = Defaults{
	MuteMode:     "QT",
	Scream:       channels.Off,
	ScanAdd:      channels.On,
	Compand:      channels.Off,
	AM:           channels.Off,
	Favorite:     channels.Off,
	SendLocation: channels.Off,
	CallCodeSlot: "1",
	TxFreq:       0,
}

// SerialNumber re-keys a source Location onto the device's numbering.
func SerialNumber(location int) int {
	return location + constants.KeyOffset
}

// Record builds the canonical record for row. fields are the row's derived
// cells; when nil the transmit frequency falls back to its default and the
// tone and band cells stay blank.
//
// Placeholder rows produce a blank record carrying only the key, without
// derived cells or defaults.
func Record(row source.Row, fields *derive.Fields) channels.Record {
	rec := channels.Record{SerialNumber: SerialNumber(row.Location)}
	if row.IsPlaceholder() {
		return rec
	}

	rec.Name = row.Name
	rec.RxFreq = row.Frequency
	rec.Power = row.Power

	if fields != nil {
		rec.TxFreq = fields.TxFreq
		rec.RxTone = fields.RxTone
		rec.TxTone = fields.TxTone
		rec.Band = fields.Band
	} else {
		tx := DefaultValues.TxFreq
		rec.TxFreq = &tx
	}

	applyDefaults(&rec, DefaultValues)
	return rec.Clone()
}

// Records derives and normalizes a batch of rows, preserving input order.
func Records(rows []source.Row) []channels.Record {
	out := make([]channels.Record, 0, len(rows))
	for _, row := range rows {
		fields := derive.Row(row)
		out = append(out, Record(row, &fields))
	}
	return out
}

func applyDefaults(rec *channels.Record, d Defaults) {
	rec.MuteMode = d.MuteMode
	rec.Scream = d.Scream
	rec.ScanAdd = d.ScanAdd
	rec.Compand = d.Compand
	rec.AM = d.AM
	rec.Favorite = d.Favorite
	rec.SendLocation = d.SendLocation
	rec.CallCodeSlot = d.CallCodeSlot
}
