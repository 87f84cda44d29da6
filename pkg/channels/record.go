package channels

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Record is one row of the target channel table.
type Record struct {
	SerialNumber int      `json:"serial_number" yaml:"serial_number"`
	RxFreq       *float64 `json:"rx_freq,omitempty" yaml:"rx_freq,omitempty"`
	TxFreq       *float64 `json:"tx_freq,omitempty" yaml:"tx_freq,omitempty"`
	// RxFreqText and TxFreqText keep a loaded frequency cell that is not a
	// number. They are written back verbatim while the parsed value is nil.
	RxFreqText string `json:"rx_freq_text,omitempty" yaml:"rx_freq_text,omitempty"`
	TxFreqText string `json:"tx_freq_text,omitempty" yaml:"tx_freq_text,omitempty"`
	RxTone       Tone     `json:"rx_tone,omitempty" yaml:"rx_tone,omitempty"`
	TxTone       Tone     `json:"tx_tone,omitempty" yaml:"tx_tone,omitempty"`
	Power        string   `json:"power,omitempty" yaml:"power,omitempty"`
	Band         Band     `json:"band,omitempty" yaml:"band,omitempty"`
	MuteMode     string   `json:"mute_mode,omitempty" yaml:"mute_mode,omitempty"`
	Scream       Switch   `json:"scream,omitempty" yaml:"scream,omitempty"`
	ScanAdd      Switch   `json:"scan_add,omitempty" yaml:"scan_add,omitempty"`
	Compand      Switch   `json:"compand,omitempty" yaml:"compand,omitempty"`
	AM           Switch   `json:"am,omitempty" yaml:"am,omitempty"`
	Favorite     Switch   `json:"favorite,omitempty" yaml:"favorite,omitempty"`
	SendLocation Switch   `json:"send_location,omitempty" yaml:"send_location,omitempty"`
	CallCodeSlot string   `json:"call_code_slot,omitempty" yaml:"call_code_slot,omitempty"`
	Name         string   `json:"name,omitempty" yaml:"name,omitempty"`
}

// Empty returns a blank record for the given key.
func Empty(key int) Record {
	return Record{SerialNumber: key}
}

// IsBlank reports whether every field other than the key is blank.
func (r Record) IsBlank() bool {
	return r.RxFreqCell() == "" &&
		r.TxFreqCell() == "" &&
		r.RxTone == "" &&
		r.TxTone == "" &&
		r.Power == "" &&
		r.Band == "" &&
		r.MuteMode == "" &&
		r.Scream == "" &&
		r.ScanAdd == "" &&
		r.Compand == "" &&
		r.AM == "" &&
		r.Favorite == "" &&
		r.SendLocation == "" &&
		r.CallCodeSlot == "" &&
		r.Name == ""
}

// Values returns the row's cells in canonical column order.
func (r Record) Values() []string {
	key := ""
	if r.SerialNumber > 0 {
		key = strconv.Itoa(r.SerialNumber)
	}
	return []string{
		key,
		r.RxFreqCell(),
		r.TxFreqCell(),
		r.RxTone.String(),
		r.TxTone.String(),
		r.Power,
		r.Band.String(),
		r.MuteMode,
		r.Scream.String(),
		r.ScanAdd.String(),
		r.Compand.String(),
		r.AM.String(),
		r.Favorite.String(),
		r.SendLocation.String(),
		r.CallCodeSlot,
		r.Name,
	}
}

// RxFreqCell returns the receive frequency as written to the table.
func (r Record) RxFreqCell() string {
	return frequencyCell(r.RxFreq, r.RxFreqText)
}

// TxFreqCell returns the transmit frequency as written to the table.
func (r Record) TxFreqCell() string {
	return frequencyCell(r.TxFreq, r.TxFreqText)
}

func frequencyCell(f *float64, text string) string {
	if f == nil {
		return text
	}
	return FormatFrequency(f)
}

// Map returns the row's cells keyed by column header.
func (r Record) Map() map[string]string {
	values := r.Values()
	cells := make(map[string]string, len(Columns))
	for i, col := range Columns {
		cells[col] = values[i]
	}
	return cells
}

// Equal reports whether two records serialize to the same row.
func (r Record) Equal(other Record) bool {
	return slices.Equal(r.Values(), other.Values())
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	c := r
	if r.RxFreq != nil {
		v := *r.RxFreq
		c.RxFreq = &v
	}
	if r.TxFreq != nil {
		v := *r.TxFreq
		c.TxFreq = &v
	}
	return c
}

// String returns a short description for logs.
func (r Record) String() string {
	if r.IsBlank() {
		return fmt.Sprintf("#%d (blank)", r.SerialNumber)
	}
	return fmt.Sprintf("#%d %s %s", r.SerialNumber, r.Name, r.RxFreqCell())
}

// RecordFromCells builds a record for key from header-keyed cells. Columns
// that are absent leave their field blank. Cells are taken as given: a
// frequency that does not parse is kept as text.
func RecordFromCells(key int, cells map[string]string) Record {
	get := func(col string) string {
		return strings.TrimSpace(cells[col])
	}

	rx, rxText := frequencyFromCell(get(ColRxFreq))
	tx, txText := frequencyFromCell(get(ColTxFreq))

	return Record{
		SerialNumber: key,
		RxFreq:       rx,
		TxFreq:       tx,
		RxFreqText:   rxText,
		TxFreqText:   txText,
		RxTone:       Tone(get(ColRxTone)),
		TxTone:       Tone(get(ColTxTone)),
		Power:        get(ColPower),
		Band:         Band(get(ColBand)),
		MuteMode:     get(ColMuteMode),
		Scream:       Switch(get(ColScream)),
		ScanAdd:      Switch(get(ColScanAdd)),
		Compand:      Switch(get(ColCompand)),
		AM:           Switch(get(ColAM)),
		Favorite:     Switch(get(ColFavorite)),
		SendLocation: Switch(get(ColSendLocation)),
		CallCodeSlot: get(ColCallCodeSlot),
		Name:         get(ColName),
	}
}

func frequencyFromCell(s string) (*float64, string) {
	f, err := ParseFrequency(s)
	if err != nil {
		return nil, s
	}
	return f, ""
}
