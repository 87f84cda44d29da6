// Package source models one memory row of a CHIRP-style radio export, the
// input side of a conversion.
package source

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/agentstation/chanmap/pkg/constants"
)

// Export column headers read from the input file.
const (
	ColLocation  = "Location"
	ColName      = "Name"
	ColFrequency = "Frequency"
	ColPower     = "Power"
	ColMode      = "Mode"
	ColDuplex    = "Duplex"
	ColOffset    = "Offset"
	ColTone      = "Tone"
	ColRToneFreq = "rToneFreq"
	ColCToneFreq = "cToneFreq"
)

// RequiredColumns lists the headers every input export must carry.
// Other columns (DtcsCode, Comment, ...) are ignored.
var RequiredColumns = []string{
	ColLocation,
	ColName,
	ColFrequency,
	ColPower,
	ColMode,
	ColDuplex,
	ColOffset,
	ColTone,
	ColRToneFreq,
	ColCToneFreq,
}

// Row is one memory channel from the export.
type Row struct {
	Location  int
	Name      string
	Frequency *float64 // MHz, nil when blank
	Power     string
	Mode      string
	Duplex    string
	Offset    *float64 // MHz, nil when blank or not a number
	Tone      string
	RToneFreq string
	CToneFreq string
}

// IsPlaceholder reports whether every field except Location is blank.
// Such rows carry no channel data and must never erase an existing channel.
func (r Row) IsPlaceholder() bool {
	return r.Name == "" &&
		r.Frequency == nil &&
		r.Power == "" &&
		r.Mode == "" &&
		r.Duplex == "" &&
		r.Offset == nil &&
		r.Tone == "" &&
		r.RToneFreq == "" &&
		r.CToneFreq == ""
}

// MissingColumns returns the required columns absent from header.
func MissingColumns(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[strings.TrimSpace(h)] = true
	}
	var missing []string
	for _, col := range RequiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	return missing
}

// FromCells parses a header-keyed export row. Location must be an integer
// and a non-blank Frequency must be numeric; an Offset that is not a number
// is treated as absent.
func FromCells(cells map[string]string) (Row, error) {
	get := func(col string) string {
		return strings.TrimSpace(cells[col])
	}

	location, err := parseLocation(get(ColLocation))
	if err != nil {
		return Row{}, err
	}

	var freq *float64
	if s := get(ColFrequency); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Row{}, fmt.Errorf("%s %q is not a number", ColFrequency, s)
		}
		freq = &v
	}

	var offset *float64
	if v, err := strconv.ParseFloat(get(ColOffset), 64); err == nil {
		offset = &v
	}

	return Row{
		Location:  location,
		Name:      get(ColName),
		Frequency: freq,
		Power:     get(ColPower),
		Mode:      get(ColMode),
		Duplex:    get(ColDuplex),
		Offset:    offset,
		Tone:      get(ColTone),
		RToneFreq: get(ColRToneFreq),
		CToneFreq: get(ColCToneFreq),
	}, nil
}

// parseLocation accepts integers and integral floats ("12.0"), which
// spreadsheet round trips tend to produce, within the supported range.
func parseLocation(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%s is blank", ColLocation)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("%s %q is not an integer", ColLocation, s)
	}
	if f < constants.MinLocation || f > constants.MaxLocation {
		return 0, fmt.Errorf("%s %s is outside %d..%d", ColLocation, s, constants.MinLocation, constants.MaxLocation)
	}
	return int(f), nil
}
