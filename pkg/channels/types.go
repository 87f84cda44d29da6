package channels

import (
	"strconv"
	"strings"

	"github.com/agentstation/chanmap/pkg/constants"
)

// Tone is a squelch tone cell: blank, Off, or the tone value as written by
// the source (for example "100.0" or "023").
type Tone string

// ToneOff disables the tone on one side of the channel.
const ToneOff Tone = "Off"

// String returns the cell text.
func (t Tone) String() string {
	return string(t)
}

// Band is the channel bandwidth label.
type Band string

const (
	// BandWide is used for FM channels.
	BandWide Band = "Wide"
	// BandNarrow is used for every other mode.
	BandNarrow Band = "Narrow"
)

// String returns the cell text.
func (b Band) String() string {
	return string(b)
}

// Switch is an ON/OFF device flag.
type Switch string

const (
	// On enables a device flag.
	On Switch = "ON"
	// Off disables a device flag.
	Off Switch = "OFF"
)

// String returns the cell text.
func (s Switch) String() string {
	return string(s)
}

// FormatFrequency renders a MHz value for the channel table; nil is blank.
func FormatFrequency(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(RoundFrequency(*f), 'f', -1, 64)
}

// ParseFrequency parses a MHz cell. Blank cells return nil.
func ParseFrequency(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// RoundFrequency rounds a MHz value to 1 Hz.
func RoundFrequency(f float64) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(f, 'f', constants.FrequencyPrecision, 64), 64)
	if err != nil {
		return f
	}
	return v
}
