// Package derive computes the target-only fields of a channel from a source
// row: the transmit frequency, the receive/transmit squelch tone pair, and
// the bandwidth label. Every function is pure and total; unknown inputs fall
// back to documented values instead of failing.
package derive

import (
	"github.com/agentstation/chanmap/internal/utils/ptr"
	"github.com/agentstation/chanmap/pkg/channels"
	"github.com/agentstation/chanmap/pkg/constants"
	"github.com/agentstation/chanmap/pkg/source"
)

// Tone modes understood by Tones.
const (
	ToneModeNone = ""
	ToneModeTone = "Tone"
	ToneModeTSQL = "TSQL"
	ToneModeDTCS = "DTCS"
)

// Fields are the derived cells of one channel.
type Fields struct {
	TxFreq *float64
	RxTone channels.Tone
	TxTone channels.Tone
	Band   channels.Band
}

// Band returns Wide for the FM marker and Narrow for every other mode.
func Band(mode string) channels.Band {
	if mode == constants.ModeFM {
		return channels.BandWide
	}
	return channels.BandNarrow
}

// TxFreq applies the duplex direction and offset to the receive frequency.
// Any duplex other than "+" or "-" (split, off, blank) transmits on rx.
func TxFreq(rx float64, duplex string, offset float64) float64 {
	switch duplex {
	case constants.DuplexPlus:
		return channels.RoundFrequency(rx + offset)
	case constants.DuplexMinus:
		return channels.RoundFrequency(rx - offset)
	default:
		return rx
	}
}

// Tones maps a tone mode to the (receive, transmit) tone pair.
//
// "Tone" places rTone on the receive side. The export uses it for an
// encode-only tone, so this looks transposed, but it is what the device
// tables produced so far contain and is kept until users confirm otherwise.
func Tones(mode, rTone, cTone string) (rx, tx channels.Tone) {
	switch mode {
	case ToneModeTone:
		return channels.Tone(rTone), channels.ToneOff
	case ToneModeTSQL, ToneModeDTCS:
		return channels.ToneOff, channels.Tone(cTone)
	default:
		return channels.ToneOff, channels.ToneOff
	}
}

// Row derives all fields for a source row. A blank receive frequency gives a
// blank transmit frequency; a blank offset counts as zero.
func Row(row source.Row) Fields {
	var tx *float64
	if row.Frequency != nil {
		tx = ptr.Float64(TxFreq(*row.Frequency, row.Duplex, ptr.ValueOr(row.Offset, 0)))
	}
	rxTone, txTone := Tones(row.Tone, row.RToneFreq, row.CToneFreq)
	return Fields{
		TxFreq: tx,
		RxTone: rxTone,
		TxTone: txTone,
		Band:   Band(row.Mode),
	}
}
