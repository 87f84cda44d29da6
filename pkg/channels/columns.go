package channels

// Canonical column headers of the target device's channel table.
const (
	ColSerialNumber = "Channel_SN"
	ColRxFreq       = "Channel_RxFreq"
	ColTxFreq       = "Channel_TxFreq"
	ColRxTone       = "Channel_RxQt"
	ColTxTone       = "Channel_TxQt"
	ColPower        = "Channel_Power"
	ColBand         = "Channel_Band"
	ColMuteMode     = "Channel_MuteMode"
	ColScream       = "Channel_Scream"
	ColScanAdd      = "Channel_ScanAdd"
	ColCompand      = "Channel_Compand"
	ColAM           = "Channel_AM"
	ColFavorite     = "Channel_FAV"
	ColSendLocation = "Channel_SendLoc"
	ColCallCodeSlot = "Channel_CallCodeSn"
	ColName         = "Channel_Name"
)

// Columns is the canonical on-disk column order.
var Columns = []string{
	ColSerialNumber,
	ColRxFreq,
	ColTxFreq,
	ColRxTone,
	ColTxTone,
	ColPower,
	ColBand,
	ColMuteMode,
	ColScream,
	ColScanAdd,
	ColCompand,
	ColAM,
	ColFavorite,
	ColSendLocation,
	ColCallCodeSlot,
	ColName,
}

// KeyColumn is the column that identifies a row.
const KeyColumn = ColSerialNumber

// IsColumn reports whether name is one of the canonical headers.
func IsColumn(name string) bool {
	for _, c := range Columns {
		if c == name {
			return true
		}
	}
	return false
}
