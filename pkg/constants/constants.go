// Package constants provides shared constants used throughout the chanmap codebase.
// This includes the channel numbering policy, table sizing, file permissions,
// and the default paths used by the CLI.
package constants

import "time"

// Channel numbering policy
const (
	// KeyOffset is added to a source Location to produce the target serial number.
	// The source radio numbers memories from 0, the target device's user channels start at 101.
	KeyOffset = 101

	// TableSlots is the number of pre-allocated slots in a freshly created table.
	TableSlots = 999

	// FirstKey is the lowest valid serial number.
	FirstKey = 1

	// MaxKey is the highest serial number a table may hold.
	MaxKey = MaxLocation + KeyOffset

	// MinLocation and MaxLocation bound the source memory numbers accepted
	// from an export.
	MinLocation = FirstKey - KeyOffset
	MaxLocation = 9999
)

// Source value markers
const (
	// ModeFM is the modulation mode that maps to a wide band channel.
	ModeFM = "FM"

	// DuplexPlus marks a transmit frequency above the receive frequency.
	DuplexPlus = "+"

	// DuplexMinus marks a transmit frequency below the receive frequency.
	DuplexMinus = "-"

	// FrequencyPrecision is the number of decimals kept for MHz values (1 Hz).
	FrequencyPrecision = 6
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Default values
const (
	// DefaultInputPath is the input export read when none is configured
	DefaultInputPath = "input.csv"

	// DefaultOutputPath is the channel table written when none is configured
	DefaultOutputPath = "output.csv"

	// DefaultConfigName is the config file name searched in $HOME and the working directory
	DefaultConfigName = ".chanmap"

	// ShutdownTimeout bounds cleanup after a failed command
	ShutdownTimeout = 5 * time.Second
)
