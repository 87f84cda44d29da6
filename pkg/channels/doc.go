// Package channels defines the canonical channel-table schema of the target
// device: the Record written for every memory slot, the Table of slots keyed
// by serial number, and the small value types (Tone, Band, Switch) that make
// up a row.
//
// Column order is part of the contract. Columns lists the on-disk headers and
// Record.Values emits cells in exactly that order, with blank cells rendered
// as empty strings.
package channels
