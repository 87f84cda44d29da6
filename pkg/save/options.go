// Package save holds the options for persisting a channel table.
package save

import (
	"io"
	"path/filepath"
	"strings"
)

// Format is an on-disk table encoding.
type Format int

// Format constants.
const (
	FormatCSV Format = iota
	FormatXLSX
)

// IsValid checks if the format is valid.
func (f Format) IsValid() bool {
	switch f {
	case FormatCSV, FormatXLSX:
		return true
	default:
		return false
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatXLSX:
		return "xlsx"
	}
	return "unknown"
}

// FormatFor picks the format implied by a file extension. Anything that is
// not a workbook is written as CSV.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return FormatXLSX
	}
	return FormatCSV
}

// Options is the configuration for save.
type Options struct {
	format    Format
	formatSet bool
	writer    io.Writer
}

// Writer returns the writer for the save options.
func (s *Options) Writer() io.Writer {
	return s.writer
}

// Format returns the format to encode path with: the explicit one if set,
// otherwise the one implied by the extension.
func (s *Options) Format(path string) Format {
	if s.formatSet {
		return s.format
	}
	return FormatFor(path)
}

// Defaults returns the default save options.
func Defaults() *Options {
	return &Options{format: FormatCSV}
}

// Apply applies the given options to the save options.
func (s *Options) Apply(opts ...Option) Options {
	for _, opt := range opts {
		opt(s)
	}
	return *s
}

// Option is a function that configures save options.
type Option func(*Options)

// WithFormat forces the encoding regardless of the path extension.
func WithFormat(f Format) Option {
	return func(s *Options) {
		s.format = f
		s.formatSet = true
	}
}

// WithWriter sends the encoded table to w instead of the file system.
func WithWriter(w io.Writer) Option {
	return func(s *Options) {
		s.writer = w
	}
}
