package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/chanmap"
	"github.com/agentstation/chanmap/pkg/constants"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default value.
type Mock struct {
	TransformerFunc  func(...chanmap.Option) (chanmap.Transformer, error)
	InputPathFunc    func() string
	OutputPathFunc   func() string
	StrategyFunc     func() string
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	NoColorFunc      func() bool
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

// Transformer returns a transformer using the mock function, or a real one
// built from opts.
func (m *Mock) Transformer(opts ...chanmap.Option) (chanmap.Transformer, error) {
	if m.TransformerFunc != nil {
		return m.TransformerFunc(opts...)
	}
	return chanmap.New(append([]chanmap.Option{chanmap.WithLogger(m.Logger())}, opts...)...)
}

// InputPath returns the input path using the mock function or the default.
func (m *Mock) InputPath() string {
	if m.InputPathFunc != nil {
		return m.InputPathFunc()
	}
	return constants.DefaultInputPath
}

// OutputPath returns the output path using the mock function or the default.
func (m *Mock) OutputPath() string {
	if m.OutputPathFunc != nil {
		return m.OutputPathFunc()
	}
	return constants.DefaultOutputPath
}

// Strategy returns the strategy using the mock function or "".
func (m *Mock) Strategy() string {
	if m.StrategyFunc != nil {
		return m.StrategyFunc()
	}
	return ""
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// NoColor returns the mock value, or true so test output stays plain.
func (m *Mock) NoColor() bool {
	if m.NoColorFunc != nil {
		return m.NoColorFunc()
	}
	return true
}

// OutputFormat returns the format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
