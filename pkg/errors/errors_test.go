package errors_test

import (
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/agentstation/chanmap/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestInputReadError(t *testing.T) {
	t.Run("whole file", func(t *testing.T) {
		base := errors.New("no such file or directory")
		err := pkgerrors.NewInputReadError("input.csv", 0, "", base)
		assert.Equal(t, "reading input input.csv: no such file or directory", err.Error())
		assert.True(t, pkgerrors.IsInputRead(err))
		assert.ErrorIs(t, err, base)
	})

	t.Run("row specific", func(t *testing.T) {
		err := pkgerrors.NewInputReadError("input.csv", 3, "Location \"x\" is not an integer", nil)
		assert.Equal(t, `reading input input.csv (row 3): Location "x" is not an integer`, err.Error())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("wrapped", func(t *testing.T) {
		err := fmt.Errorf("transform: %w", pkgerrors.NewInputReadError("in.csv", 0, "empty", nil))
		assert.True(t, pkgerrors.IsInputRead(err))
		assert.False(t, pkgerrors.IsSchema(err))

		var target *pkgerrors.InputReadError
		require.True(t, errors.As(err, &target))
		assert.Equal(t, "in.csv", target.Path)
	})
}

func TestSchemaError(t *testing.T) {
	t.Run("with column", func(t *testing.T) {
		err := pkgerrors.NewSchemaError("output.csv", "Channel_SN", "column missing")
		assert.Equal(t, "schema error in output.csv: column Channel_SN: column missing", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrSchema))
	})

	t.Run("without column", func(t *testing.T) {
		err := &pkgerrors.SchemaError{Path: "output.csv", Message: "empty header"}
		assert.Equal(t, "schema error in output.csv: empty header", err.Error())
		assert.True(t, pkgerrors.IsSchema(err))
		assert.False(t, pkgerrors.IsInputRead(err))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("SerialNumber", 0, "must be at least 1")
		assert.Equal(t, "validation failed for field SerialNumber: must be at least 1", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "invalid strategy"}
		assert.Equal(t, "validation failed: invalid strategy", err.Error())
	})
}

func TestConfigError(t *testing.T) {
	base := errors.New("bad yaml")
	err := pkgerrors.NewConfigError("config", "cannot read file", base)
	assert.Equal(t, "configuration error in config: cannot read file", err.Error())
	assert.ErrorIs(t, err, base)

	bare := &pkgerrors.ConfigError{Message: "missing output"}
	assert.Equal(t, "configuration error: missing output", bare.Error())
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name string
		err  *pkgerrors.ParseError
		want string
	}{
		{
			name: "file and line",
			err:  &pkgerrors.ParseError{Format: "csv", File: "in.csv", Line: 4, Column: 2, Message: "bare quote"},
			want: "parse error in csv at in.csv:4:2: bare quote",
		},
		{
			name: "file only",
			err:  &pkgerrors.ParseError{Format: "xlsx", File: "in.xlsx", Message: "no sheets"},
			want: "parse error in xlsx file in.xlsx: no sheets",
		},
		{
			name: "no file",
			err:  &pkgerrors.ParseError{Format: "yaml", Message: "bad indent"},
			want: "yaml parse error: bad indent",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestIOError(t *testing.T) {
	base := errors.New("permission denied")
	err := pkgerrors.NewIOError("write", "/tmp/out.csv", base)
	assert.Equal(t, "IO error during write of /tmp/out.csv: permission denied", err.Error())
	assert.ErrorIs(t, err, base)

	noPath := &pkgerrors.IOError{Operation: "rename", Message: "cross-device link"}
	assert.Equal(t, "IO error during rename: cross-device link", noPath.Error())
}

func TestWrapHelpers(t *testing.T) {
	assert.NoError(t, pkgerrors.WrapIO("read", "x", nil))
	assert.NoError(t, pkgerrors.WrapParse("csv", "x", nil))
	assert.NoError(t, pkgerrors.WrapInputRead("x", nil))

	base := errors.New("boom")

	var ioErr *pkgerrors.IOError
	require.ErrorAs(t, pkgerrors.WrapIO("read", "x", base), &ioErr)
	assert.Equal(t, "read", ioErr.Operation)

	var parseErr *pkgerrors.ParseError
	require.ErrorAs(t, pkgerrors.WrapParse("csv", "x", base), &parseErr)
	assert.Equal(t, "boom", parseErr.Message)

	wrapped := pkgerrors.WrapInputRead("in.csv", base)
	assert.True(t, pkgerrors.IsInputRead(wrapped))
	assert.ErrorIs(t, wrapped, base)
}
