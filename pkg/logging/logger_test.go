package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/chanmap/pkg/logging"
)

func TestNewJSONWritesStructuredLines(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewJSON(&buf).Level(zerolog.InfoLevel)

	logger.Info().Str("input", "input.csv").Int("rows", 3).Msg("Read input")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "input.csv", entry["input"])
	assert.Equal(t, float64(3), entry["rows"])
	assert.Equal(t, "Read input", entry["message"])
}

func TestSetDefault(t *testing.T) {
	original := *logging.Default()
	t.Cleanup(func() { logging.SetDefault(original) })

	tl := logging.NewTestLogger(t)
	logging.SetDefault(*tl.Logger)

	logging.Info().Msg("hello")
	logging.Warn().Str("column", "Extra").Msg("dropping column")

	tl.AssertContains(t, "hello")
	tl.AssertContains(t, `"column":"Extra"`)
}

func TestTestLogger(t *testing.T) {
	tl := logging.NewTestLogger(t)
	tl.Debug().Msg("first")
	tl.Info().Msg("second")

	assert.True(t, tl.Contains("first"))
	assert.Contains(t, tl.Output(), "second")
	tl.AssertNotContains(t, "third")
}
