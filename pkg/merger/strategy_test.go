package merger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/chanmap/pkg/channels"
	"github.com/agentstation/chanmap/pkg/errors"
)

func TestBlankProtectStrategy(t *testing.T) {
	s := NewBlankProtectStrategy()
	populated := createTestChannel(101, "Rpt1", 146.94)
	blank := channels.Empty(101)

	tests := []struct {
		name     string
		existing channels.Record
		incoming channels.Record
		want     Decision
	}{
		{"blank over populated", populated, blank, DecisionSkip},
		{"blank over blank", blank, blank, DecisionReplace},
		{"populated over blank", blank, populated, DecisionReplace},
		{"populated over populated", populated, createTestChannel(101, "Other", 147.0), DecisionReplace},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Resolve(tt.existing, tt.incoming))
		})
	}
}

func TestReplaceStrategy(t *testing.T) {
	s := NewReplaceStrategy()
	assert.Equal(t, DecisionReplace, s.Resolve(createTestChannel(101, "Rpt1", 146.94), channels.Empty(101)))
	assert.Equal(t, StrategyTypeReplace, s.Type())
	assert.NotEmpty(t, s.Description())
}

func TestParseStrategy(t *testing.T) {
	for _, name := range []string{"", "blank-protect", " Blank-Protect "} {
		s, err := ParseStrategy(name)
		require.NoError(t, err)
		assert.Equal(t, StrategyTypeBlankProtect, s.Type())
	}

	s, err := ParseStrategy("replace")
	require.NoError(t, err)
	assert.Equal(t, StrategyTypeReplace, s.Type())

	_, err = ParseStrategy("merge-fields")
	assert.True(t, errors.IsValidationError(err))
}

func TestStrategyTypeName(t *testing.T) {
	assert.Equal(t, "Blank Protect", StrategyTypeBlankProtect.Name())
	assert.Equal(t, "Replace", StrategyTypeReplace.Name())
	assert.Equal(t, "skip", DecisionSkip.String())
}
