package merger

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/chanmap/internal/utils/ptr"
	"github.com/agentstation/chanmap/pkg/channels"
	"github.com/agentstation/chanmap/pkg/constants"
	"github.com/agentstation/chanmap/pkg/errors"
)

// Test helper functions
func createTestChannel(key int, name string, rx float64) channels.Record {
	return channels.Record{
		SerialNumber: key,
		RxFreq:       ptr.Float64(rx),
		TxFreq:       ptr.Float64(rx),
		RxTone:       channels.ToneOff,
		TxTone:       channels.ToneOff,
		Power:        "High",
		Band:         channels.BandWide,
		MuteMode:     "QT",
		Scream:       channels.Off,
		ScanAdd:      channels.On,
		Compand:      channels.Off,
		AM:           channels.Off,
		Favorite:     channels.Off,
		SendLocation: channels.Off,
		CallCodeSlot: "1",
		Name:         name,
	}
}

func mustSet(t *testing.T, table *channels.Table, recs ...channels.Record) {
	t.Helper()
	for _, rec := range recs {
		require.NoError(t, table.Set(rec))
	}
}

func TestMergeCreatesFreshTable(t *testing.T) {
	incoming := []channels.Record{
		createTestChannel(101, "Rpt1", 146.94),
		createTestChannel(102, "Simplex", 146.52),
	}

	table, result, err := Merge(context.Background(), nil, incoming)
	require.NoError(t, err)
	require.NotNil(t, table)

	assert.Equal(t, 999, table.Len())
	assert.Equal(t, []int{101, 102}, table.Keys())
	assert.True(t, result.Metadata.Created)
	assert.Equal(t, 2, result.Metadata.Stats.Added)

	got, ok := table.Get(101)
	require.True(t, ok)
	if diff := cmp.Diff(incoming[0], got); diff != "" {
		t.Errorf("slot 101 mismatch (-want +got):\n%s", diff)
	}

	blank, ok := table.Get(500)
	require.True(t, ok)
	assert.True(t, blank.IsBlank())
	assert.Equal(t, 500, blank.SerialNumber)
}

func TestMergePreservesUntouchedSlots(t *testing.T) {
	table := channels.NewTable(999)
	kept := createTestChannel(150, "Kept", 147.00)
	mustSet(t, table, kept, createTestChannel(101, "Old", 145.00))

	table, result, err := Merge(context.Background(), table, []channels.Record{
		createTestChannel(101, "Rpt1", 146.94),
	})
	require.NoError(t, err)

	got, _ := table.Get(150)
	assert.True(t, got.Equal(kept))

	got, _ = table.Get(101)
	assert.Equal(t, "Rpt1", got.Name)

	outcome, ok := result.Outcome(101)
	require.True(t, ok)
	assert.Equal(t, OutcomeUpdated, outcome)
	assert.Equal(t, 1, result.Metadata.Stats.Updated)
	assert.NotEmpty(t, result.Changes[0].Fields)
}

func TestMergeBlankRowDoesNotEraseExisting(t *testing.T) {
	table := channels.NewTable(999)
	existing := createTestChannel(105, "Keep me", 146.94)
	mustSet(t, table, existing)

	table, result, err := Merge(context.Background(), table, []channels.Record{channels.Empty(105)})
	require.NoError(t, err)

	got, _ := table.Get(105)
	assert.True(t, got.Equal(existing))
	outcome, _ := result.Outcome(105)
	assert.Equal(t, OutcomeSkipped, outcome)
}

func TestMergeBlankRowIntoBlankSlot(t *testing.T) {
	table, result, err := Merge(context.Background(), channels.NewTable(999), []channels.Record{channels.Empty(120)})
	require.NoError(t, err)

	got, _ := table.Get(120)
	assert.True(t, got.IsBlank())
	outcome, _ := result.Outcome(120)
	assert.Equal(t, OutcomeUnchanged, outcome)
}

func TestMergeReplaceStrategyClears(t *testing.T) {
	table := channels.NewTable(999)
	mustSet(t, table, createTestChannel(105, "Gone", 146.94))

	table, result, err := Merge(context.Background(), table, []channels.Record{channels.Empty(105)},
		WithStrategy(NewReplaceStrategy()))
	require.NoError(t, err)

	got, _ := table.Get(105)
	assert.True(t, got.IsBlank())
	assert.Equal(t, 1, result.Metadata.Stats.Cleared)
	assert.Equal(t, StrategyTypeReplace, result.Metadata.Strategy)
}

func TestMergeIsIdempotent(t *testing.T) {
	incoming := []channels.Record{
		createTestChannel(101, "Rpt1", 146.94),
		createTestChannel(102, "Simplex", 146.52),
	}

	first, _, err := Merge(context.Background(), nil, incoming)
	require.NoError(t, err)
	snapshot := first.Clone()

	second, result, err := Merge(context.Background(), first, incoming)
	require.NoError(t, err)

	if diff := cmp.Diff(snapshot.Rows(), second.Rows()); diff != "" {
		t.Errorf("second merge changed the table (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, result.Metadata.Stats.Unchanged)
	assert.False(t, result.HasChanges())
}

func TestMergeGrowsTable(t *testing.T) {
	table, result, err := Merge(context.Background(), nil, []channels.Record{
		createTestChannel(1100, "Far", 440.0),
	})
	require.NoError(t, err)

	assert.Equal(t, 1100, table.Len())
	got, ok := table.Get(1000)
	require.True(t, ok)
	assert.True(t, got.IsBlank())
	assert.Equal(t, 1, result.Metadata.Stats.Added)
}

func TestMergeRejectsBadKey(t *testing.T) {
	for _, key := range []int{0, -5, constants.MaxKey + 1} {
		_, _, err := Merge(context.Background(), nil, []channels.Record{createTestChannel(key, "Bad", 146.0)})
		require.Error(t, err, "key %d", key)
		assert.True(t, errors.IsValidationError(err), "key %d", key)
	}
}

func TestMergeCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := Merge(ctx, nil, []channels.Record{createTestChannel(101, "Rpt1", 146.94)})
	require.Error(t, err)
	assert.True(t, errors.IsCanceled(err))
}

func TestMergeDuplicateKeysLastWins(t *testing.T) {
	table, result, err := Merge(context.Background(), nil, []channels.Record{
		createTestChannel(101, "First", 146.94),
		createTestChannel(101, "Second", 146.94),
	})
	require.NoError(t, err)

	got, _ := table.Get(101)
	assert.Equal(t, "Second", got.Name)
	outcome, _ := result.Outcome(101)
	assert.Equal(t, OutcomeUpdated, outcome)
}

func TestWithChangeTrackingDisabled(t *testing.T) {
	_, result, err := Merge(context.Background(), nil,
		[]channels.Record{createTestChannel(101, "Rpt1", 146.94)},
		WithChangeTracking(false))
	require.NoError(t, err)
	require.Len(t, result.Changes, 1)
	assert.Empty(t, result.Changes[0].Fields)
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"nil strategy", WithStrategy(nil)},
		{"nil differ", WithDiffer(nil)},
		{"zero slots", WithSlots(0)},
		{"too many slots", WithSlots(constants.MaxKey + 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opt)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestWithSlots(t *testing.T) {
	table, _, err := Merge(context.Background(), nil, nil, WithSlots(10))
	require.NoError(t, err)
	assert.Equal(t, 10, table.Len())
}

func TestResultSummary(t *testing.T) {
	result := NewResult()
	result.record(Change{Key: 101, Outcome: OutcomeAdded})
	result.record(Change{Key: 102, Outcome: OutcomeSkipped})
	result.Finalize()

	assert.Equal(t, "Merge completed. 2 channels processed: 1 added, 0 updated, 0 unchanged, 1 skipped", result.Summary())

	result.Metadata.DryRun = true
	assert.Contains(t, result.Summary(), "Dry run completed.")
	assert.False(t, result.Metadata.EndTime.Before(result.Metadata.StartTime))
}
