// Package merger applies normalized channel records to a persisted channel
// table. Each incoming record replaces the slot whose SerialNumber matches
// its own; slots absent from the input are never touched.
package merger

import (
	"context"
	"fmt"

	"github.com/agentstation/chanmap/pkg/channels"
	"github.com/agentstation/chanmap/pkg/constants"
	"github.com/agentstation/chanmap/pkg/errors"
	"github.com/agentstation/chanmap/pkg/logging"
)

// Merger merges incoming records into a channel table.
type Merger interface {
	// Merge applies incoming to table in place and returns the resulting
	// table, which is a newly allocated one when table is nil.
	Merge(ctx context.Context, table *channels.Table, incoming []channels.Record) (*channels.Table, *Result, error)
}

// merger is the default Merger implementation.
type merger struct {
	options *options
}

// New creates a new Merger with options.
func New(opts ...Option) (Merger, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &merger{options: options}, nil
}

// Merge is a convenience wrapper that builds a Merger and runs it once.
func Merge(ctx context.Context, table *channels.Table, incoming []channels.Record, opts ...Option) (*channels.Table, *Result, error) {
	m, err := New(opts...)
	if err != nil {
		return nil, nil, err
	}
	return m.Merge(ctx, table, incoming)
}

// Merge implements Merger.
func (m *merger) Merge(ctx context.Context, table *channels.Table, incoming []channels.Record) (*channels.Table, *Result, error) {
	logger := logging.FromContext(ctx)

	result := NewResult()
	result.Metadata.Strategy = m.options.strategy.Type()

	if table == nil {
		table = channels.NewTable(m.options.slots)
		result.Metadata.Created = true
		logger.Debug().Int("slots", m.options.slots).Msg("No existing table, created a fresh one")
	}

	logger.Debug().
		Ints("existing_keys", table.Keys()).
		Ints("new_keys", keys(incoming)).
		Str("strategy", m.options.strategy.Type().String()).
		Msg("Merging channels")

	for _, rec := range incoming {
		if err := ctx.Err(); err != nil {
			return nil, nil, errors.Join(errors.ErrCanceled, err)
		}

		if err := m.apply(table, rec, result); err != nil {
			return nil, nil, err
		}
	}

	result.Finalize()
	logger.Debug().
		Int("added", result.Metadata.Stats.Added).
		Int("updated", result.Metadata.Stats.Updated).
		Int("unchanged", result.Metadata.Stats.Unchanged).
		Int("skipped", result.Metadata.Stats.Skipped).
		Msg("Merge finished")

	return table, result, nil
}

// apply resolves one incoming record against its slot.
func (m *merger) apply(table *channels.Table, rec channels.Record, result *Result) error {
	if rec.SerialNumber < constants.FirstKey || rec.SerialNumber > constants.MaxKey {
		return errors.NewValidationError("SerialNumber", rec.SerialNumber,
			fmt.Sprintf("must be between %d and %d", constants.FirstKey, constants.MaxKey))
	}

	existing, ok := table.Get(rec.SerialNumber)
	if !ok {
		existing = channels.Empty(rec.SerialNumber)
	}

	change := Change{Key: rec.SerialNumber}
	if m.options.strategy.Resolve(existing, rec) == DecisionSkip {
		change.Outcome = OutcomeSkipped
		result.record(change)
		return nil
	}

	fields := m.options.differ.Records(existing, rec)
	switch {
	case len(fields) == 0:
		change.Outcome = OutcomeUnchanged
	case existing.IsBlank():
		change.Outcome = OutcomeAdded
	case rec.IsBlank():
		change.Outcome = OutcomeCleared
	default:
		change.Outcome = OutcomeUpdated
	}
	if m.options.tracking {
		change.Fields = fields
	}

	if err := table.Set(rec); err != nil {
		return err
	}
	result.record(change)
	return nil
}

func keys(records []channels.Record) []int {
	out := make([]int, len(records))
	for i, rec := range records {
		out[i] = rec.SerialNumber
	}
	return out
}
