// Package chanmap converts a CHIRP channel export into a target device's
// channel table and merges it into the table persisted at an output path.
//
// Rows are keyed by serial number (Location + 101). Channels already in the
// output but absent from the input survive every run, and a blank input row
// never erases a populated channel.
//
//	report, err := chanmap.Transform(ctx, "input.csv", "output.csv")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(report.Result.Summary())
package chanmap

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/agentstation/chanmap/internal/tableio"
	"github.com/agentstation/chanmap/pkg/channels"
	"github.com/agentstation/chanmap/pkg/differ"
	"github.com/agentstation/chanmap/pkg/errors"
	"github.com/agentstation/chanmap/pkg/logging"
	"github.com/agentstation/chanmap/pkg/merger"
	"github.com/agentstation/chanmap/pkg/normalize"
)

// Transformer runs the read, normalize, merge and write pipeline.
type Transformer interface {
	// Transform reads inputPath, merges it into the table at outputPath
	// and writes the result back unless the transformer is in dry-run mode.
	Transform(ctx context.Context, inputPath, outputPath string) (*Report, error)

	// OnChannelAdded registers a callback for channels written into blank slots
	OnChannelAdded(ChannelAddedHook)

	// OnChannelUpdated registers a callback for channels whose cells changed
	OnChannelUpdated(ChannelUpdatedHook)

	// OnChannelCleared registers a callback for channels blanked by the merge
	OnChannelCleared(ChannelClearedHook)
}

// Report describes one transform run.
type Report struct {
	RunID     string            `json:"run_id" yaml:"run_id"`
	Input     string            `json:"input" yaml:"input"`
	Output    string            `json:"output" yaml:"output"`
	Written   bool              `json:"written" yaml:"written"`
	Result    *merger.Result    `json:"result" yaml:"result"`
	Changeset *differ.Changeset `json:"changeset" yaml:"changeset"`
	Table     *channels.Table   `json:"-" yaml:"-"`
}

// Summary returns a one-line description of the run.
func (r *Report) Summary() string {
	if r.Result == nil {
		return "No result"
	}
	return r.Result.Summary()
}

// transformer is the default Transformer implementation.
type transformer struct {
	config *config
	hooks  *hooks
}

// New creates a Transformer with the given options.
func New(opts ...Option) (Transformer, error) {
	t := &transformer{
		config: defaultConfig(),
		hooks:  newHooks(),
	}
	if err := t.options(opts...); err != nil {
		return nil, fmt.Errorf("applying options: %w", err)
	}
	return t, nil
}

// Transform is a convenience wrapper that builds a Transformer and runs it once.
func Transform(ctx context.Context, inputPath, outputPath string, opts ...Option) (*Report, error) {
	t, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return t.Transform(ctx, inputPath, outputPath)
}

// Transform implements Transformer. Nothing is written unless every stage
// before the write succeeds.
func (t *transformer) Transform(ctx context.Context, inputPath, outputPath string) (*Report, error) {
	runID := logging.RunID(ctx)
	if t.config.logger != nil {
		ctx = logging.WithLogger(ctx, t.config.logger)
	}
	if runID == "" {
		runID = uuid.NewString()
	}
	if t.config.logger != nil || logging.RunID(ctx) == "" {
		ctx = logging.WithRunID(ctx, runID)
	}
	ctx = logging.WithOutput(logging.WithInput(ctx, inputPath), outputPath)
	logger := logging.FromContext(ctx)

	report := &Report{RunID: runID, Input: inputPath, Output: outputPath}

	rows, err := tableio.ReadSource(ctx, inputPath)
	if err != nil {
		logger.Error().Err(err).Msg("Reading input failed")
		return nil, err
	}
	if err := checkCanceled(ctx); err != nil {
		return nil, err
	}

	incoming := normalize.Records(rows)
	logger.Debug().Int("channels", len(incoming)).Msg("Derived tones, band and transmit frequency")

	existing, found, err := tableio.ReadTable(ctx, outputPath)
	if err != nil {
		logger.Error().Err(err).Msg("Loading existing table failed")
		return nil, err
	}
	if !found {
		logger.Info().Msg("No existing output, starting a fresh table")
	}

	var before *channels.Table
	if existing != nil {
		before = existing.Clone()
	}

	merged, result, err := merger.Merge(ctx, existing, incoming,
		merger.WithStrategy(t.config.strategy),
		merger.WithSlots(t.config.slots),
	)
	if err != nil {
		logger.Error().Err(err).Msg("Merging channels failed")
		return nil, err
	}
	result.Metadata.DryRun = t.config.dryRun

	report.Result = result
	report.Table = merged
	report.Changeset = differ.New().Tables(before, merged)

	if t.config.dryRun {
		logger.Info().Str("changes", report.Changeset.String()).Msg("Dry run, output not written")
		return report, nil
	}

	if err := checkCanceled(ctx); err != nil {
		return nil, err
	}
	if err := tableio.WriteTable(ctx, outputPath, merged); err != nil {
		logger.Error().Err(err).Msg("Writing output failed")
		return nil, err
	}
	report.Written = true

	t.hooks.trigger(report.Changeset)

	logger.Info().
		Int("added", result.Metadata.Stats.Added).
		Int("updated", result.Metadata.Stats.Updated).
		Int("unchanged", result.Metadata.Stats.Unchanged).
		Int("skipped", result.Metadata.Stats.Skipped).
		Msg("Transform complete")
	return report, nil
}

func checkCanceled(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(errors.ErrCanceled, err)
	}
	return nil
}
