// Package transform implements the transform command, which converts a
// channel export and merges it into the output table.
package transform

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/chanmap"
	"github.com/agentstation/chanmap/internal/cmd/alerts"
	"github.com/agentstation/chanmap/internal/cmd/output"
	"github.com/agentstation/chanmap/pkg/merger"
)

// AppContext defines what the transform command needs from the app.
type AppContext interface {
	Transformer(opts ...chanmap.Option) (chanmap.Transformer, error)
	InputPath() string
	OutputPath() string
	OutputFormat() string
	NoColor() bool
	Logger() *zerolog.Logger
}

// Flags holds the transform command flags.
type Flags struct {
	DryRun   bool
	Strategy string
}

// NewCommand creates the transform command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "transform [input] [output]",
		GroupID: "core",
		Short:   "Convert an export and merge it into the channel table",
		Long: `Transform reads a CHIRP export (CSV or XLSX), derives transmit
frequency, tones and band for each channel, fills the device defaults and
merges the channels into the output table by serial number.

The output is rewritten atomically. Channels not present in the input are
kept, and blank input rows never erase an existing channel unless
--strategy replace is given.`,
		Example: `  chanmap transform                          # input.csv -> output.csv
  chanmap transform radio.csv device.csv     # explicit paths
  chanmap transform --dry-run                # show changes without writing
  chanmap transform --strategy replace       # let blank rows clear channels`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, app, flags, args)
		},
	}

	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "compute the merge without writing the output")
	cmd.Flags().StringVar(&flags.Strategy, "strategy", "",
		fmt.Sprintf("merge strategy: %s (default), %s", merger.StrategyTypeBlankProtect, merger.StrategyTypeReplace))

	return cmd
}

func run(cmd *cobra.Command, app AppContext, flags *Flags, args []string) error {
	input, outputPath := app.InputPath(), app.OutputPath()
	if len(args) > 0 {
		input = args[0]
	}
	if len(args) > 1 {
		outputPath = args[1]
	}

	opts := []chanmap.Option{chanmap.WithDryRun(flags.DryRun)}
	if flags.Strategy != "" {
		strategy, err := merger.ParseStrategy(flags.Strategy)
		if err != nil {
			return err
		}
		opts = append(opts, chanmap.WithStrategy(strategy))
	}

	transformer, err := app.Transformer(opts...)
	if err != nil {
		return err
	}

	report, err := transformer.Transform(cmd.Context(), input, outputPath)
	if err != nil {
		return err
	}

	format := output.DetectFormat(app.OutputFormat())
	if err := output.FormatChanges(cmd.OutOrStdout(), report.Result.Changes, report, format); err != nil {
		return err
	}

	if format == output.FormatJSON || format == output.FormatYAML {
		return nil
	}
	return alerts.NewWriter(cmd.ErrOrStderr(), app.NoColor()).Write(statusAlert(report))
}

// statusAlert summarizes the run for humans.
func statusAlert(report *chanmap.Report) *alerts.Alert {
	var alert *alerts.Alert
	switch {
	case !report.Written:
		alert = alerts.NewWarning(fmt.Sprintf("Dry run, %s not written", report.Output))
	case report.Result.HasChanges():
		alert = alerts.NewSuccess(fmt.Sprintf("Wrote %s", report.Output))
	default:
		alert = alerts.NewInfo(fmt.Sprintf("%s already up to date", report.Output))
	}
	return alert.WithDetails(report.Summary(), report.Changeset.String())
}
