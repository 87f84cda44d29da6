// Package show implements the show command, which prints the channels of a
// persisted channel table.
package show

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/chanmap/internal/cmd/output"
	"github.com/agentstation/chanmap/internal/tableio"
	"github.com/agentstation/chanmap/pkg/channels"
	"github.com/agentstation/chanmap/pkg/errors"
	"github.com/agentstation/chanmap/pkg/logging"
	"github.com/agentstation/chanmap/pkg/save"
)

// AppContext defines what the show command needs from the app.
type AppContext interface {
	OutputPath() string
	OutputFormat() string
	Logger() *zerolog.Logger
}

// NewCommand creates the show command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	var all, raw bool
	var keys []int

	cmd := &cobra.Command{
		Use:     "show [output]",
		GroupID: "core",
		Short:   "Print the channels in a channel table",
		Example: `  chanmap show                    # populated channels in output.csv
  chanmap show device.csv --all   # every slot, blank ones included
  chanmap show --sn 101,102 -f json
  chanmap show device.xlsx --raw  # the full table as CSV`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.OutputPath()
			if len(args) > 0 {
				path = args[0]
			}

			ctx := logging.WithLogger(cmd.Context(), app.Logger())
			table, found, err := tableio.ReadTable(ctx, path)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("no channel table at %s: %w", path, errors.ErrNotFound)
			}

			if raw {
				return tableio.WriteTable(ctx, path, table,
					save.WithFormat(save.FormatCSV), save.WithWriter(cmd.OutOrStdout()))
			}

			records, err := selectRecords(table, all, keys)
			if err != nil {
				return err
			}

			return output.FormatChannels(cmd.OutOrStdout(), records, output.DetectFormat(app.OutputFormat()))
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include blank slots")
	cmd.Flags().IntSliceVar(&keys, "sn", nil, "only show these serial numbers")
	cmd.Flags().BoolVar(&raw, "raw", false, "print every slot in the on-disk CSV layout")
	cmd.MarkFlagsMutuallyExclusive("raw", "sn")

	return cmd
}

// selectRecords picks the slots to print.
func selectRecords(table *channels.Table, all bool, keys []int) ([]channels.Record, error) {
	if len(keys) > 0 {
		records := make([]channels.Record, 0, len(keys))
		for _, key := range keys {
			rec, ok := table.Get(key)
			if !ok {
				return nil, fmt.Errorf("serial number %d: %w", key, errors.ErrNotFound)
			}
			records = append(records, rec)
		}
		return records, nil
	}
	if all {
		return table.Records(), nil
	}
	return table.Populated(), nil
}
