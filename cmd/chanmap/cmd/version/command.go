// Package version implements the version command.
package version

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentstation/chanmap/internal/cmd/output"
)

// AppContext defines what the version command needs from the app.
type AppContext interface {
	Version() string
	Commit() string
	Date() string
	BuiltBy() string
	OutputFormat() string
}

// Info is the version information printed by the command.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	Date      string `json:"date" yaml:"date"`
	BuiltBy   string `json:"built_by" yaml:"built_by"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// NewCommand creates the version command.
func NewCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := Info{
				Version:   app.Version(),
				Commit:    app.Commit(),
				Date:      app.Date(),
				BuiltBy:   app.BuiltBy(),
				GoVersion: runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			}

			switch format := output.Format(app.OutputFormat()); format {
			case output.FormatJSON, output.FormatYAML:
				return output.NewFormatter(format).Format(cmd.OutOrStdout(), info)
			default:
				w := cmd.OutOrStdout()
				fmt.Fprintf(w, "chanmap version %s\n", info.Version)
				fmt.Fprintf(w, "commit: %s\n", info.Commit)
				fmt.Fprintf(w, "built: %s\n", info.Date)
				fmt.Fprintf(w, "built by: %s\n", info.BuiltBy)
				fmt.Fprintf(w, "go version: %s\n", info.GoVersion)
				fmt.Fprintf(w, "platform: %s\n", info.Platform)
				return nil
			}
		},
	}
}
