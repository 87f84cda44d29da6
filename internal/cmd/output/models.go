package output

import (
	"io"

	"github.com/agentstation/chanmap/internal/cmd/table"
	"github.com/agentstation/chanmap/pkg/channels"
	"github.com/agentstation/chanmap/pkg/merger"
)

// FormatChannels writes records as a table, or as JSON/YAML documents.
// Markdown always carries every column.
func FormatChannels(w io.Writer, records []channels.Record, format Format) error {
	formatter := NewFormatter(format)

	var outputData any
	switch format {
	case FormatTable, FormatWide, FormatMarkdown, "":
		outputData = table.ChannelsToTableData(records, format == FormatWide || format == FormatMarkdown)
	default:
		if records == nil {
			records = []channels.Record{}
		}
		outputData = records
	}

	return formatter.Format(w, outputData)
}

// FormatChanges writes the per-channel outcomes of a merge. Structured
// formats get the whole value; table formats get the change list.
func FormatChanges(w io.Writer, changes []merger.Change, report any, format Format) error {
	formatter := NewFormatter(format)

	switch format {
	case FormatTable, FormatWide, FormatMarkdown, "":
		data := table.ChangesToTableData(changes, format == FormatWide)
		if len(data.Rows) == 0 {
			return nil
		}
		return formatter.Format(w, data)
	default:
		return formatter.Format(w, report)
	}
}
