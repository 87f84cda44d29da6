package tableio

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/agentstation/chanmap/pkg/errors"
	"github.com/agentstation/chanmap/pkg/logging"
	"github.com/agentstation/chanmap/pkg/source"
)

var errNoSheets = errors.New("workbook has no sheets")

// ReadSource reads a channel export. Any failure, including a missing
// required column or an unparseable Location or Frequency, is returned as
// an *errors.InputReadError.
func ReadSource(ctx context.Context, path string) ([]source.Row, error) {
	logger := logging.FromContext(ctx)

	rows, err := readRows(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputReadError(path, 0, "file does not exist", err)
		}
		return nil, errors.WrapInputRead(path, err)
	}
	if len(rows) == 0 {
		return nil, errors.NewInputReadError(path, 0, "file is empty", nil)
	}

	header := rows[0]
	if missing := source.MissingColumns(header); len(missing) > 0 {
		return nil, errors.NewInputReadError(path, 0,
			fmt.Sprintf("missing required columns: %s", strings.Join(missing, ", ")), nil)
	}

	out := make([]source.Row, 0, len(rows)-1)
	for i, row := range rows[1:] {
		parsed, err := source.FromCells(cells(header, row))
		if err != nil {
			return nil, errors.NewInputReadError(path, i+1, err.Error(), err)
		}
		out = append(out, parsed)
	}

	logger.Info().Str("input", path).Int("rows", len(out)).Msg("Read input channels")
	return out, nil
}
