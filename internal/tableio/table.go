package tableio

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/agentstation/chanmap/pkg/channels"
	"github.com/agentstation/chanmap/pkg/constants"
	"github.com/agentstation/chanmap/pkg/errors"
	"github.com/agentstation/chanmap/pkg/logging"
	"github.com/agentstation/chanmap/pkg/save"
)

// sheetName is the worksheet written to .xlsx outputs.
const sheetName = "Channels"

// ReadTable loads a persisted channel table. A missing file is not an
// error: it returns (nil, false, nil) so the caller can start fresh.
// Columns outside the canonical set are logged and dropped. Cells other than
// the key are not validated; they are carried through as given.
func ReadTable(ctx context.Context, path string) (*channels.Table, bool, error) {
	logger := logging.FromContext(ctx)

	rows, err := readRows(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		var parseErr *errors.ParseError
		if errors.As(err, &parseErr) {
			return nil, false, err
		}
		return nil, false, errors.WrapIO("read", path, err)
	}
	if len(rows) == 0 {
		return nil, false, errors.NewSchemaError(path, channels.KeyColumn, "table has no header")
	}

	header := rows[0]
	keyIndex := -1
	for i, col := range header {
		switch {
		case col == channels.KeyColumn:
			keyIndex = i
		case !channels.IsColumn(col):
			logger.Warn().Str("output", path).Str("column", col).Msg("Dropping unknown column")
		}
	}
	if keyIndex < 0 {
		return nil, false, errors.NewSchemaError(path, channels.KeyColumn, "key column is missing")
	}

	records := make([]channels.Record, 0, len(rows)-1)
	seen := make(map[int]bool, len(rows)-1)
	for i, row := range rows[1:] {
		raw := ""
		if keyIndex < len(row) {
			raw = row[keyIndex]
		}
		key, err := parseKey(raw)
		if err != nil {
			return nil, false, errors.NewSchemaError(path, channels.KeyColumn,
				fmt.Sprintf("row %d: %v", i+1, err))
		}
		if seen[key] {
			return nil, false, errors.NewSchemaError(path, channels.KeyColumn,
				fmt.Sprintf("row %d: duplicate key %d", i+1, key))
		}
		seen[key] = true

		rec := channels.RecordFromCells(key, cells(header, row))
		if rec.RxFreqText != "" || rec.TxFreqText != "" {
			logger.Debug().Int("sn", key).Msg("Keeping non-numeric frequency as written")
		}
		records = append(records, rec)
	}

	table, err := channels.NewTableFromRecords(records)
	if err != nil {
		return nil, false, errors.NewSchemaError(path, channels.KeyColumn, err.Error())
	}

	logger.Debug().Str("output", path).Stringer("table", table).Msg("Loaded existing table")
	return table, true, nil
}

// parseKey accepts a positive integer, written plainly or as an integral
// float.
func parseKey(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("key is blank")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || f != math.Trunc(f) {
			return 0, fmt.Errorf("key %q is not an integer", s)
		}
		n = int(f)
	}
	if n < constants.FirstKey || n > constants.MaxKey {
		return 0, fmt.Errorf("key %d is outside %d..%d", n, constants.FirstKey, constants.MaxKey)
	}
	return n, nil
}

// WriteTable writes every slot of table under the canonical header. The
// data goes to a temporary file in the target directory which is then
// renamed over path, so path is either fully replaced or left untouched.
// With save.WithWriter the encoded table goes to the writer and path only
// selects the format.
func WriteTable(ctx context.Context, path string, table *channels.Table, opts ...save.Option) error {
	if table == nil {
		return errors.NewValidationError("table", nil, "cannot be nil")
	}
	options := save.Defaults().Apply(opts...)

	var (
		data   []byte
		err    error
		format = options.Format(path)
	)
	if !format.IsValid() {
		return errors.NewValidationError("format", format, "unsupported table format")
	}
	if format == save.FormatXLSX {
		data, err = encodeXLSX(table)
	} else {
		data, err = encodeCSV(table)
	}
	if err != nil {
		return errors.WrapIO("encode", path, err)
	}

	if w := options.Writer(); w != nil {
		if _, err := w.Write(data); err != nil {
			return errors.WrapIO("write", path, err)
		}
		return nil
	}

	if err := atomicWrite(path, data); err != nil {
		return err
	}

	logging.FromContext(ctx).Info().
		Str("output", path).
		Str("format", format.String()).
		Int("slots", table.Len()).
		Int("populated", len(table.Keys())).
		Msg("Wrote channel table")
	return nil
}

func encodeCSV(table *channels.Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(channels.Columns); err != nil {
		return nil, err
	}
	if err := w.WriteAll(table.Rows()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeXLSX(table *channels.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, err
	}

	write := func(rowNum int, values []string) error {
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		row := make([]any, len(values))
		for i, v := range values {
			row[i] = v
		}
		return f.SetSheetRow(sheetName, cell, &row)
	}

	if err := write(1, channels.Columns); err != nil {
		return nil, err
	}
	for i, values := range table.Rows() {
		if err := write(i+2, values); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// atomicWrite replaces path with data via a temp file and rename.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return errors.WrapIO("write", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return errors.WrapIO("write", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return errors.WrapIO("close", tmpName, err)
	}
	if err := os.Chmod(tmpName, constants.FilePermissions); err != nil {
		cleanup()
		return errors.WrapIO("write", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return errors.WrapIO("rename", path, err)
	}
	return nil
}
