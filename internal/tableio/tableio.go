// Package tableio reads channel exports and persisted channel tables from
// disk and writes merged tables back. Files ending in .xlsx go through
// excelize (first sheet); everything else is treated as CSV.
package tableio

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/agentstation/chanmap/pkg/errors"
	"github.com/agentstation/chanmap/pkg/save"
)

const utf8BOM = "\ufeff"

// readRows returns every row of the file as trimmed string cells. The first
// row is the header. Fully empty rows are dropped.
func readRows(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rows [][]string
	format := save.FormatFor(path)
	if format == save.FormatXLSX {
		rows, err = decodeXLSX(data)
	} else {
		rows, err = decodeCSV(data)
	}
	if err != nil {
		return nil, parseError(format, path, err)
	}

	out := rows[:0]
	for _, row := range rows {
		empty := true
		for i := range row {
			row[i] = strings.TrimSpace(row[i])
			if row[i] != "" {
				empty = false
			}
		}
		if !empty {
			out = append(out, row)
		}
	}
	if len(out) > 0 && len(out[0]) > 0 {
		out[0][0] = strings.TrimPrefix(out[0][0], utf8BOM)
	}
	return out, nil
}

// parseError reports a file that could not be decoded, with the position
// when the CSV reader knows it.
func parseError(format save.Format, path string, err error) error {
	parseErr := errors.NewParseError(format.String(), path, err.Error(), err)
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		parseErr.Line = csvErr.Line
		parseErr.Column = csvErr.Column
		parseErr.Message = csvErr.Err.Error()
	}
	return parseErr
}

func decodeCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func decodeXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, errNoSheets
	}
	return f.GetRows(sheetName)
}

// cells maps a data row onto the header. Short rows leave trailing
// columns blank; cells beyond the header are ignored.
func cells(header, row []string) map[string]string {
	m := make(map[string]string, len(header))
	for i, col := range header {
		if i < len(row) {
			m[col] = row[i]
		} else {
			m[col] = ""
		}
	}
	return m
}
