// Package sheet reads and writes tabular xlsx files as in-memory tables.
package sheet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Table is an in-memory spreadsheet: a header row plus data rows.
// Cells hold strings as read from the file, ints after numeric
// coercion, or nil for blanks.
type Table struct {
	Headers []string
	Rows    [][]interface{}
}

// Read loads the first sheet of an xlsx file. The first row becomes the
// header row; the remaining rows become data rows.
func Read(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}

	table := &Table{}
	for rowIdx, row := range rows {
		if rowIdx == 0 {
			table.Headers = append(table.Headers, row...)
			continue
		}
		cells := make([]interface{}, len(row))
		for colIdx, value := range row {
			cells[colIdx] = value
		}
		table.Rows = append(table.Rows, cells)
	}

	return table, nil
}

// Write saves the table as a new xlsx workbook. Nil cells are left blank.
func (t *Table) Write(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := f.GetSheetName(0)

	for colIdx, header := range t.Headers {
		cellName, err := excelize.CoordinatesToCellName(colIdx+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cellName, header); err != nil {
			return err
		}
	}

	for rowIdx, row := range t.Rows {
		for colIdx, value := range row {
			if value == nil {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cellName, value); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	return nil
}

// ColumnIndex returns the index of a header, or -1 if absent
func (t *Table) ColumnIndex(name string) int {
	for i, header := range t.Headers {
		if header == name {
			return i
		}
	}
	return -1
}

// EnsureColumn returns the index of a header, appending it first if absent
func (t *Table) EnsureColumn(name string) int {
	if idx := t.ColumnIndex(name); idx >= 0 {
		return idx
	}
	t.Headers = append(t.Headers, name)
	return len(t.Headers) - 1
}

// RowCount returns the number of data rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// Cell returns the value at a row/column position, or nil when the row
// is too short
func (t *Table) Cell(row, col int) interface{} {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return nil
	}
	return t.Rows[row][col]
}

// CellString returns the cell value rendered as a string, empty for blanks
func (t *Table) CellString(row, col int) string {
	value := t.Cell(row, col)
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// SetCell stores a value at a row/column position, widening the row if needed
func (t *Table) SetCell(row, col int, value interface{}) {
	if row < 0 || row >= len(t.Rows) || col < 0 {
		return
	}
	for len(t.Rows[row]) <= col {
		t.Rows[row] = append(t.Rows[row], nil)
	}
	t.Rows[row][col] = value
}

// CoerceInt converts every value in the named column to an int or nil,
// making it a nullable integer column. Missing columns are left alone,
// and rows too short to reach the column are not widened.
func (t *Table) CoerceInt(name string) {
	col := t.ColumnIndex(name)
	if col < 0 {
		return
	}

	for row := range t.Rows {
		if col >= len(t.Rows[row]) {
			continue
		}
		t.SetCell(row, col, toNullableInt(t.Cell(row, col)))
	}
}

// toNullableInt parses a cell value as an integer, yielding nil for
// empty or non-numeric values
func toNullableInt(value interface{}) interface{} {
	switch v := value.(type) {
	case nil:
		return nil
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		text := strings.TrimSpace(v)
		if text == "" {
			return nil
		}
		if n, err := strconv.Atoi(text); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return int(f)
		}
		return nil
	default:
		return nil
	}
}
