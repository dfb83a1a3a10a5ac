// Package frame renders labelled two-dimensional data as
// semicolon-separated CSV with a two-level column header, the layout
// used by the analysis tooling downstream of this module.
package frame

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Column is one value column, addressed by a (Group, Name) pair.
// Group is the first header row, Name the second.
type Column struct {
	Group string
	Name  string
}

// Frame is a table with a multi-part row index and grouped columns.
type Frame struct {
	IndexNames []string
	Columns    []Column
	rows       []row
}

type row struct {
	index  []string
	values []*float64
}

// New builds an empty frame with the given index names and columns.
func New(indexNames []string, columns []Column) *Frame {
	return &Frame{IndexNames: indexNames, Columns: columns}
}

// AddRow appends a row. The index must have one entry per index name
// and values one entry per column; nil values render as empty cells.
func (f *Frame) AddRow(index []string, values []*float64) error {
	if len(index) != len(f.IndexNames) {
		return fmt.Errorf("row index has %d parts, frame has %d", len(index), len(f.IndexNames))
	}
	if len(values) != len(f.Columns) {
		return fmt.Errorf("row has %d values, frame has %d columns", len(values), len(f.Columns))
	}
	f.rows = append(f.rows, row{index: index, values: values})
	return nil
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return len(f.rows)
}

// Value returns the cell at a row and column position, or nil when
// the cell is empty.
func (f *Frame) Value(rowIdx, colIdx int) *float64 {
	return f.rows[rowIdx].values[colIdx]
}

// Index returns the index of a row.
func (f *Frame) Index(rowIdx int) []string {
	return f.rows[rowIdx].index
}

func formatCell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// WriteCSV writes the frame with two header rows. The first carries
// the column groups over the index names, the second the column
// names.
func (f *Frame) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	groups := make([]string, 0, len(f.IndexNames)+len(f.Columns))
	names := make([]string, 0, len(f.IndexNames)+len(f.Columns))
	groups = append(groups, f.IndexNames...)
	for range f.IndexNames {
		names = append(names, "")
	}
	for _, col := range f.Columns {
		groups = append(groups, col.Group)
		names = append(names, col.Name)
	}
	if err := cw.Write(groups); err != nil {
		return err
	}
	if err := cw.Write(names); err != nil {
		return err
	}

	record := make([]string, len(f.IndexNames)+len(f.Columns))
	for _, r := range f.rows {
		record = record[:0]
		record = append(record, r.index...)
		for _, v := range r.values {
			record = append(record, formatCell(v))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the frame to a file path.
func (f *Frame) WriteCSVFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(file)
	return f.WriteCSV(file)
}
