// Package dataset provides a column-oriented tabular container used by the
// encoding transformers.
//
// A Frame holds named columns of equal length. Cell values are opaque:
// strings are treated as categories, numeric types as numbers, and nil or
// NaN as missing. The Frame only offers column-indexed access; it performs
// no statistics itself.
package dataset

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/featgo/pkg/errors"
)

// Column is a named sequence of cell values.
type Column struct {
	Name   string
	Values []any
}

// Frame is an ordered collection of named columns of equal length.
type Frame struct {
	names []string
	cols  map[string][]any
}

// New creates a Frame from the given columns.
// Column names must be unique and non-empty, and all columns must have the
// same number of rows.
func New(columns ...Column) (*Frame, error) {
	f := &Frame{
		names: make([]string, 0, len(columns)),
		cols:  make(map[string][]any, len(columns)),
	}
	rows := -1
	for _, c := range columns {
		if c.Name == "" {
			return nil, errors.NewValueError("dataset.New", "column name must not be empty")
		}
		if _, dup := f.cols[c.Name]; dup {
			return nil, errors.NewValueError("dataset.New", "duplicate column name: "+c.Name)
		}
		if rows >= 0 && len(c.Values) != rows {
			return nil, errors.NewValueError("dataset.New", "columns have different lengths")
		}
		rows = len(c.Values)
		f.names = append(f.names, c.Name)
		f.cols[c.Name] = append([]any(nil), c.Values...)
	}
	return f, nil
}

// FromRecords creates a Frame from CSV-like records: a header row and data
// rows of strings. Per column, if every non-empty cell parses as a number
// the column is stored as float64, otherwise as string categories. Empty
// cells become missing values.
func FromRecords(headers []string, rows [][]string) (*Frame, error) {
	for _, row := range rows {
		if len(row) != len(headers) {
			return nil, errors.NewValueError("dataset.FromRecords", "row length does not match header length")
		}
	}
	columns := make([]Column, 0, len(headers))
	for j, name := range headers {
		numeric := true
		for _, row := range rows {
			if row[j] == "" {
				continue
			}
			if _, err := strconv.ParseFloat(row[j], 64); err != nil {
				numeric = false
				break
			}
		}
		values := make([]any, len(rows))
		for i, row := range rows {
			switch {
			case row[j] == "":
				values[i] = nil
			case numeric:
				v, _ := strconv.ParseFloat(row[j], 64)
				values[i] = v
			default:
				values[i] = row[j]
			}
		}
		columns = append(columns, Column{Name: name, Values: values})
	}
	return New(columns...)
}

// ColumnNames returns the column names in order.
func (f *Frame) ColumnNames() []string {
	return append([]string(nil), f.names...)
}

// NumRows returns the number of rows.
func (f *Frame) NumRows() int {
	if len(f.names) == 0 {
		return 0
	}
	return len(f.cols[f.names[0]])
}

// NumCols returns the number of columns.
func (f *Frame) NumCols() int {
	return len(f.names)
}

// HasColumn reports whether a column with the given name exists.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.cols[name]
	return ok
}

// Column returns a copy of the values of the named column.
func (f *Frame) Column(name string) ([]any, error) {
	col, ok := f.cols[name]
	if !ok {
		return nil, errors.NewValueError("dataset.Column", "unknown column: "+name)
	}
	return append([]any(nil), col...), nil
}

// SetColumn replaces the values of an existing column.
// The replacement must have the same number of rows as the frame.
func (f *Frame) SetColumn(name string, values []any) error {
	if _, ok := f.cols[name]; !ok {
		return errors.NewValueError("dataset.SetColumn", "unknown column: "+name)
	}
	if len(values) != f.NumRows() {
		return errors.NewValueError("dataset.SetColumn", "value length does not match row count")
	}
	f.cols[name] = append([]any(nil), values...)
	return nil
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	clone := &Frame{
		names: append([]string(nil), f.names...),
		cols:  make(map[string][]any, len(f.cols)),
	}
	for name, col := range f.cols {
		clone.cols[name] = append([]any(nil), col...)
	}
	return clone
}

// SchemaEquals reports whether the other frame has the same column names in
// the same order.
func (f *Frame) SchemaEquals(other *Frame) bool {
	if other == nil || len(f.names) != len(other.names) {
		return false
	}
	for i, name := range f.names {
		if other.names[i] != name {
			return false
		}
	}
	return true
}

// IsCategorical reports whether the named column holds string categories.
// A column is categorical when it has at least one non-missing cell and
// every non-missing cell is a string.
func (f *Frame) IsCategorical(name string) (bool, error) {
	col, ok := f.cols[name]
	if !ok {
		return false, errors.NewValueError("dataset.IsCategorical", "unknown column: "+name)
	}
	seen := false
	for _, v := range col {
		if IsMissing(v) {
			continue
		}
		if _, ok := v.(string); !ok {
			return false, nil
		}
		seen = true
	}
	return seen, nil
}

// ToMatrix converts the named columns (all columns when none are given) to a
// gonum dense matrix. Every cell must be numeric and non-missing.
func (f *Frame) ToMatrix(columns ...string) (*mat.Dense, error) {
	if len(columns) == 0 {
		columns = f.names
	}
	rows := f.NumRows()
	if rows == 0 || len(columns) == 0 {
		return nil, errors.NewModelError("dataset.ToMatrix", "empty data", errors.ErrEmptyData)
	}
	m := mat.NewDense(rows, len(columns), nil)
	for j, name := range columns {
		col, ok := f.cols[name]
		if !ok {
			return nil, errors.NewValueError("dataset.ToMatrix", "unknown column: "+name)
		}
		for i, v := range col {
			x, ok := AsFloat(v)
			if !ok {
				return nil, errors.NewValueError("dataset.ToMatrix", "column "+name+" contains non-numeric or missing cells")
			}
			m.Set(i, j, x)
		}
	}
	return m, nil
}

// IsMissing reports whether a cell value represents a missing observation.
// Missing cells are nil or NaN; the representation is otherwise passed
// through untouched by all transformers.
func IsMissing(v any) bool {
	if v == nil {
		return true
	}
	if x, ok := v.(float64); ok {
		return math.IsNaN(x)
	}
	return false
}

// AsFloat converts a numeric cell value to float64.
// It returns false for missing cells and non-numeric values.
func AsFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) {
			return 0, false
		}
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	default:
		return 0, false
	}
}
