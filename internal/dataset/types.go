package dataset

import (
	"fmt"
	"strconv"
	"time"
)

// Kind identifies the value type of a column.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindString
	KindDate
)

// String returns a human-readable name for the kind
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindDate:
		return "date"
	default:
		return "unknown"
	}
}

// Dataset represents one named fixture table
type Dataset struct {
	Name    string
	Columns []Column
}

// Column represents an ordered column of tagged cells
type Column struct {
	Name  string
	Kind  Kind
	Cells []Cell
}

// Cell is a tagged value: int, float, string, date, or missing.
// The zero Cell is missing.
type Cell struct {
	kind    Kind
	present bool
	i       int64
	f       float64
	s       string
	t       time.Time
}

// Int returns an integer cell
func Int(v int64) Cell {
	return Cell{kind: KindInt, present: true, i: v}
}

// Float returns a floating-point cell
func Float(v float64) Cell {
	return Cell{kind: KindFloat, present: true, f: v}
}

// Str returns a string cell. The value is preserved verbatim,
// including leading and trailing whitespace.
func Str(v string) Cell {
	return Cell{kind: KindString, present: true, s: v}
}

// Date returns a date cell with daily resolution
func Date(t time.Time) Cell {
	return Cell{kind: KindDate, present: true, t: t}
}

// Missing returns the missing-value marker cell
func Missing() Cell {
	return Cell{}
}

// IsMissing reports whether the cell holds no value
func (c Cell) IsMissing() bool {
	return !c.present
}

// Int64 returns the integer value of an int cell, or 0 if missing
func (c Cell) Int64() int64 {
	return c.i
}

// Float64 returns the float value of a float cell, or 0 if missing
func (c Cell) Float64() float64 {
	return c.f
}

// Text returns the string value of a string cell, or "" if missing
func (c Cell) Text() string {
	return c.s
}

// Time returns the date value of a date cell
func (c Cell) Time() time.Time {
	return c.t
}

// Render returns the textual form of the cell for serialization.
// Missing cells render as the empty string; integers never take a
// fractional form even when the surrounding column contains missing
// values; dates render as YYYY-MM-DD.
func (c Cell) Render() string {
	if !c.present {
		return ""
	}
	switch c.kind {
	case KindInt:
		return strconv.FormatInt(c.i, 10)
	case KindFloat:
		return strconv.FormatFloat(c.f, 'f', -1, 64)
	case KindDate:
		return c.t.Format("2006-01-02")
	default:
		return c.s
	}
}

// Value returns the cell as a driver-friendly value for database
// insertion: nil for missing cells, otherwise the underlying Go value.
func (c Cell) Value() any {
	if !c.present {
		return nil
	}
	switch c.kind {
	case KindInt:
		return c.i
	case KindFloat:
		return c.f
	case KindDate:
		return c.t
	default:
		return c.s
	}
}

// Rows returns the number of rows in the dataset
func (d *Dataset) Rows() int {
	if len(d.Columns) == 0 {
		return 0
	}
	return len(d.Columns[0].Cells)
}

// Header returns the column names in declared order
func (d *Dataset) Header() []string {
	names := make([]string, len(d.Columns))
	for i, col := range d.Columns {
		names[i] = col.Name
	}
	return names
}

// Column returns the column with the given name, or nil
func (d *Dataset) Column(name string) *Column {
	for i := range d.Columns {
		if d.Columns[i].Name == name {
			return &d.Columns[i]
		}
	}
	return nil
}

// Record returns row i rendered as a slice of strings in column order
func (d *Dataset) Record(i int) []string {
	rec := make([]string, len(d.Columns))
	for j, col := range d.Columns {
		rec[j] = col.Cells[i].Render()
	}
	return rec
}

// Validate checks the structural invariants of the dataset: at least
// one column, equal column lengths, and every present cell agreeing
// with its column's declared kind. A failure here is a malformed
// fixture specification, i.e. a programmer error.
func (d *Dataset) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("dataset has no name")
	}
	if len(d.Columns) == 0 {
		return fmt.Errorf("dataset %s has no columns", d.Name)
	}
	rows := len(d.Columns[0].Cells)
	for _, col := range d.Columns {
		if len(col.Cells) != rows {
			return fmt.Errorf("dataset %s: column %s has %d cells, want %d",
				d.Name, col.Name, len(col.Cells), rows)
		}
		for i, cell := range col.Cells {
			if cell.present && cell.kind != col.Kind {
				return fmt.Errorf("dataset %s: column %s row %d holds a %s value in a %s column",
					d.Name, col.Name, i, cell.kind, col.Kind)
			}
		}
	}
	return nil
}
