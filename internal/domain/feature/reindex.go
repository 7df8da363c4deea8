package feature

import "slices"

// Vector is a dense row aligned to a model schema.
type Vector struct {
	columns []string
	values  []float64
}

// Reindex aligns row to schema: columns come out in schema order, columns
// missing from row are 0, and row columns absent from schema are dropped.
func Reindex(row Row, schema []string) Vector {
	values := make([]float64, len(schema))
	for i, col := range schema {
		values[i] = row[col]
	}
	return Vector{columns: slices.Clone(schema), values: values}
}

// Columns returns the column names in schema order.
func (v Vector) Columns() []string { return slices.Clone(v.columns) }

// Values returns the values in schema order.
func (v Vector) Values() []float64 { return slices.Clone(v.values) }

// Len returns the number of columns.
func (v Vector) Len() int { return len(v.columns) }

// Get returns the value of column name and whether the column exists.
func (v Vector) Get(name string) (float64, bool) {
	i := slices.Index(v.columns, name)
	if i < 0 {
		return 0, false
	}
	return v.values[i], true
}

// Active returns the names of non-zero columns in schema order.
func (v Vector) Active() []string {
	var out []string
	for i, val := range v.values {
		if val != 0 {
			out = append(out, v.columns[i])
		}
	}
	return out
}
