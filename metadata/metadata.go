// Package metadata models the per-item tabular description of a digital
// collection and aggregates its repeated values into ranked term lists.
package metadata

// Row maps column names to cell values for one digital object.
type Row map[string]string

// Value returns the cell value for column, or "" when the column is absent.
func (r Row) Value(column string) string {
	return r[column]
}

// Lookup returns the cell value for column and whether the column exists,
// distinguishing a column that was never present from one that is blank.
func (r Row) Lookup(column string) (string, bool) {
	v, ok := r[column]
	return v, ok
}
