// Package tabular reads and writes delimited text files as header-plus-rows
// tables. It is the thin I/O collaborator under the validation and
// reconciliation pipeline: it decodes bytes and splits fields, and leaves
// all width and value checks to the callers.
package tabular

// Table is one parsed delimited file: a header row and the data rows that
// follow it, in file order. Rows keep their raw widths so validators can
// report column-count mismatches.
type Table struct {
	// Name identifies the source, usually the file path. Used in diagnostics.
	Name string

	// Header is the first row of the file.
	Header []string

	// Rows are the data rows after the header.
	Rows [][]string
}

// ColumnIndex returns the zero-based position of the named header column,
// or -1 when the header does not contain it.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Width returns the number of header columns.
func (t *Table) Width() int {
	return len(t.Header)
}

// Cell returns the value at the given data row and column, or the empty
// string when the row is too short. row is zero-based.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}
