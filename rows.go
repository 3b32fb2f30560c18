package sheetcache

// Rows is the tabular payload of a range: an ordered list of rows, each an
// ordered list of formatted cell values. The spreadsheet API omits trailing
// empty cells, so rows may be of different lengths.
//
// Rows returned by the cache are shared between callers and must not be modified.
type Rows [][]string

// Cell returns the value at the given row and column, or an empty string if
// the cell is absent.
func (r Rows) Cell(row, col int) string {
	if row < 0 || row >= len(r) {
		return ""
	}
	if col < 0 || col >= len(r[row]) {
		return ""
	}
	return r[row][col]
}

// Len returns the number of rows.
func (r Rows) Len() int {
	return len(r)
}
