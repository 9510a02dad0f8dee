// Package models defines data structures for training sheet extraction.
package models

// Grid is the read-only cell text of one worksheet plus its merged ranges.
// Rows may have different lengths.
type Grid struct {
	// Cells holds cell text, indexed [row][col] from zero.
	Cells [][]string `json:"cells"`
	// Merges lists merged ranges in the order the source reported them.
	Merges []MergeRect `json:"merges,omitempty"`
}

// NumRows returns the number of rows in the grid.
func (g *Grid) NumRows() int {
	return len(g.Cells)
}

// RowLen returns the length of the given row (1-based), or 0 when the row
// does not exist.
func (g *Grid) RowLen(row int) int {
	if row < 1 || row > len(g.Cells) {
		return 0
	}
	return len(g.Cells[row-1])
}

// Has reports whether (row, col), both 1-based, addresses a stored cell.
func (g *Grid) Has(row, col int) bool {
	return col >= 1 && col <= g.RowLen(row)
}

// Cell returns the text at (row, col), both 1-based. Out-of-range
// coordinates yield an empty string.
func (g *Grid) Cell(row, col int) string {
	if !g.Has(row, col) {
		return ""
	}
	return g.Cells[row-1][col-1]
}

// MergeRect is a merged cell range. Row and Col are the 1-based top-left
// coordinates; NumRows and NumCols are at least 1.
type MergeRect struct {
	Row     int `json:"row"`
	Col     int `json:"col"`
	NumRows int `json:"num_rows"`
	NumCols int `json:"num_cols"`
}

// LastRow returns the last row (inclusive) covered by the range.
func (m MergeRect) LastRow() int {
	return m.Row + m.NumRows - 1
}

// LastCol returns the last column (inclusive) covered by the range.
func (m MergeRect) LastCol() int {
	return m.Col + m.NumCols - 1
}

// ContainsRow reports whether row falls inside the range's rows.
func (m MergeRect) ContainsRow(row int) bool {
	return m.Row <= row && row <= m.LastRow()
}

// Contains reports whether (row, col) falls inside the range.
func (m MergeRect) Contains(row, col int) bool {
	return m.ContainsRow(row) && m.Col <= col && col <= m.LastCol()
}
