package rocksling

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Table is an in-memory spreadsheet: a header row and data rows of raw cells.
//
// An empty cell stands for a missing value.
type Table struct {
	Header []string
	Rows   [][]string
}

// Index returns the position of the named column, or -1 if there is none.
func (t *Table) Index(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Cell returns the cell of row i in the named column.
// Unknown columns and short rows read as an empty cell.
func (t *Table) Cell(i int, name string) string {
	j := t.Index(name)
	if j < 0 || i < 0 || i >= len(t.Rows) || j >= len(t.Rows[i]) {
		return ""
	}
	return t.Rows[i][j]
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }

// parseDecimal reads a numeric cell. ok is false for empty or non numeric cells.
func parseDecimal(cell string) (d decimal.Decimal, ok bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(cell)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// parseID reads an integral identifier, accepting "12" as well as "12.0".
func parseID(cell string) (int, bool) {
	d, ok := parseDecimal(cell)
	if !ok || !d.IsInteger() {
		return 0, false
	}
	return int(d.IntPart()), true
}
