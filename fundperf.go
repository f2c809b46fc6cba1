package rocksling

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Columns of the Preqin fund performance export.
const (
	ColFundID         = "FUND ID"
	ColFirmID         = "FIRM ID"
	ColName           = "NAME"
	ColQuartileRank   = "PREQIN QUARTILE RANK"
	ColStrategy       = "STRATEGY"
	ColAssetClass     = "ASSET CLASS"
	ColRegion         = "PRIMARY REGION FOCUS"
	ColCurrency       = "FUND CURRENCY"
	ColStatus         = "STATUS"
	ColVintage        = "VINTAGE / INCEPTION YEAR"
	ColFundSize       = "FUND SIZE (USD MN)"
	ColTargetSize     = "TARGET SIZE (USD MN)"
	ColFinalCloseSize = "FINAL CLOSE SIZE (USD MN)"
	ColHardCap        = "HARD CAP (USD MN)"
	ColInitialTarget  = "INITIAL TARGET (USD MN)"
	ColCalled         = "CALLED (%)"
	ColDPI            = "DPI (%)"
	ColRVPI           = "RVPI (%)"
	ColNetIRR         = "NET IRR (%)"
	ColNetMultiple    = "NET MULTIPLE (X)"
)

// sizeColumns are the five size figures a fund size is the max of.
var sizeColumns = []string{ColFundSize, ColTargetSize, ColFinalCloseSize, ColHardCap, ColInitialTarget}

// FundPerformance is one row of the fund performance export.
type FundPerformance struct {
	ID    int
	valid bool              // false when the FUND ID cell is not an integer
	cells map[string]string // by column name
}

// Get returns the raw cell for the column, "" when missing.
func (f FundPerformance) Get(col string) string { return f.cells[col] }

// Decimal returns the numeric value of the column.
func (f FundPerformance) Decimal(col string) (decimal.Decimal, bool) {
	return parseDecimal(f.cells[col])
}

// MaxSize returns the largest of the five size figures, ignoring missing ones.
func (f FundPerformance) MaxSize() (size decimal.Decimal, ok bool) {
	for _, col := range sizeColumns {
		d, valid := f.Decimal(col)
		if !valid {
			continue
		}
		if !ok || d.GreaterThan(size) {
			size, ok = d, true
		}
	}
	return size, ok
}

// Reference is the fund performance export indexed by fund id.
type Reference struct {
	columns []string
	rows    []FundPerformance
	byID    map[int]int // fund id -> index in rows
}

// NewReference indexes a fund performance table.
//
// The table must carry the FUND ID and the CALLED, DPI and RVPI percentage
// columns. When a fund id appears more than once the first row wins.
func NewReference(t *Table) (*Reference, error) {
	for _, col := range []string{ColFundID, ColCalled, ColDPI, ColRVPI} {
		if t.Index(col) < 0 {
			return nil, fmt.Errorf("fund performance table has no %q column", col)
		}
	}
	ref := &Reference{
		columns: append([]string(nil), t.Header...),
		rows:    make([]FundPerformance, 0, t.Len()),
		byID:    make(map[int]int, t.Len()),
	}
	for i, row := range t.Rows {
		cells := make(map[string]string, len(t.Header))
		for j, col := range t.Header {
			if j < len(row) {
				cells[col] = row[j]
			}
		}
		id, valid := parseID(cells[ColFundID])
		ref.rows = append(ref.rows, FundPerformance{ID: id, valid: valid, cells: cells})
		if _, exists := ref.byID[id]; valid && !exists {
			ref.byID[id] = i
		}
	}
	return ref, nil
}

// Lookup returns the fund performance row of the fund id.
func (r *Reference) Lookup(id int) (FundPerformance, bool) {
	i, ok := r.byID[id]
	if !ok {
		return FundPerformance{}, false
	}
	return r.rows[i], true
}

// Columns returns the export columns in file order.
func (r *Reference) Columns() []string { return r.columns }

// Funds returns all rows in file order, including those without a usable fund id.
func (r *Reference) Funds() []FundPerformance { return r.rows }

// Len returns the number of rows in the export.
func (r *Reference) Len() int { return len(r.rows) }
