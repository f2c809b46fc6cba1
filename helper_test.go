package rocksling

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr(s string) *string { return &s }

// assertDecimal fails when got is not numerically equal to want.
func assertDecimal(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	assert.True(t, got.Equal(dec(want)), "%s = %v, want %v", name, got, want)
}

// exportHeader is the column layout of the fund performance export.
var exportHeader = []string{
	ColFundID, ColFirmID, ColName, ColQuartileRank, ColStrategy, ColAssetClass,
	ColRegion, ColCurrency, ColStatus, ColVintage,
	ColFundSize, ColTargetSize, ColFinalCloseSize, ColHardCap, ColInitialTarget,
	ColCalled, ColDPI, ColRVPI, ColNetIRR, ColNetMultiple,
}

// exportRow returns a complete export row for the fund, overridden by cells.
func exportRow(id string, cells map[string]string) []string {
	base := map[string]string{
		ColFundID: id, ColFirmID: "7", ColName: "Fund " + id, ColQuartileRank: "2",
		ColStrategy: "Buyout", ColAssetClass: "Private Equity", ColRegion: "North America",
		ColCurrency: "USD", ColStatus: "Closed", ColVintage: "2018",
		ColFundSize: "100", ColTargetSize: "120", ColFinalCloseSize: "110", ColHardCap: "130", ColInitialTarget: "90",
		ColCalled: "75", ColDPI: "50", ColRVPI: "80", ColNetIRR: "15.2", ColNetMultiple: "1.6",
	}
	for k, v := range cells {
		base[k] = v
	}
	row := make([]string, len(exportHeader))
	for i, col := range exportHeader {
		row[i] = base[col]
	}
	return row
}

func newTestReference(t *testing.T, rows ...[]string) *Reference {
	t.Helper()
	ref, err := NewReference(&Table{Header: exportHeader, Rows: rows})
	require.NoError(t, err)
	return ref
}
