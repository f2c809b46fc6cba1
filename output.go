package rocksling

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// InputCurrency is the currency RockSling positions are entered in.
const InputCurrency = "USD"

// Output columns, in RockSling order.
const (
	OutFundID                    = "FUND ID"
	OutFund                      = "Fund"
	OutFundManager               = "Fund Manager"
	OutFundCurrency              = "Fund Currency"
	OutFundStrategy              = "Fund Strategy"
	OutFundVintage               = "Fund Vintage"
	OutFundRegion                = "Fund Region"
	OutFundSize                  = "Fund Size"
	OutPositionCommitment        = "Position Commitment"
	OutPositionNAV               = "Position NAV"
	OutPositionUnfunded          = "Position Unfunded"
	OutPositionContributions     = "Position Contributions"
	OutPositionDistributions     = "Position Distributions"
	OutExpectedFinalTVPI         = "Expected Final TVPI"
	OutPostAccountsContributions = "Position Post-accounts Contributions"
	OutPostAccountsDistributions = "Position Post-accounts Distributions"
	OutInputCurrency             = "Input Currency"
	OutSubportfolio              = "Subportfolio"
)

// Columns is the RockSling output header.
var Columns = []string{
	OutFundID, OutFund, OutFundManager,
	OutFundCurrency, OutFundStrategy, OutFundVintage, OutFundRegion, OutFundSize,
	OutPositionCommitment, OutPositionNAV, OutPositionUnfunded, OutPositionContributions, OutPositionDistributions,
	OutExpectedFinalTVPI, OutPostAccountsContributions, OutPostAccountsDistributions,
	OutInputCurrency, OutSubportfolio,
}

// NumericColumns are the output columns holding numbers (when not empty).
var NumericColumns = map[string]bool{
	OutFundID:                true,
	OutFundVintage:           true,
	OutFundSize:              true,
	OutPositionCommitment:    true,
	OutPositionNAV:           true,
	OutPositionUnfunded:      true,
	OutPositionContributions: true,
	OutPositionDistributions: true,
}

// Row is a RockSling input position.
//
// Descriptive fields the export cannot resolve are empty strings, never missing.
type Row struct {
	FundID       int
	Fund         string
	FundManager  string
	FundCurrency string
	FundStrategy string
	FundVintage  string
	FundRegion   string
	FundSize     string

	Commitment    decimal.Decimal
	NAV           decimal.Decimal
	Unfunded      decimal.Decimal
	Contributions decimal.Decimal
	Distributions decimal.Decimal

	ExpectedFinalTVPI         string
	PostAccountsContributions string
	PostAccountsDistributions string
	InputCurrency             string
	Subportfolio              string
}

// Cells returns the row cells in Columns order.
func (r Row) Cells() []string {
	return []string{
		strconv.Itoa(r.FundID), r.Fund, r.FundManager,
		r.FundCurrency, r.FundStrategy, r.FundVintage, r.FundRegion, r.FundSize,
		r.Commitment.String(), r.NAV.String(), r.Unfunded.String(), r.Contributions.String(), r.Distributions.String(),
		r.ExpectedFinalTVPI, r.PostAccountsContributions, r.PostAccountsDistributions,
		r.InputCurrency, r.Subportfolio,
	}
}

// Rows is the RockSling output table.
type Rows []Row

// Table renders the rows under the Columns header.
func (rs Rows) Table() *Table {
	t := &Table{Header: append([]string(nil), Columns...), Rows: make([][]string, 0, len(rs))}
	for _, r := range rs {
		t.Rows = append(t.Rows, r.Cells())
	}
	return t
}

// BuildOutput projects complete positions into RockSling rows.
//
// Fund attributes are joined back from the reference by fund id: currency
// (USD when missing), strategy, vintage, region and the fund size, which is
// the largest of the five size figures.
func BuildOutput(positions []Position, ref *Reference) Rows {
	rows := make(Rows, 0, len(positions))
	for _, p := range positions {
		row := Row{
			FundID:        p.FundID,
			Fund:          p.FundName,
			FundManager:   p.FundManagerName,
			FundCurrency:  InputCurrency,
			Commitment:    p.CommittedMn,
			NAV:           p.NAV,
			Unfunded:      p.Unfunded,
			Contributions: p.PaidIn,
			Distributions: p.Distributed,
			InputCurrency: InputCurrency,
			Subportfolio:  p.FundName,
		}
		if fund, ok := ref.Lookup(p.FundID); ok {
			if cur := fund.Get(ColCurrency); cur != "" {
				row.FundCurrency = cur
			}
			row.FundStrategy = fund.Get(ColStrategy)
			row.FundVintage = fund.Get(ColVintage)
			row.FundRegion = fund.Get(ColRegion)
			if size, ok := fund.MaxSize(); ok {
				row.FundSize = size.String()
			}
		}
		rows = append(rows, row)
	}
	return rows
}
