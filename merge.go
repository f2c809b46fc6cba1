package rocksling

import (
	"slices"

	"github.com/shopspring/decimal"
)

// DefaultCommitmentMn is the commitment, in millions, assumed when the API has none.
const DefaultCommitmentMn = 20

// droppedColumns are the export columns left out of the merged positions.
//
// They are joined back by BuildOutput, so they do not take part in the
// completeness check.
var droppedColumns = []string{
	ColFundID, ColFirmID, ColName, ColQuartileRank, ColStrategy, ColAssetClass,
	ColRegion, ColCurrency, ColStatus, ColVintage,
	ColFundSize, ColTargetSize, ColFinalCloseSize, ColHardCap, ColInitialTarget,
}

// Figures are the capital account figures of a position, in millions.
type Figures struct {
	PaidIn        decimal.Decimal
	Distributed   decimal.Decimal
	NAV           decimal.Decimal
	Unfunded      decimal.Decimal
	TotalExposure decimal.Decimal
}

// Derive computes the capital account figures of a commitment from the
// fund's CALLED, DPI and RVPI percentages (0-100).
//
// Unfunded is never negative, even when more than the commitment was called.
// The arithmetic is exact: percentages are scaled, never divided.
func Derive(committed, called, dpi, rvpi decimal.Decimal) Figures {
	paidIn := committed.Mul(called.Shift(-2))
	nav := paidIn.Mul(rvpi.Shift(-2))
	unfunded := decimal.Max(committed.Sub(paidIn), decimal.Zero)
	return Figures{
		PaidIn:        paidIn,
		Distributed:   paidIn.Mul(dpi.Shift(-2)),
		NAV:           nav,
		Unfunded:      unfunded,
		TotalExposure: nav.Add(unfunded),
	}
}

// Position is a commitment joined with its fund performance and derived figures.
type Position struct {
	FundID          int
	FundName        string
	FundManagerName string
	CommittedMn     decimal.Decimal
	Defaulted       bool // CommittedMn is the default commitment
	Figures
}

// MergeOptions tune Merge.
type MergeOptions struct {
	// DefaultCommitmentMn replaces missing commitment amounts.
	// When not valid, DefaultCommitmentMn is used. Zero is a valid default.
	DefaultCommitmentMn decimal.NullDecimal
}

func (o MergeOptions) defaultCommitment() decimal.Decimal {
	if !o.DefaultCommitmentMn.Valid {
		return decimal.NewFromInt(DefaultCommitmentMn)
	}
	return o.DefaultCommitmentMn.Decimal
}

// MergeResult holds the complete positions and what was left out.
type MergeResult struct {
	Positions  []Position // complete positions, in commitment order
	Incomplete []int      // fund ids dropped for a missing value, in commitment order
	Defaulted  int        // number of complete positions using the default commitment
}

// Merge left-joins commitments onto the reference by fund id, derives the
// capital account figures and keeps only complete positions.
//
// A position is complete when it has a fund name and manager, a matching
// fund performance row with a value in every column that is not dropped,
// and numeric CALLED, DPI and RVPI percentages.
func Merge(commitments []Commitment, ref *Reference, opts MergeOptions) *MergeResult {
	retained := make([]string, 0, len(ref.Columns()))
	for _, col := range ref.Columns() {
		if !slices.Contains(droppedColumns, col) {
			retained = append(retained, col)
		}
	}

	res := &MergeResult{}
	for _, c := range commitments {
		pos, ok := merge(c, ref, retained, opts.defaultCommitment())
		if !ok {
			res.Incomplete = append(res.Incomplete, c.FundID)
			continue
		}
		if pos.Defaulted {
			res.Defaulted++
		}
		res.Positions = append(res.Positions, pos)
	}
	return res
}

// merge builds a single position, ok is false if any value is missing.
func merge(c Commitment, ref *Reference, retained []string, defaultCommitment decimal.Decimal) (pos Position, ok bool) {
	pos = Position{FundID: c.FundID, CommittedMn: c.CommittedMn.Decimal}
	if !c.CommittedMn.Valid {
		pos.CommittedMn, pos.Defaulted = defaultCommitment, true
	}
	if c.FundName == nil || c.FundManagerName == nil {
		return pos, false
	}
	pos.FundName, pos.FundManagerName = *c.FundName, *c.FundManagerName

	fund, found := ref.Lookup(c.FundID)
	if !found {
		return pos, false
	}
	for _, col := range retained {
		if fund.Get(col) == "" {
			return pos, false
		}
	}
	called, okCalled := fund.Decimal(ColCalled)
	dpi, okDPI := fund.Decimal(ColDPI)
	rvpi, okRVPI := fund.Decimal(ColRVPI)
	if !okCalled || !okDPI || !okRVPI {
		return pos, false
	}
	pos.Figures = Derive(pos.CommittedMn, called, dpi, rvpi)
	return pos, true
}
