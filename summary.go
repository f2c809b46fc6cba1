package rocksling

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"
)

// Count is the number of positions (or funds) sharing a label.
type Count struct {
	Label string
	N     int
}

// Summary aggregates the RockSling output for reporting.
type Summary struct {
	Positions int
	Managers  int // distinct fund managers

	// Totals in USD millions.
	Commitment    decimal.Decimal
	NAV           decimal.Decimal
	Unfunded      decimal.Decimal
	Contributions decimal.Decimal
	Distributions decimal.Decimal

	Strategies []Count // top 10 fund strategies
	Regions    []Count // top 5 fund regions

	MissingStrategy int
	MissingVintage  int
	MissingFundSize int
}

// Summarize aggregates rows. It has no effect on them.
func Summarize(rows Rows) Summary {
	s := Summary{Positions: len(rows)}
	managers := make(map[string]bool)
	strategies := make([]string, 0, len(rows))
	regions := make([]string, 0, len(rows))
	for _, r := range rows {
		managers[r.FundManager] = true
		s.Commitment = s.Commitment.Add(r.Commitment)
		s.NAV = s.NAV.Add(r.NAV)
		s.Unfunded = s.Unfunded.Add(r.Unfunded)
		s.Contributions = s.Contributions.Add(r.Contributions)
		s.Distributions = s.Distributions.Add(r.Distributions)
		strategies = append(strategies, r.FundStrategy)
		regions = append(regions, r.FundRegion)
		if r.FundStrategy == "" {
			s.MissingStrategy++
		}
		if r.FundVintage == "" {
			s.MissingVintage++
		}
		if r.FundSize == "" {
			s.MissingFundSize++
		}
	}
	s.Managers = len(managers)
	s.Strategies = topCounts(strategies, 10)
	s.Regions = topCounts(regions, 5)
	return s
}

// topCounts returns the n most frequent non empty labels, most frequent
// first, ties by label.
func topCounts(labels []string, n int) []Count {
	counts := make(map[string]int)
	for _, l := range labels {
		if l != "" {
			counts[l]++
		}
	}
	res := make([]Count, 0, len(counts))
	for l, c := range counts {
		res = append(res, Count{Label: l, N: c})
	}
	slices.SortFunc(res, func(a, b Count) int {
		if a.N != b.N {
			return cmp.Compare(b.N, a.N)
		}
		return cmp.Compare(a.Label, b.Label)
	})
	if len(res) > n {
		res = res[:n]
	}
	return res
}
