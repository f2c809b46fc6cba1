package rocksling

import (
	"cmp"
	"slices"
	"strconv"
)

// Sample is the headline of a fund performance row.
type Sample struct {
	Name        string
	Strategy    string
	Vintage     string
	NetIRR      string
	NetMultiple string
}

// ReferenceStats describes a fund performance export.
type ReferenceStats struct {
	Funds      int
	Strategies []Count  // top 10 strategies
	Vintages   []Count  // the 5 most recent vintages, oldest first
	Samples    []Sample // the first rows of the export
}

// Describe summarizes the reference with up to samples sample rows.
func Describe(ref *Reference, samples int) ReferenceStats {
	stats := ReferenceStats{Funds: ref.Len()}
	strategies := make([]string, 0, ref.Len())
	vintages := make(map[int]int)
	for i, f := range ref.Funds() {
		strategies = append(strategies, f.Get(ColStrategy))
		if year, ok := parseID(f.Get(ColVintage)); ok {
			vintages[year]++
		}
		if i < samples {
			stats.Samples = append(stats.Samples, Sample{
				Name:        f.Get(ColName),
				Strategy:    f.Get(ColStrategy),
				Vintage:     f.Get(ColVintage),
				NetIRR:      f.Get(ColNetIRR),
				NetMultiple: f.Get(ColNetMultiple),
			})
		}
	}
	stats.Strategies = topCounts(strategies, 10)

	for year, n := range vintages {
		stats.Vintages = append(stats.Vintages, Count{Label: strconv.Itoa(year), N: n})
	}
	// labels are years, same width in practice, but compare numerically anyway.
	slices.SortFunc(stats.Vintages, func(a, b Count) int {
		ya, _ := strconv.Atoi(a.Label)
		yb, _ := strconv.Atoi(b.Label)
		return cmp.Compare(ya, yb)
	})
	if len(stats.Vintages) > 5 {
		stats.Vintages = stats.Vintages[len(stats.Vintages)-5:]
	}
	return stats
}
