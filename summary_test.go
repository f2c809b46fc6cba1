package rocksling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	rows := Rows{
		{FundManager: "M1", FundStrategy: "Buyout", FundRegion: "Europe", FundVintage: "2018", FundSize: "100",
			Commitment: dec("100"), NAV: dec("60"), Unfunded: dec("25"), Contributions: dec("75"), Distributions: dec("37.5")},
		{FundManager: "M1", FundStrategy: "Growth", FundRegion: "Europe", FundVintage: "2019",
			Commitment: dec("20"), NAV: dec("9"), Unfunded: dec("10"), Contributions: dec("10"), Distributions: dec("2")},
		{FundManager: "M2", FundStrategy: "Buyout", FundRegion: "",
			Commitment: dec("0.5")},
	}
	s := Summarize(rows)

	assert.Equal(t, 3, s.Positions)
	assert.Equal(t, 2, s.Managers)
	assertDecimal(t, "Commitment", s.Commitment, "120.5")
	assertDecimal(t, "NAV", s.NAV, "69")
	assertDecimal(t, "Unfunded", s.Unfunded, "35")
	assertDecimal(t, "Contributions", s.Contributions, "85")
	assertDecimal(t, "Distributions", s.Distributions, "39.5")

	assert.Equal(t, []Count{{"Buyout", 2}, {"Growth", 1}}, s.Strategies)
	assert.Equal(t, []Count{{"Europe", 2}}, s.Regions)
	assert.Equal(t, 0, s.MissingStrategy)
	assert.Equal(t, 1, s.MissingVintage)
	assert.Equal(t, 2, s.MissingFundSize)
}

func TestTopCounts(t *testing.T) {
	labels := []string{"c", "a", "b", "", "", "", "b", "a", "d"}
	assert.Equal(t, []Count{{"a", 2}, {"b", 2}, {"c", 1}}, topCounts(labels, 3))
	assert.Empty(t, topCounts(nil, 5))
}
