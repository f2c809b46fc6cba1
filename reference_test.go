package rocksling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReference(t *testing.T) {
	ref := newTestReference(t,
		exportRow("1", map[string]string{ColName: "first"}),
		exportRow("1", map[string]string{ColName: "duplicate"}),
		exportRow("2.0", nil),
		exportRow("n/a", nil),
	)
	assert.Equal(t, 4, ref.Len())

	f, ok := ref.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, "first", f.Get(ColName), "the first row of a duplicated fund id wins")

	_, ok = ref.Lookup(2)
	assert.True(t, ok, "2.0 is fund id 2")
	_, ok = ref.Lookup(0)
	assert.False(t, ok, "an invalid fund id is never indexed")

	_, err := NewReference(&Table{Header: []string{ColFundID, ColCalled, ColDPI}})
	assert.Error(t, err, "RVPI column is required")
}

func TestFundPerformance_MaxSize(t *testing.T) {
	testCases := []struct {
		name   string
		cells  map[string]string
		want   string
		wantOK bool
	}{
		{"all", nil, "130", true},
		{"some missing", map[string]string{ColHardCap: "", ColTargetSize: "n/a"}, "110", true},
		{"none", map[string]string{ColFundSize: "", ColTargetSize: "", ColFinalCloseSize: "", ColHardCap: "", ColInitialTarget: ""}, "", false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, _ := newTestReference(t, exportRow("1", tc.cells)).Lookup(1)
			got, ok := f.MaxSize()
			require.Equal(t, tc.wantOK, ok)
			if ok {
				assertDecimal(t, "MaxSize", got, tc.want)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	var rows [][]string
	for i, v := range []string{"2016", "2017", "2018", "2019", "2020", "2021", "2021", ""} {
		strategy := "Buyout"
		if i%3 == 0 {
			strategy = "Growth"
		}
		rows = append(rows, exportRow("1"+v, map[string]string{ColVintage: v, ColStrategy: strategy}))
	}
	stats := Describe(newTestReference(t, rows...), 3)

	assert.Equal(t, 8, stats.Funds)
	assert.Equal(t, []Count{{"Buyout", 5}, {"Growth", 3}}, stats.Strategies)
	assert.Equal(t, []Count{{"2017", 1}, {"2018", 1}, {"2019", 1}, {"2020", 1}, {"2021", 2}}, stats.Vintages)
	require.Len(t, stats.Samples, 3)
	assert.Equal(t, "2016", stats.Samples[0].Vintage)
	assert.Equal(t, "15.2", stats.Samples[0].NetIRR)
}
