package rocksling

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultStrategies(t *testing.T) {
	s := DefaultStrategies()
	assert.Len(t, s, 42)
	for name, st := range s {
		assert.Equal(t, name, st.Preqin)
		assert.NotEmpty(t, st.Rocksling, "strategy %q", name)
		assert.False(t, st.TargetNetIRR.IsZero(), "strategy %q has no target net IRR", name)
		assert.False(t, st.TargetNetMoIC.IsZero(), "strategy %q has no target net MoIC", name)
	}

	testCases := []struct {
		preqin    string
		rocksling string
		irr       string
		moic      string
	}{
		{"Buyout", "Buyout", "17.19%", "1.609x"},
		{"Venture (General)", "VC", "20.25%", "1.951x"},
		{"Direct Lending - Senior Debt", "Direct Lending", "13.81%", ""},
		{"Infrastructure Debt", "Real Estate Debt", "15.87%", ""},
	}
	for _, tc := range testCases {
		t.Run(tc.preqin, func(t *testing.T) {
			st, ok := s.Lookup(tc.preqin)
			require.True(t, ok, "Lookup(%q)", tc.preqin)
			assert.Equal(t, tc.rocksling, st.Rocksling)
			assert.Equal(t, tc.irr, Percent(st.TargetNetIRR))
			if tc.moic != "" {
				assert.Equal(t, tc.moic, Multiple(st.TargetNetMoIC))
			}
		})
	}

	_, ok := s.Lookup("Venture")
	assert.False(t, ok, "Lookup should not match a partial name")
}

func TestLoadStrategies(t *testing.T) {
	s, err := LoadStrategies(strings.NewReader(`
Buyout:
  rocksling: Buyout
  target_net_irr: 0.2
  target_net_moic: 2.1
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"Buyout"}, s.Names())

	for name, in := range map[string]string{
		"no target":    "Buyout:\n  rocksling: Buyout\n  target_net_irr: 0.2\n",
		"no rocksling": "Buyout:\n  target_net_irr: 0.2\n  target_net_moic: 2\n",
		"not yaml":     "- [",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := LoadStrategies(strings.NewReader(in))
			assert.Error(t, err)
		})
	}
}

func TestStrategies_Targets(t *testing.T) {
	s := DefaultStrategies()
	rows := Rows{
		{FundID: 1, Fund: "A", FundStrategy: "Buyout"},
		{FundID: 2, Fund: "B", FundStrategy: ""},
	}

	moic := s.Targets(rows, MoICBased)
	require.Len(t, moic, 2)
	assert.True(t, moic[0].Mapped)
	assert.True(t, moic[0].Selected.Equal(moic[0].TargetNetMoIC), "moic-based target is the net MoIC")
	assert.False(t, moic[1].Mapped)
	assert.True(t, moic[1].Selected.IsZero(), "unmapped target is zero")

	irr := s.Targets(rows, IRRBased)
	assert.True(t, irr[0].Selected.Equal(irr[0].TargetNetIRR), "irr-based target is the net IRR")
}

func TestParseUnderwriting(t *testing.T) {
	for in, want := range map[string]Underwriting{"moic-based": MoICBased, "irr-based": IRRBased} {
		got, err := ParseUnderwriting(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseUnderwriting("MOIC")
	assert.Error(t, err)
}
