package rocksling

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed strategies.yaml
var defaultStrategies []byte

// Strategy maps a Preqin strategy to the RockSling taxonomy and its target returns.
type Strategy struct {
	Preqin        string
	Rocksling     string
	TargetNetIRR  decimal.Decimal // as a fraction, 0.17 is 17%
	TargetNetMoIC decimal.Decimal // as a multiple
}

// Strategies are keyed by Preqin strategy name.
type Strategies map[string]Strategy

// LoadStrategies decodes a YAML strategy mapping.
//
// The document is a map from Preqin strategy name to its "rocksling" name,
// "target_net_irr" and "target_net_moic". Every entry must have all three.
func LoadStrategies(r io.Reader) (Strategies, error) {
	var raw map[string]struct {
		Rocksling     string           `yaml:"rocksling"`
		TargetNetIRR  *decimal.Decimal `yaml:"target_net_irr"`
		TargetNetMoIC *decimal.Decimal `yaml:"target_net_moic"`
	}
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("cannot decode strategy mapping: %w", err)
	}
	s := make(Strategies, len(raw))
	for name, e := range raw {
		if name == "" || e.Rocksling == "" || e.TargetNetIRR == nil || e.TargetNetMoIC == nil {
			return nil, fmt.Errorf("incomplete strategy mapping for %q", name)
		}
		s[name] = Strategy{
			Preqin:        name,
			Rocksling:     e.Rocksling,
			TargetNetIRR:  *e.TargetNetIRR,
			TargetNetMoIC: *e.TargetNetMoIC,
		}
	}
	return s, nil
}

// DefaultStrategies returns the built-in strategy mapping.
func DefaultStrategies() Strategies {
	s, err := LoadStrategies(bytes.NewReader(defaultStrategies))
	if err != nil {
		panic(err)
	}
	return s
}

// Lookup returns the mapping of a Preqin strategy.
func (s Strategies) Lookup(preqin string) (Strategy, bool) {
	st, ok := s[preqin]
	return st, ok
}

// Names returns the Preqin strategy names, sorted.
func (s Strategies) Names() []string { return slices.Sorted(maps.Keys(s)) }

// Underwriting selects the target return used to underwrite a position.
type Underwriting string

const (
	MoICBased Underwriting = "moic-based"
	IRRBased  Underwriting = "irr-based"
)

// ParseUnderwriting parses "moic-based" or "irr-based".
func ParseUnderwriting(s string) (Underwriting, error) {
	switch u := Underwriting(s); u {
	case MoICBased, IRRBased:
		return u, nil
	default:
		return "", fmt.Errorf("unknown underwriting %q want %q or %q", s, MoICBased, IRRBased)
	}
}

// Target returns the target return selected by the underwriting.
func (st Strategy) Target(u Underwriting) decimal.Decimal {
	if u == IRRBased {
		return st.TargetNetIRR
	}
	return st.TargetNetMoIC
}

// Target is the target return of an output row.
type Target struct {
	FundID       int
	Fund         string
	FundStrategy string   // the Preqin strategy of the fund, possibly empty
	Strategy              // zero when FundStrategy is not mapped
	Mapped       bool
	Selected     decimal.Decimal // the underwriting target, zero when not mapped
}

// Targets maps every row's fund strategy to its target returns.
func (s Strategies) Targets(rows Rows, u Underwriting) []Target {
	targets := make([]Target, 0, len(rows))
	for _, r := range rows {
		t := Target{FundID: r.FundID, Fund: r.Fund, FundStrategy: r.FundStrategy}
		if st, ok := s.Lookup(r.FundStrategy); ok {
			t.Strategy, t.Mapped, t.Selected = st, true, st.Target(u)
		}
		targets = append(targets, t)
	}
	return targets
}
