package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/rocksling"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// RunReport is what a run did, for the summary.
type RunReport struct {
	Investor            string
	InvestorID          string
	Portfolio           string
	Fetched             int // commitments returned by the API
	Incomplete          int // commitments left out for missing data
	Defaulted           int // positions using the default commitment
	DefaultCommitmentMn decimal.Decimal
	Output              string // the written workbook, "" if none
	Summary             rocksling.Summary
}

// SummaryMarkdown renders the portfolio summary of a run.
func SummaryMarkdown(r *RunReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	s := r.Summary

	doc.H1(fmt.Sprintf("Portfolio Summary: %s (%s)", r.Investor, r.InvestorID))
	if r.Portfolio != "" {
		doc.PlainText(fmt.Sprintf("RockSling portfolio %s", md.Bold(r.Portfolio)))
	}

	doc.H2("Overview")
	overview := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Positions", md.Bold(itoa(s.Positions))},
		Rows: [][]string{
			{"Unique Fund Managers", itoa(s.Managers)},
			{"Commitments Fetched", itoa(r.Fetched)},
			{"Left Out (Incomplete)", itoa(r.Incomplete)},
		},
	}
	if r.Defaulted > 0 {
		overview.Rows = append(overview.Rows, []string{
			"Default Commitment of " + rocksling.Millions(r.DefaultCommitmentMn, rocksling.InputCurrency),
			itoa(r.Defaulted),
		})
	}
	if r.Output != "" {
		overview.Rows = append(overview.Rows, []string{"Output", md.Code(r.Output)})
	}
	doc.Table(overview)

	doc.H2("Financial Summary")
	usd := func(d decimal.Decimal) string { return rocksling.Millions(d, rocksling.InputCurrency) }
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Total", "USD"},
		Rows: [][]string{
			{"Commitment", usd(s.Commitment)},
			{"NAV", usd(s.NAV)},
			{"Unfunded", usd(s.Unfunded)},
			{"Contributions", usd(s.Contributions)},
			{"Distributions", usd(s.Distributions)},
		},
	})

	if len(s.Strategies) > 0 {
		doc.H2("Top Strategies")
		countTable(doc, "Strategy", "Positions", s.Strategies)
	}
	if len(s.Regions) > 0 {
		doc.H2("Top Regions")
		countTable(doc, "Region", "Positions", s.Regions)
	}

	if s.MissingStrategy+s.MissingVintage+s.MissingFundSize > 0 {
		doc.H2("Data Quality")
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Missing", "Positions"},
			Rows: [][]string{
				{"Strategy", itoa(s.MissingStrategy)},
				{"Vintage", itoa(s.MissingVintage)},
				{"Fund Size", itoa(s.MissingFundSize)},
			},
		})
	}

	return doc.String()
}
