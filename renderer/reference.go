package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/rocksling"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// ReferenceMarkdown renders the description of a fund performance export.
func ReferenceMarkdown(source string, stats rocksling.ReferenceStats) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Fund Performance Export")
	doc.PlainText(fmt.Sprintf("%s: %s funds", md.Code(source), md.Bold(itoa(stats.Funds))))

	if len(stats.Strategies) > 0 {
		doc.H2("Strategy Distribution")
		countTable(doc, "Strategy", "Funds", stats.Strategies)
	}
	if len(stats.Vintages) > 0 {
		doc.H2("Recent Vintages")
		countTable(doc, "Vintage", "Funds", stats.Vintages)
	}
	if len(stats.Samples) > 0 {
		doc.H2("Sample Funds")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
			Header:    []string{"Name", "Strategy", "Vintage", "Net IRR", "Net Multiple"},
		}
		for _, s := range stats.Samples {
			table.Rows = append(table.Rows, []string{s.Name, s.Strategy, s.Vintage, suffix(s.NetIRR, "%"), suffix(s.NetMultiple, "x")})
		}
		doc.Table(table)
	}
	return doc.String()
}

func suffix(cell, unit string) string {
	if cell == "" {
		return ""
	}
	return cell + unit
}

// ExampleMarkdown renders the capital account figures of a sample commitment.
func ExampleMarkdown(committed, called, dpi, rvpi decimal.Decimal) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	f := rocksling.Derive(committed, called, dpi, rvpi)
	usd := func(d decimal.Decimal) string { return rocksling.Millions(d, rocksling.InputCurrency) }
	pct := func(d decimal.Decimal) string { return d.StringFixed(0) + "%" }

	doc.H2("Example Capital Account")
	doc.H3("Given")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Input", "Value"},
		Rows: [][]string{
			{"Commitment", usd(committed)},
			{"Called", pct(called)},
			{"DPI", pct(dpi)},
			{"RVPI", pct(rvpi)},
		},
	})
	doc.H3("Calculated")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Figure", "USD"},
		Rows: [][]string{
			{"Paid-in Capital", usd(f.PaidIn)},
			{"Distributed Capital", usd(f.Distributed)},
			{"NAV", usd(f.NAV)},
			{"Unfunded", usd(f.Unfunded)},
			{"Total Exposure", usd(f.TotalExposure)},
		},
	})
	return doc.String()
}
