package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/rocksling"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// outline is the structure of a markdown document.
type outline struct {
	headings []string // "## Title"
	tables   int
}

// parseOutline walks the markdown AST and records headings and tables.
func parseOutline(t *testing.T, md string) outline {
	t.Helper()
	source := []byte(md)
	parser := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser()
	root := parser.Parse(text.NewReader(source))

	var o outline
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Heading:
			var b strings.Builder
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				if txt, ok := c.(*ast.Text); ok {
					b.Write(txt.Segment.Value(source))
				}
			}
			o.headings = append(o.headings, strings.Repeat("#", n.Level)+" "+b.String())
		case *east.Table:
			o.tables++
		}
		return ast.WalkContinue, nil
	})
	return o
}

func TestSummaryMarkdown(t *testing.T) {
	report := &RunReport{
		Investor:            "NYCRS",
		InvestorID:          "2713",
		Portfolio:           "NYCRS test",
		Fetched:             3,
		Incomplete:          1,
		Defaulted:           1,
		DefaultCommitmentMn: decimal.NewFromInt(20),
		Output:              "out.xlsx",
		Summary: rocksling.Summary{
			Positions:  2,
			Managers:   2,
			Commitment: decimal.NewFromInt(1234),
			Strategies: []rocksling.Count{{Label: "Buyout", N: 2}},
			Regions:    []rocksling.Count{{Label: "Europe", N: 2}},
		},
	}

	md := SummaryMarkdown(report)
	got := parseOutline(t, md)
	want := []string{"# Portfolio Summary: NYCRS (2713)", "## Overview", "## Financial Summary", "## Top Strategies", "## Top Regions"}
	assert.Equal(t, want, got.headings)
	assert.Equal(t, 4, got.tables)
	for _, s := range []string{"$1,234.00M", "Default Commitment of $20.00M", "`out.xlsx`"} {
		assert.Contains(t, md, s)
	}

	report.Summary.MissingVintage = 1
	got = parseOutline(t, SummaryMarkdown(report))
	assert.Contains(t, got.headings, "## Data Quality")
}

func TestReferenceMarkdown(t *testing.T) {
	stats := rocksling.ReferenceStats{
		Funds:      12,
		Strategies: []rocksling.Count{{Label: "Buyout", N: 7}},
		Vintages:   []rocksling.Count{{Label: "2020", N: 3}},
		Samples:    []rocksling.Sample{{Name: "Fund A", Strategy: "Buyout", Vintage: "2020", NetIRR: "15.2", NetMultiple: "1.6"}},
	}
	md := ReferenceMarkdown("export.xlsx", stats)
	want := []string{"# Fund Performance Export", "## Strategy Distribution", "## Recent Vintages", "## Sample Funds"}
	assert.Equal(t, want, parseOutline(t, md).headings)
	assert.Contains(t, md, "15.2%")
	assert.Contains(t, md, "1.6x")
}

func TestExampleMarkdown(t *testing.T) {
	md := ExampleMarkdown(decimal.NewFromInt(100), decimal.NewFromInt(75), decimal.NewFromInt(50), decimal.NewFromInt(80))
	for _, s := range []string{"$75.00M", "$37.50M", "$60.00M", "$25.00M", "$85.00M"} {
		assert.Contains(t, md, s)
	}
	assert.Equal(t, 2, parseOutline(t, md).tables)
}

func TestStrategiesMarkdown(t *testing.T) {
	s := rocksling.DefaultStrategies()
	md := StrategiesMarkdown(s, rocksling.IRRBased)
	got := parseOutline(t, md)
	assert.Equal(t, []string{"# Strategy Mapping to Target Returns", "## Mapping"}, got.headings)
	assert.Equal(t, 1, got.tables)
	assert.Contains(t, md, "Buyout")
	assert.Contains(t, md, "17.19%")
}

func TestTopicsMarkdown(t *testing.T) {
	md := TopicsMarkdown([]string{"derivation", "run"})
	assert.Equal(t, []string{"# Topics"}, parseOutline(t, md).headings)
	assert.Contains(t, md, "derivation")
	assert.Contains(t, md, "run")
}
