package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/etnz/rocksling"
	"github.com/etnz/rocksling/date"
	"github.com/etnz/rocksling/preqin"
	"github.com/etnz/rocksling/renderer"
	"github.com/etnz/rocksling/xlsx"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// runCmd holds the flags for the 'run' subcommand.
type runCmd struct {
	credentials
	investorID        string
	investor          string
	strategy          string
	portfolio         string
	underwriting      string
	valuation         string
	output            string
	strategies        string
	defaultCommitment string
	workers           int
	cache             bool
	cacheDir          string
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "build the RockSling input of an investor" }
func (*runCmd) Usage() string {
	return `rocksling [-dir <folder>] run -investor-id <id> [-investor <name>] [-portfolio <name>] [-o <file>]

  Fetches the investor commitments from the Preqin API, joins them with the
  newest fund performance export in -dir and writes the RockSling input.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	c.credentials.SetFlags(f)
	f.StringVar(&c.investorID, "investor-id", "", "Preqin firm id of the investor (required)")
	f.StringVar(&c.investor, "investor", "", "Investor name. Defaults to the investor id")
	f.StringVar(&c.strategy, "strategy", "pe", "Commitment strategy lookup")
	f.StringVar(&c.portfolio, "portfolio", "", "RockSling portfolio name. Defaults to the investor name")
	f.StringVar(&c.underwriting, "underwriting", string(rocksling.MoICBased), "Underwriting target: moic-based or irr-based")
	f.StringVar(&c.valuation, "valuation", "", "Valuation date. Defaults to the quarter end after next")
	f.StringVar(&c.output, "o", "", "Output workbook. Defaults to RockSling-Input-<portfolio>.xlsx in -dir")
	f.StringVar(&c.strategies, "strategies", "", "YAML strategy mapping file. Defaults to the built-in mapping")
	f.StringVar(&c.defaultCommitment, "default-commitment", "20", "Commitment in millions used when the API has none")
	f.IntVar(&c.workers, "workers", 1, "Number of pages fetched in parallel")
	f.BoolVar(&c.cache, "cache", false, "Cache API responses on disk for the day")
	f.StringVar(&c.cacheDir, "cache-dir", "", "Folder of the -cache files. Defaults to the OS temp dir")
}

func (c *runCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.investorID == "" {
		fmt.Fprintf(os.Stderr, "Error: -investor-id is required\n")
		return subcommands.ExitUsageError
	}
	if c.investor == "" {
		c.investor = c.investorID
	}
	if c.portfolio == "" {
		c.portfolio = c.investor
	}
	u, err := rocksling.ParseUnderwriting(c.underwriting)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	defaultCommitment, err := decimal.NewFromString(c.defaultCommitment)
	if err != nil || defaultCommitment.IsNegative() {
		fmt.Fprintf(os.Stderr, "Error: invalid -default-commitment %q\n", c.defaultCommitment)
		return subcommands.ExitUsageError
	}
	valuation := date.NextQuarterEnd(date.Today())
	if c.valuation != "" {
		if valuation, err = date.Parse(c.valuation); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing valuation date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	output := c.output
	if output == "" {
		output = filepath.Join(*dir, "RockSling-Input-"+c.portfolio+".xlsx")
	}

	strategies, err := loadStrategies(c.strategies)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	username, key, err := c.resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var httpClient *http.Client
	if c.cache {
		httpClient = preqin.NewDailyCachingClient(c.cacheDir)
	}
	client := preqin.NewClient(*preqinURL, httpClient)
	client.Workers = c.workers

	if _, err := client.Authenticate(ctx, username, key); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	log.Println("access token retrieved")

	table, source, err := xlsx.LoadLatest(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot load fund performance export: %v\n", err)
		return subcommands.ExitFailure
	}
	ref, err := rocksling.NewReference(table)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", source, err)
		return subcommands.ExitFailure
	}
	log.Printf("loaded %d fund performance records from %s", ref.Len(), source)
	checkTemplate(*dir)

	commitments, err := client.FetchAll(ctx, c.investorID, c.strategy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	log.Printf("retrieved %d commitments of %s", len(commitments), c.investor)

	merged := rocksling.Merge(commitments, ref, rocksling.MergeOptions{DefaultCommitmentMn: decimal.NewNullDecimal(defaultCommitment)})
	rows := rocksling.BuildOutput(merged.Positions, ref)

	run := xlsx.NewRun()
	run.InvestorID, run.InvestorName = c.investorID, c.investor
	run.Strategy, run.Portfolio = c.strategy, c.portfolio
	run.Underwriting, run.ValuationDate = u, valuation
	run.Source = filepath.Base(source)
	if err := xlsx.WriteOutput(output, rows, strategies.Targets(rows, u), run); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	log.Printf("run %s: %d positions written to %s", run.ID, len(rows), output)

	printMarkdown(renderer.SummaryMarkdown(&renderer.RunReport{
		Investor:            c.investor,
		InvestorID:          c.investorID,
		Portfolio:           c.portfolio,
		Fetched:             len(commitments),
		Incomplete:          len(merged.Incomplete),
		Defaulted:           merged.Defaulted,
		DefaultCommitmentMn: defaultCommitment,
		Output:              output,
		Summary:             rocksling.Summarize(rows),
	}))
	return subcommands.ExitSuccess
}
