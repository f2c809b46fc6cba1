package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rocksling"
	"github.com/etnz/rocksling/renderer"
	"github.com/google/subcommands"
)

type strategiesCmd struct {
	strategies   string
	underwriting string
}

func (*strategiesCmd) Name() string     { return "strategies" }
func (*strategiesCmd) Synopsis() string { return "list the strategy mapping to target returns" }
func (*strategiesCmd) Usage() string {
	return `rocksling strategies [-strategies <file>] [-underwriting moic-based|irr-based]

  Lists how Preqin strategies map to RockSling strategies and their target returns.
`
}

func (c *strategiesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.strategies, "strategies", "", "YAML strategy mapping file. Defaults to the built-in mapping")
	f.StringVar(&c.underwriting, "underwriting", string(rocksling.MoICBased), "Underwriting target: moic-based or irr-based")
}

func (c *strategiesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	u, err := rocksling.ParseUnderwriting(c.underwriting)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	strategies, err := loadStrategies(c.strategies)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.StrategiesMarkdown(strategies, u))
	return subcommands.ExitSuccess
}

// loadStrategies reads the strategy mapping file, "" is the built-in mapping.
func loadStrategies(file string) (rocksling.Strategies, error) {
	if file == "" {
		return rocksling.DefaultStrategies(), nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := rocksling.LoadStrategies(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return s, nil
}
