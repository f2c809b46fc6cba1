package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/etnz/rocksling"
	"github.com/etnz/rocksling/renderer"
	"github.com/etnz/rocksling/xlsx"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type referenceCmd struct {
	samples int
}

func (*referenceCmd) Name() string     { return "reference" }
func (*referenceCmd) Synopsis() string { return "describe the fund performance export, offline" }
func (*referenceCmd) Usage() string {
	return `rocksling [-dir <folder>] reference [-samples <n>]

  Describes the newest Preqin fund performance export in -dir without calling
  the Preqin API, and shows how capital account figures are derived.
`
}

func (c *referenceCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.samples, "samples", 3, "Number of sample funds to show")
}

func (c *referenceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	table, path, err := xlsx.LoadLatest(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot load fund performance export: %v\n", err)
		return subcommands.ExitFailure
	}
	ref, err := rocksling.NewReference(table)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, err)
		return subcommands.ExitFailure
	}
	checkTemplate(*dir)

	md := renderer.ReferenceMarkdown(filepath.Base(path), rocksling.Describe(ref, c.samples))
	md += "\n" + renderer.ExampleMarkdown(
		decimal.NewFromInt(100), decimal.NewFromInt(75), decimal.NewFromInt(50), decimal.NewFromInt(80))
	printMarkdown(md)
	return subcommands.ExitSuccess
}

// checkTemplate warns when the RockSling input template is not in folder.
func checkTemplate(folder string) {
	if _, err := os.Stat(filepath.Join(folder, xlsx.TemplateFile)); err != nil {
		log.Printf("warning: RockSling template %q not found in %q", xlsx.TemplateFile, folder)
	}
}
