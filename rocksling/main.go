package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/rocksling/cmd"
	"github.com/google/subcommands"
)

func main() {
	cmd.Completion().Complete("rocksling")
	cmd.LoadEnv()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
