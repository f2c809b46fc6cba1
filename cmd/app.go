// Package cmd implements the rocksling command line.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Commands are the rocksling subcommands.
var Commands = []subcommands.Command{
	&runCmd{},
	&referenceCmd{},
	&strategiesCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dir = flag.String("dir", ".", "Folder holding the Preqin fund performance exports")
var preqinURL = flag.String("preqin-url", "", "Preqin API base URL. Defaults to https://api.preqin.com")

// LoadEnv loads the .env file of the working directory, if any, into the
// environment. Variables already set are kept.
func LoadEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning: cannot load .env: %v", err)
	}
}

// printMarkdown renders md for the terminal, falling back to the raw markdown.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
