package cmd

import (
	"flag"

	"github.com/etnz/rocksling/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors complete flag values by flag name. Other flags take anything.
var flagPredictors = map[string]complete.Predictor{
	"dir":          predict.Dirs("*"),
	"cache-dir":    predict.Dirs("*"),
	"o":            predict.Files("*.xlsx"),
	"strategies":   predict.Files("*.yaml"),
	"underwriting": predict.Set{"moic-based", "irr-based"},
}

// predictFlags returns the predictors of every flag in fs.
func predictFlags(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if p, ok := flagPredictors[f.Name]; ok {
			flags[f.Name] = p
			return
		}
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[f.Name] = predict.Nothing
			return
		}
		flags[f.Name] = predict.Something
	})
	return flags
}

// Completion describes the rocksling command line for shell completion.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: predictFlags(flag.CommandLine),
	}
	for _, c := range Commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub := &complete.Command{Flags: predictFlags(fs), Args: predict.Nothing}
		if c.Name() == "topic" {
			topics, _ := docs.GetAllTopics()
			sub.Args = predict.Set(topics)
		}
		root.Sub[c.Name()] = sub
	}
	return root
}
