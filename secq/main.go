// Command secq looks up a company by ticker symbol and lists its SEC
// filings from locally loaded datasets.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/edgar/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion runs first: when invoked by the shell completion
	// hooks it prints candidates and exits.
	completion().Complete("secq")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	known := map[string]bool{"help": true, "flags": true, "commands": true}
	for _, c := range cmd.Commands() {
		commander.Register(c, "")
		known[c.Name()] = true
	}

	flag.Parse()

	// Unknown subcommands fall through to secq-<name> extensions on PATH.
	if name := flag.Arg(0); name != "" && !known[name] {
		if ok, code := cmd.RunExtension(name, flag.Args()[1:]); ok {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

// completion declares the command tree for shell completion.
func completion() *complete.Command {
	datasetFlags := map[string]complete.Predictor{
		"companies-file": predict.Files("*.json"),
		"filings-file":   predict.Files("*.json"),
		"v":              predict.Nothing,
	}
	return &complete.Command{
		Flags: datasetFlags,
		Sub: map[string]*complete.Command{
			"company": {},
			"convert": {
				Flags: map[string]complete.Predictor{
					"o": predict.Files("*.json"),
				},
				Args: predict.Files("*.json"),
			},
			"filings": {
				Flags: map[string]complete.Predictor{
					"form":  predict.Set{"10-K", "10-Q", "8-K", "S-1", "DEF 14A"},
					"from":  predict.Nothing,
					"to":    predict.Nothing,
					"limit": predict.Nothing,
					"json":  predict.Nothing,
					"text":  predict.Nothing,
				},
			},
			"inspect": {
				Flags: map[string]complete.Predictor{
					"f": predict.Set{"companies", "filings"},
				},
			},
			"topic": {
				Args: predict.Set{"readme", "dataset", "filtering", "*"},
			},
		},
	}
}
