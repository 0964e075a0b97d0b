package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/edgar"
	"github.com/google/subcommands"
)

type inspectCmd struct {
	dataset string
}

func (*inspectCmd) Name() string     { return "inspect" }
func (*inspectCmd) Synopsis() string { return "evaluate a jsonpath expression on a raw dataset" }
func (*inspectCmd) Usage() string {
	return `secq inspect [-f companies|filings] <jsonpath>

  Spelunks the raw dataset files without indexing them. Useful to check
  what an upstream dataset actually contains.

Usage Examples:
# Every ticker of the company dataset.
$ secq inspect '$..ticker'

# The first filing recorded under Apple's CIK.
$ secq inspect -f filings '$["0000320193"][0]'

`
}

func (c *inspectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dataset, "f", "companies", "Dataset to query: companies or filings.")
}

func (c *inspectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one jsonpath expression")
		return subcommands.ExitUsageError
	}

	var filename string
	switch c.dataset {
	case "companies":
		filename = *companiesFile
	case "filings":
		filename = *filingsFile
	default:
		fmt.Fprintf(os.Stderr, "unknown dataset %q: want companies or filings\n", c.dataset)
		return subcommands.ExitUsageError
	}

	jval, err := edgar.QueryDataset(filename, f.Arg(0))
	if err != nil {
		return fail(err)
	}
	out, err := json.MarshalIndent(jval, "", "  ")
	if err != nil {
		return fail(err)
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
