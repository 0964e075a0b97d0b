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

type convertCmd struct {
	out string
}

func (*convertCmd) Name() string { return "convert" }
func (*convertCmd) Synopsis() string {
	return "convert SEC submissions documents into a filings dataset"
}
func (*convertCmd) Usage() string {
	return `secq convert [-o <file>] <submissions.json>...

  Converts one or more SEC submissions documents (the per-filer
  CIK##########.json shape, with its parallel filing arrays) into the
  filings dataset format that secq queries. Purely local, nothing is
  fetched.

Usage Examples:
# Build a filings dataset from two downloaded submissions documents.
$ secq convert -o filings.json CIK0000320193.json CIK0000789019.json

`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", "", "Output file. Writes to stdout when empty.")
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "expected at least one submissions file")
		return subcommands.ExitUsageError
	}

	dataset := make(map[string][]edgar.FilingRecord)
	for _, filename := range f.Args() {
		sub, err := edgar.LoadSubmissions(filename)
		if err != nil {
			return fail(err)
		}
		cik, recs, err := sub.Records()
		if err != nil {
			return fail(err)
		}
		dataset[cik] = append(dataset[cik], recs...)
	}

	raw, err := json.MarshalIndent(dataset, "", "  ")
	if err != nil {
		return fail(err)
	}

	if c.out == "" {
		fmt.Println(string(raw))
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.out, append(raw, '\n'), 0644); err != nil {
		return fail(fmt.Errorf("could not write dataset %q: %w", c.out, err))
	}
	fmt.Fprintf(os.Stderr, "Wrote %d filer(s) to %s\n", len(dataset), c.out)
	return subcommands.ExitSuccess
}
