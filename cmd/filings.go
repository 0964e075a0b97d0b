package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/edgar"
	"github.com/etnz/edgar/date"
	"github.com/etnz/edgar/renderer"
	"github.com/google/subcommands"
)

type filingsCmd struct {
	forms  formsFlag
	from   string
	to     string
	limit  int
	asJSON bool
	asText bool
}

func (*filingsCmd) Name() string     { return "filings" }
func (*filingsCmd) Synopsis() string { return "list the filings of a company by ticker symbol" }
func (*filingsCmd) Usage() string {
	return `secq filings <ticker> [-form <type>[,<type>...]] [-from <date>] [-to <date>] [-limit <n>] [-json|-text]

  Resolves the ticker to a company and lists its filings, filtered by form
  type and date range, most recent first.

Usage Examples:
# The ten most recent Apple filings.
$ secq filings AAPL

# The five most recent annual reports.
$ secq filings AAPL -form 10-K -limit 5

# Quarterly and annual reports filed in 2023, as JSON.
$ secq filings MSFT -form 10-Q,10-K -from 2023-01-01 -to 2023-12-31 -json

`
}

func (c *filingsCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.forms, "form", "Filter by form type (repeatable, accepts comma-separated lists).")
	f.StringVar(&c.from, "from", "", "Keep filings dated on or after this date (YYYY-MM-DD).")
	f.StringVar(&c.to, "to", "", "Keep filings dated on or before this date (YYYY-MM-DD).")
	f.IntVar(&c.limit, "limit", edgar.DefaultLimit, "Maximum number of filings returned.")
	f.BoolVar(&c.asJSON, "json", false, "Output a JSON document instead of a table.")
	f.BoolVar(&c.asText, "text", false, "Output a plain fixed-width table instead of rendered markdown.")
}

func (c *filingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one ticker symbol")
		return subcommands.ExitUsageError
	}
	ticker := f.Arg(0)

	var from, to date.Date
	var err error
	if c.from != "" {
		if from, err = date.Parse(c.from); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -from: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.to != "" {
		if to, err = date.Parse(c.to); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -to: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	filter, err := edgar.NewFilingFilter(c.forms, from, to, c.limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid filter: %v\n", err)
		return subcommands.ExitUsageError
	}

	client, err := LoadClient()
	if err != nil {
		return fail(err)
	}

	company, err := client.LookupCompany(ticker)
	if err != nil {
		return fail(err)
	}
	filings, err := client.ListFilings(company.CIK(), filter)
	if err != nil {
		return fail(err)
	}

	switch {
	case c.asJSON:
		doc, err := renderer.ReportJSON(company, filings)
		if err != nil {
			return fail(err)
		}
		fmt.Println(doc)
	case c.asText:
		fmt.Print(renderer.FilingsText(company, filings))
	default:
		printMarkdown(renderer.FilingsMarkdown(company, filings))
	}
	return subcommands.ExitSuccess
}

// formsFlag collects form types from a repeatable flag that also accepts
// comma-separated lists.
type formsFlag []string

func (f *formsFlag) String() string { return strings.Join(*f, ",") }

func (f *formsFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*f = append(*f, part)
		}
	}
	return nil
}
