// Package cmd implements the CLI application to query SEC filings from
// locally loaded datasets.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/edgar"
	"github.com/google/subcommands"
)

// Commands returns every subcommand of the application, for registration
// and for completion.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&companyCmd{},
		&convertCmd{},
		&filingsCmd{},
		&inspectCmd{},
		&topicCmd{},
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables for the app configuration.

var companiesFile = flag.String("companies-file", "testdata/company_tickers.json", "Path to the company tickers JSON file")
var filingsFile = flag.String("filings-file", "testdata/filings_sample.json", "Path to the filings JSON file")

// Verbose enables per-record skip logging during queries.
var Verbose = flag.Bool("v", false, "log skipped filing records to stderr")

// LoadClient loads both datasets and indexes them into a client.
func LoadClient() (*edgar.Client, error) {
	companies, err := edgar.LoadCompanyDataset(*companiesFile)
	if err != nil {
		return nil, err
	}
	filings, err := edgar.LoadFilingDataset(*filingsFile)
	if err != nil {
		return nil, err
	}

	var opts []edgar.Option
	if *Verbose {
		opts = append(opts, edgar.WithDiscardFunc(func(cik string, rec edgar.FilingRecord, err error) {
			log.Printf("skipping filing record under CIK %s: %v", cik, err)
		}))
	}
	return edgar.NewClient(companies, filings, opts...), nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails (e.g. no usable terminal profile).
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Println(markdown)
		return
	}
	fmt.Print(out)
}

// fail prints the error and converts it to the exit status of the command.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
