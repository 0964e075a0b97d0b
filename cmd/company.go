package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type companyCmd struct{}

func (*companyCmd) Name() string     { return "company" }
func (*companyCmd) Synopsis() string { return "resolve a ticker symbol to a company" }
func (*companyCmd) Usage() string {
	return `secq company <ticker>

  Resolves the ticker, case-insensitively, to its company and prints the
  company name and zero-padded CIK.
`
}

func (c *companyCmd) SetFlags(f *flag.FlagSet) {}

func (c *companyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one ticker symbol")
		return subcommands.ExitUsageError
	}

	client, err := LoadClient()
	if err != nil {
		return fail(err)
	}
	company, err := client.LookupCompany(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	fmt.Println(company)
	return subcommands.ExitSuccess
}
